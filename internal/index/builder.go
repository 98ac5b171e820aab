package index

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ravimishra07/project-sam/internal/embedder"
	"github.com/ravimishra07/project-sam/internal/model"
)

const defaultWorkers = 6

// Builder regenerates the embedding index from a directory of canonical
// entries. Embedding calls fan out across a bounded worker pool; the index
// file is written in a single pass after all workers finish, so a rebuild
// never leaves a partially written index behind on the happy path.
type Builder struct {
	CleanDir  string
	IndexFile string
	Workers   int
	emb       embedder.Embedder
}

// NewBuilder creates a Builder. workers <= 0 selects the default pool size.
func NewBuilder(cleanDir, indexFile string, workers int, emb embedder.Embedder) *Builder {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Builder{CleanDir: cleanDir, IndexFile: indexFile, Workers: workers, emb: emb}
}

// Build embeds every canonical entry and rewrites the index file. Entries
// that fail to read or embed are logged and left out; they never abort the
// run. Returns the number of records written.
func (b *Builder) Build(ctx context.Context) (int, error) {
	files, err := os.ReadDir(b.CleanDir)
	if err != nil {
		return 0, err
	}

	var names []string
	for _, f := range files {
		if !f.IsDir() && strings.HasSuffix(f.Name(), ".json") {
			names = append(names, f.Name())
		}
	}

	// Results are position-indexed so the index file keeps input order
	// regardless of which worker finishes first.
	results := make([]*Record, len(names))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < b.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = b.embedFile(ctx, names[i])
			}
		}()
	}

	for i := range names {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return 0, ctx.Err()
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	records := make([]Record, 0, len(results))
	for _, rec := range results {
		if rec != nil {
			records = append(records, *rec)
		}
	}

	if err := Save(b.IndexFile, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// embedFile reads one canonical entry and produces its index record, or
// nil if the entry had to be skipped.
func (b *Builder) embedFile(ctx context.Context, name string) *Record {
	path := filepath.Join(b.CleanDir, name)
	raw, err := os.ReadFile(path)
	if err != nil {
		slog.Error("could not read canonical entry", "file", name, "error", err)
		return nil
	}

	var entry model.Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		slog.Error("could not decode canonical entry", "file", name, "error", err)
		return nil
	}

	vec, err := b.emb.Embed(ctx, BuildText(entry))
	if err != nil {
		slog.Error("could not embed entry", "file", name, "error", err)
		return nil
	}

	return &Record{Date: deriveDate(entry.Timestamp, name), Embedding: vec}
}

// BuildText derives the embeddable text for an entry: summary, tags, wins,
// losses, ideas, and trigger events in that fixed order, joined by single
// spaces. Empty fields contribute nothing.
func BuildText(entry model.Entry) string {
	var parts []string
	if entry.Summary != "" {
		parts = append(parts, entry.Summary)
	}
	parts = append(parts, entry.Tags...)
	parts = append(parts, entry.Insights.Wins...)
	parts = append(parts, entry.Insights.Losses...)
	parts = append(parts, entry.Insights.Ideas...)
	parts = append(parts, entry.TriggerEvents...)
	return strings.Join(parts, " ")
}

// deriveDate re-derives the identifier from the entry's timestamp so index
// records join back to canonical files. Falls back to the filename stem
// when the timestamp does not parse.
func deriveDate(ts, fname string) string {
	if ts != "" {
		if t, err := model.ParseTimestamp(ts); err == nil {
			return model.DateID(t)
		}
		slog.Warn("falling back to filename for identifier", "file", fname, "timestamp", ts)
	}
	return strings.TrimSuffix(fname, ".json")
}
