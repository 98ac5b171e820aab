package journal

import (
	"context"
	"fmt"

	"github.com/ravimishra07/project-sam/internal/embedder"
	"github.com/ravimishra07/project-sam/internal/index"
	"github.com/ravimishra07/project-sam/internal/llm"
	"github.com/ravimishra07/project-sam/internal/logstore"
	"github.com/ravimishra07/project-sam/internal/model"
	"github.com/ravimishra07/project-sam/internal/prompt"
	"github.com/ravimishra07/project-sam/internal/retrieve"
)

// Journal answers free-text questions over a normalized log directory and
// its embedding index. Create once and reuse; queries are safe to run
// concurrently. Rebuilding the index while querying is not.
type Journal struct {
	emb        embedder.Embedder
	retriever  *retrieve.Retriever
	store      *logstore.Store
	gateway    *llm.Gateway
	indexPath  string
	topK       int
	pinnedYear int
}

// Match is one retrieval result: a canonical-entry identifier and its
// cosine similarity to the question.
type Match struct {
	Date  string
	Score float64
}

// New loads the embedding index and canonical entries and wires the
// configured embedding and generation backends.
func New(opts ...Option) (*Journal, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	emb, err := embedder.New(o.cfg.Embedder)
	if err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}
	if err := embedder.Preflight(context.Background(), emb); err != nil {
		emb.Close()
		return nil, fmt.Errorf("journal: %w", err)
	}

	records, err := index.Load(o.cfg.Paths.IndexFile)
	if err != nil {
		emb.Close()
		return nil, fmt.Errorf("journal: %w", err)
	}

	store, err := logstore.Open(o.cfg.Paths.CleanDir)
	if err != nil {
		emb.Close()
		return nil, fmt.Errorf("journal: %w", err)
	}

	backend, err := llm.New(o.cfg.Backend)
	if err != nil {
		emb.Close()
		return nil, fmt.Errorf("journal: %w", err)
	}

	return &Journal{
		emb:        emb,
		retriever:  retrieve.New(records),
		store:      store,
		gateway:    llm.NewGateway(backend),
		indexPath:  o.cfg.Paths.IndexFile,
		topK:       o.cfg.Retrieve.TopK,
		pinnedYear: o.cfg.Paths.PinnedYear,
	}, nil
}

// Retrieve embeds the question and returns the k most similar entries.
// k <= 0 selects the configured default.
func (j *Journal) Retrieve(ctx context.Context, question string, k int) ([]Match, error) {
	if k <= 0 {
		k = j.topK
	}
	vec, err := j.emb.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("journal: embed question: %w", err)
	}

	hits := j.retriever.TopK(vec, k)
	matches := make([]Match, len(hits))
	for i, h := range hits {
		matches[i] = Match{Date: h.Date, Score: h.Score}
	}
	return matches, nil
}

// DebugPrompt returns the exact prompt that Ask would send to the
// generation backend for this question.
func (j *Journal) DebugPrompt(ctx context.Context, question string) (string, error) {
	matches, err := j.Retrieve(ctx, question, 0)
	if err != nil {
		return "", err
	}
	return j.assemble(question, matches), nil
}

// Ask runs the full pipeline: retrieve, assemble, generate. Transport
// failures come back as a readable string from the gateway, so the only
// error path here is the question embedding itself.
func (j *Journal) Ask(ctx context.Context, question string) (string, error) {
	matches, err := j.Retrieve(ctx, question, 0)
	if err != nil {
		return "", err
	}
	return j.gateway.Answer(ctx, j.assemble(question, matches)), nil
}

// Reflect answers a question with structured retrieval instead of vector
// similarity: a date in the question selects that day's entry, mood
// thresholds and keywords route to the matching store filter, and the
// hits feed the same prompt and generation path as Ask. No embedding is
// involved, so there is no error path; transport failures come back as a
// readable string from the gateway.
func (j *Journal) Reflect(ctx context.Context, question string) string {
	hits := j.store.Route(question, j.pinnedYear)
	ids := make([]string, len(hits))
	for i, h := range hits {
		ids[i] = h.ID
	}
	return j.gateway.Answer(ctx, prompt.Assemble(question, ids, j.store.Get))
}

// SearchKeyword returns the identifiers of entries whose summary,
// insights, or tags match the keyword, in chronological order.
func (j *Journal) SearchKeyword(keyword string) []string {
	return hitIDs(j.store.SearchKeyword(keyword))
}

// SearchTag returns the identifiers of entries carrying a matching tag,
// in chronological order.
func (j *Journal) SearchTag(tag string) []string {
	return hitIDs(j.store.SearchTag(tag))
}

// MoodBelow returns the identifiers of entries whose mood level is a
// number below the threshold, in chronological order.
func (j *Journal) MoodBelow(threshold float64) []string {
	return hitIDs(j.store.FilterMoodBelow(threshold))
}

func hitIDs(hits []logstore.Hit) []string {
	ids := make([]string, len(hits))
	for i, h := range hits {
		ids[i] = h.ID
	}
	return ids
}

// Entry returns the canonical entry for an identifier.
func (j *Journal) Entry(id string) (model.Entry, bool) {
	return j.store.Get(id)
}

// Reload re-reads the index file and canonical entries, picking up the
// result of a rebuild.
func (j *Journal) Reload() error {
	records, err := index.Load(j.indexPath)
	if err != nil {
		return fmt.Errorf("journal: %w", err)
	}
	if err := j.store.Reload(); err != nil {
		return fmt.Errorf("journal: %w", err)
	}
	j.retriever = retrieve.New(records)
	return nil
}

// Close releases the embedding backend.
func (j *Journal) Close() error {
	return j.emb.Close()
}

func (j *Journal) assemble(question string, matches []Match) string {
	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = m.Date
	}
	return prompt.Assemble(question, ids, j.store.Get)
}
