package index_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ravimishra07/project-sam/internal/index"
	"github.com/ravimishra07/project-sam/internal/logstore"
	"github.com/ravimishra07/project-sam/internal/model"
	"github.com/ravimishra07/project-sam/internal/normalize"
	"github.com/ravimishra07/project-sam/internal/prompt"
	"github.com/ravimishra07/project-sam/internal/retrieve"
)

// keywordEmbedder is a deterministic stand-in for a real model: each
// dimension counts one keyword, so texts about the same topic land close
// together.
type keywordEmbedder struct{}

func (keywordEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	text = strings.ToLower(text)
	vec := make([]float64, 3)
	for i, kw := range []string{"great", "rain", "tired"} {
		vec[i] = float64(strings.Count(text, kw))
	}
	return vec, nil
}

func (keywordEmbedder) Close() error { return nil }

// TestPipelineEndToEnd drives a raw entry through normalization, index
// build, retrieval, and prompt assembly.
func TestPipelineEndToEnd(t *testing.T) {
	rawDir, cleanDir := t.TempDir(), t.TempDir()
	indexFile := filepath.Join(t.TempDir(), "index.jsonl")

	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(rawDir, name), []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	write("a.json", `{"timestamp":"2024-01-01T08:00:00Z","summary":"Felt great","tags":["happy"]}`)
	write("b.json", `{"timestamp":"2024-01-02T08:00:00Z","summary":"Rain all day","tags":["gloomy"]}`)
	write("c.json", `{"timestamp":"2024-01-03T08:00:00Z","summary":"Tired and slow","tags":[]}`)

	rep, err := normalize.New(rawDir, cleanDir, 2025).Run()
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if rep.Written != 3 {
		t.Fatalf("written = %d, want 3", rep.Written)
	}

	// Year pinning renames 2024 entries into the 2025 namespace.
	var pinned model.Entry
	raw, err := os.ReadFile(filepath.Join(cleanDir, "1-1-25.json"))
	if err != nil {
		t.Fatalf("canonical file missing: %v", err)
	}
	if err := json.Unmarshal(raw, &pinned); err != nil {
		t.Fatalf("decode canonical entry: %v", err)
	}
	if pinned.Timestamp != "2025-01-01T08:00:00Z" {
		t.Fatalf("timestamp = %q, want pinned year", pinned.Timestamp)
	}

	emb := keywordEmbedder{}
	n, err := index.NewBuilder(cleanDir, indexFile, 2, emb).Build(context.Background())
	if err != nil {
		t.Fatalf("build index: %v", err)
	}
	if n != 3 {
		t.Fatalf("indexed %d entries, want 3", n)
	}

	records, err := index.Load(indexFile)
	if err != nil {
		t.Fatalf("load index: %v", err)
	}

	qvec, err := emb.Embed(context.Background(), "when did I feel great?")
	if err != nil {
		t.Fatalf("embed query: %v", err)
	}
	matches := retrieve.New(records).TopK(qvec, 1)
	if len(matches) != 1 || matches[0].Date != "1-1-25" {
		t.Fatalf("matches = %v, want 1-1-25 on top", matches)
	}

	store, err := logstore.Open(cleanDir)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	p := prompt.Assemble("when did I feel great?", []string{matches[0].Date}, store.Get)

	for _, want := range []string{
		"User asked: when did I feel great?",
		"Date: 1-1-25",
		"Summary: Felt great",
		"Tags: happy",
	} {
		if !strings.Contains(p, want) {
			t.Fatalf("prompt missing %q:\n%s", want, p)
		}
	}
}
