// Package embedder turns text into fixed-length numeric vectors. The model
// is treated as a black box behind the Embedder interface; callers never
// see tokenization or transport details.
package embedder

import (
	"context"
	"fmt"

	"github.com/ravimishra07/project-sam/internal/config"
)

// Embedder produces a vector embedding for a piece of text. Implementations
// are pure functions of their input text and safe for concurrent use.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
	Close() error
}

// New creates the embedding backend selected by the configuration.
func New(cfg config.EmbedderConfig) (Embedder, error) {
	switch cfg.Provider {
	case "ollama":
		return NewOllama(cfg.Host, cfg.Model), nil
	case "local":
		return NewLocal(cfg.ModelPath, cfg.VocabPath)
	default:
		return nil, fmt.Errorf("embedder: unknown provider %q", cfg.Provider)
	}
}

// healthChecker is implemented by backends with a cheap reachability probe.
type healthChecker interface {
	Healthy(ctx context.Context) bool
}

// Preflight verifies that a remote backend is reachable before committing
// to a batch run or query session. Backends without a probe (the local
// embedder loads everything up front) pass trivially.
func Preflight(ctx context.Context, emb Embedder) error {
	hc, ok := emb.(healthChecker)
	if !ok {
		return nil
	}
	if !hc.Healthy(ctx) {
		return fmt.Errorf("embedder: backend is not reachable")
	}
	return nil
}
