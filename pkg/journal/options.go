package journal

import "github.com/ravimishra07/project-sam/internal/config"

type options struct {
	cfg config.Config
}

// Option configures a Journal instance.
type Option func(*options)

func defaultOptions() options {
	return options{cfg: config.Load()}
}

// WithConfig replaces the environment-derived configuration entirely.
func WithConfig(cfg config.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithLogDir sets the canonical-entry directory.
func WithLogDir(dir string) Option {
	return func(o *options) { o.cfg.Paths.CleanDir = dir }
}

// WithIndexPath sets the embedding index file.
func WithIndexPath(path string) Option {
	return func(o *options) { o.cfg.Paths.IndexFile = path }
}

// WithTopK sets the default number of entries retrieved per question.
func WithTopK(k int) Option {
	return func(o *options) {
		if k > 0 {
			o.cfg.Retrieve.TopK = k
		}
	}
}

// WithEmbedder selects the embedding provider ("ollama" or "local").
func WithEmbedder(provider string) Option {
	return func(o *options) { o.cfg.Embedder.Provider = provider }
}

// WithBackend selects the generation provider ("ollama", "lmstudio", or
// "openai").
func WithBackend(provider string) Option {
	return func(o *options) { o.cfg.Backend.Provider = provider }
}
