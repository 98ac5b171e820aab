package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all toolkit configuration.
type Config struct {
	Paths    PathsConfig
	Embedder EmbedderConfig
	Backend  BackendConfig
	Retrieve RetrieveConfig
	LogLevel string
}

// PathsConfig holds the flat-file locations the pipeline reads and writes.
type PathsConfig struct {
	RawDir     string // raw daily JSON entries (append-only, external)
	CleanDir   string // canonical entries, one file per identifier
	IndexFile  string // JSONL embedding index
	PinnedYear int    // year forced onto every canonical timestamp
}

// EmbedderConfig selects and configures the embedding backend.
type EmbedderConfig struct {
	Provider  string // "ollama" or "local"
	Host      string // ollama base URL
	Model     string // ollama embedding model name
	ModelPath string // local: ONNX model file
	VocabPath string // local: WordPiece vocab.txt
	Workers   int    // index-build concurrency
}

// BackendConfig selects and configures the generation backend.
type BackendConfig struct {
	Provider string // "ollama", "lmstudio", or "openai"
	Host     string // base URL for the local providers
	Model    string
	APIKey   string // bearer credential for the openai provider
}

// RetrieveConfig holds query-time settings.
type RetrieveConfig struct {
	TopK int
}

// Load reads configuration from the environment with sensible defaults.
// A .env file in the working directory is merged in first, if present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Paths: PathsConfig{
			RawDir:     getenv("SAM_RAW_DIR", "logs/daily"),
			CleanDir:   getenv("SAM_CLEAN_DIR", "CleanedDaily"),
			IndexFile:  getenv("SAM_INDEX_FILE", "cleaned_log_embeddings.jsonl"),
			PinnedYear: getenvInt("SAM_PINNED_YEAR", 2025),
		},
		Embedder: EmbedderConfig{
			Provider:  getenv("SAM_EMBEDDER", "ollama"),
			Host:      getenv("SAM_OLLAMA_HOST", "http://localhost:11434"),
			Model:     getenv("SAM_EMBED_MODEL", "nomic-embed-text"),
			ModelPath: getenv("SAM_MODEL_PATH", "models/model_quantized.onnx"),
			VocabPath: getenv("SAM_VOCAB_PATH", "models/vocab.txt"),
			Workers:   getenvInt("SAM_EMBED_WORKERS", 6),
		},
		Backend: BackendConfig{
			Provider: getenv("SAM_BACKEND", "lmstudio"),
			Host:     getenv("SAM_BACKEND_HOST", ""),
			Model:    getenv("SAM_LLM_MODEL", ""),
			APIKey:   os.Getenv("OPENAI_API_KEY"),
		},
		Retrieve: RetrieveConfig{
			TopK: getenvInt("SAM_TOP_K", 3),
		},
		LogLevel: getenv("SAM_LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
