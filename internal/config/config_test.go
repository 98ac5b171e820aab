package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"SAM_RAW_DIR", "SAM_CLEAN_DIR", "SAM_INDEX_FILE", "SAM_PINNED_YEAR",
		"SAM_EMBEDDER", "SAM_BACKEND", "SAM_TOP_K", "OPENAI_API_KEY",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Paths.RawDir != "logs/daily" {
		t.Fatalf("RawDir = %q", cfg.Paths.RawDir)
	}
	if cfg.Paths.CleanDir != "CleanedDaily" {
		t.Fatalf("CleanDir = %q", cfg.Paths.CleanDir)
	}
	if cfg.Paths.IndexFile != "cleaned_log_embeddings.jsonl" {
		t.Fatalf("IndexFile = %q", cfg.Paths.IndexFile)
	}
	if cfg.Paths.PinnedYear != 2025 {
		t.Fatalf("PinnedYear = %d", cfg.Paths.PinnedYear)
	}
	if cfg.Embedder.Provider != "ollama" {
		t.Fatalf("Embedder.Provider = %q", cfg.Embedder.Provider)
	}
	if cfg.Backend.Provider != "lmstudio" {
		t.Fatalf("Backend.Provider = %q", cfg.Backend.Provider)
	}
	if cfg.Retrieve.TopK != 3 {
		t.Fatalf("TopK = %d", cfg.Retrieve.TopK)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SAM_RAW_DIR", "/data/raw")
	t.Setenv("SAM_PINNED_YEAR", "2030")
	t.Setenv("SAM_EMBEDDER", "local")
	t.Setenv("SAM_BACKEND", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("SAM_TOP_K", "7")

	cfg := Load()
	if cfg.Paths.RawDir != "/data/raw" {
		t.Fatalf("RawDir = %q", cfg.Paths.RawDir)
	}
	if cfg.Paths.PinnedYear != 2030 {
		t.Fatalf("PinnedYear = %d", cfg.Paths.PinnedYear)
	}
	if cfg.Embedder.Provider != "local" {
		t.Fatalf("Embedder.Provider = %q", cfg.Embedder.Provider)
	}
	if cfg.Backend.Provider != "openai" || cfg.Backend.APIKey != "sk-test" {
		t.Fatalf("Backend = %+v", cfg.Backend)
	}
	if cfg.Retrieve.TopK != 7 {
		t.Fatalf("TopK = %d", cfg.Retrieve.TopK)
	}
}

func TestGetenvIntBadValue(t *testing.T) {
	t.Setenv("SAM_TOP_K", "not-a-number")
	if cfg := Load(); cfg.Retrieve.TopK != 3 {
		t.Fatalf("TopK = %d, want fallback 3", cfg.Retrieve.TopK)
	}
}
