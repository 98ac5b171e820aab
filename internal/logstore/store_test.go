package logstore

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCanonical(t *testing.T, dir, id, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, id+".json"), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", id, err)
	}
}

func seedStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	writeCanonical(t, dir, "1-1-25", `{
		"timestamp": "2025-01-01T08:00:00Z",
		"summary": "productive morning at the gym",
		"status": {"moodLevel": "8"},
		"tags": ["fitness", "routine"],
		"insights": {"wins": ["early start"], "losses": [], "ideas": []}
	}`)
	writeCanonical(t, dir, "2-1-25", `{
		"timestamp": "2025-01-02T08:00:00Z",
		"summary": "rough day, barely slept",
		"status": {"moodLevel": "3"},
		"tags": ["insomnia"],
		"insights": {"wins": [], "losses": ["missed deadline"], "ideas": []}
	}`)
	writeCanonical(t, dir, "3-1-25", `{
		"timestamp": "2025-01-03T08:00:00Z",
		"summary": "quiet day",
		"status": {"moodLevel": "not numeric"},
		"tags": [],
		"insights": {"wins": [], "losses": [], "ideas": ["try journaling at night"]}
	}`)

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func TestOpenAndGet(t *testing.T) {
	s := seedStore(t)
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}

	e, ok := s.Get("1-1-25")
	if !ok {
		t.Fatal("Get(1-1-25) not found")
	}
	if e.Summary != "productive morning at the gym" {
		t.Fatalf("summary = %q", e.Summary)
	}
	if _, ok := s.Get("9-9-99"); ok {
		t.Fatal("Get of absent id should report not found")
	}
}

func TestOpenMissingDir(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestReloadSkipsUnreadable(t *testing.T) {
	dir := t.TempDir()
	writeCanonical(t, dir, "1-1-25", `{"timestamp":"2025-01-01T08:00:00Z","summary":"ok"}`)
	writeCanonical(t, dir, "broken", `{nope`)

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1 (broken file skipped)", s.Len())
	}
}

func TestSearchKeyword(t *testing.T) {
	s := seedStore(t)

	hits := s.SearchKeyword("gym")
	if len(hits) != 1 || hits[0].ID != "1-1-25" {
		t.Fatalf("SearchKeyword(gym) = %v", hits)
	}

	// Matches across insights too.
	hits = s.SearchKeyword("deadline")
	if len(hits) != 1 || hits[0].ID != "2-1-25" {
		t.Fatalf("SearchKeyword(deadline) = %v", hits)
	}

	if hits := s.SearchKeyword("zzzzqqq"); len(hits) != 0 {
		t.Fatalf("SearchKeyword(zzzzqqq) = %v, want none", hits)
	}
}

func TestSearchKeywordChronological(t *testing.T) {
	s := seedStore(t)
	hits := s.SearchKeyword("day")
	if len(hits) < 2 {
		t.Fatalf("hits = %v", hits)
	}
	for i := 1; i < len(hits); i++ {
		if hits[i-1].Entry.Timestamp > hits[i].Entry.Timestamp {
			t.Fatalf("hits not chronological: %v", hits)
		}
	}
}

func TestSearchTag(t *testing.T) {
	s := seedStore(t)

	hits := s.SearchTag("fitness")
	if len(hits) != 1 || hits[0].ID != "1-1-25" {
		t.Fatalf("SearchTag(fitness) = %v", hits)
	}

	// Close spellings still match.
	hits = s.SearchTag("insomna")
	if len(hits) != 1 || hits[0].ID != "2-1-25" {
		t.Fatalf("SearchTag(insomna) = %v", hits)
	}
}

func TestFilterMoodBelow(t *testing.T) {
	s := seedStore(t)

	hits := s.FilterMoodBelow(5)
	if len(hits) != 1 || hits[0].ID != "2-1-25" {
		t.Fatalf("FilterMoodBelow(5) = %v", hits)
	}

	// Non-numeric moods never match, whatever the threshold.
	hits = s.FilterMoodBelow(100)
	for _, h := range hits {
		if h.ID == "3-1-25" {
			t.Fatalf("non-numeric mood matched: %v", hits)
		}
	}
}
