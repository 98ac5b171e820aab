// Package logstore loads canonical entries from disk and answers direct
// and structured lookups over them.
package logstore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/ravimishra07/project-sam/internal/model"
)

// Hit is one entry returned by a structured search.
type Hit struct {
	ID    string
	Entry model.Entry
}

// Store holds the canonical entries of one directory in memory, keyed by
// identifier (the filename stem). It is explicitly loaded and reloaded —
// no process-wide implicit cache.
type Store struct {
	dir string

	mu      sync.RWMutex
	entries map[string]model.Entry
	order   []string // identifiers sorted by (timestamp, id)
}

// Open creates a Store and performs the initial load.
func Open(dir string) (*Store, error) {
	s := &Store{dir: dir}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads every canonical entry from disk. Per-file failures are
// logged and skipped.
func (s *Store) Reload() error {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("logstore: read %s: %w", s.dir, err)
	}

	entries := make(map[string]model.Entry, len(files))
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}
		entry, err := readEntry(filepath.Join(s.dir, f.Name()))
		if err != nil {
			slog.Warn("skipping unreadable canonical entry", "file", f.Name(), "error", err)
			continue
		}
		entries[strings.TrimSuffix(f.Name(), ".json")] = entry
	}

	order := make([]string, 0, len(entries))
	for id := range entries {
		order = append(order, id)
	}
	sort.Slice(order, func(i, j int) bool {
		ti := entries[order[i]].Timestamp
		tj := entries[order[j]].Timestamp
		if ti != tj {
			return ti < tj
		}
		return order[i] < order[j]
	})

	s.mu.Lock()
	s.entries = entries
	s.order = order
	s.mu.Unlock()
	return nil
}

// Len returns the number of loaded entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Get returns the entry for an identifier.
func (s *Store) Get(id string) (model.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[id]
	return entry, ok
}

// SearchKeyword returns entries whose summary, insights, or tags contain
// the keyword (fuzzy match), in chronological order.
func (s *Store) SearchKeyword(keyword string) []Hit {
	return s.scan(func(e model.Entry) bool {
		parts := []string{e.Summary}
		parts = append(parts, e.Insights.Wins...)
		parts = append(parts, e.Insights.Losses...)
		parts = append(parts, e.Insights.Ideas...)
		parts = append(parts, e.Tags...)
		return fuzzyContains(keyword, strings.Join(parts, " "))
	})
}

// SearchTag returns entries carrying a tag that fuzzy-matches the given
// tag, in chronological order.
func (s *Store) SearchTag(tag string) []Hit {
	return s.scan(func(e model.Entry) bool {
		for _, t := range e.Tags {
			if fuzzyContains(tag, t) {
				return true
			}
		}
		return false
	})
}

// FilterMoodBelow returns entries whose mood level parses as a number
// below the threshold. Entries with non-numeric mood are skipped.
func (s *Store) FilterMoodBelow(threshold float64) []Hit {
	return s.scan(func(e model.Entry) bool {
		mood, err := strconv.ParseFloat(e.Status.MoodLevel, 64)
		return err == nil && mood < threshold
	})
}

func (s *Store) scan(match func(model.Entry) bool) []Hit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var hits []Hit
	for _, id := range s.order {
		if entry := s.entries[id]; match(entry) {
			hits = append(hits, Hit{ID: id, Entry: entry})
		}
	}
	return hits
}

func readEntry(path string) (model.Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.Entry{}, err
	}
	var entry model.Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return model.Entry{}, fmt.Errorf("logstore: decode %s: %w", path, err)
	}
	return entry, nil
}
