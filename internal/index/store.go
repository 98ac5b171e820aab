// Package index builds and loads the flat-file embedding index: one JSON
// record per line, {"date": <identifier>, "embedding": [<float>, ...]}.
package index

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// Record pairs a canonical-entry identifier with its embedding vector.
// Embedding is nil when the index line carried no vector at all; the
// retriever skips such records.
type Record struct {
	Date      string    `json:"date"`
	Embedding []float64 `json:"embedding,omitempty"`
}

// scanBufSize accommodates long index lines; a 4096-dim embedding
// serializes to well under 1MB.
const scanBufSize = 1 << 20

// Load reads the whole index file into memory. A missing file is an
// error: query paths cannot proceed without an index. Malformed lines are
// logged and skipped so one bad record never hides the rest.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("index: open %s: %w", path, err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), scanBufSize)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Bytes()
		if len(text) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(text, &rec); err != nil {
			slog.Warn("skipping malformed index line", "path", path, "line", line, "error", err)
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("index: read %s: %w", path, err)
	}
	return records, nil
}

// Save rewrites the index file in full, one record per line. The index is
// always regenerated whole; there is no incremental update.
func Save(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("index: create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			f.Close()
			return fmt.Errorf("index: encode record %s: %w", rec.Date, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("index: flush %s: %w", path, err)
	}
	return f.Close()
}
