// Package retrieve ranks embedding-index records against a query vector
// by cosine similarity.
package retrieve

import (
	"math"
	"sort"

	"github.com/ravimishra07/project-sam/internal/index"
)

// DefaultTopK is the number of matches returned when the caller does not
// ask for a specific k.
const DefaultTopK = 3

// Match is one scored retrieval result.
type Match struct {
	Date  string
	Score float64
}

// Retriever answers top-k similarity queries over a loaded index. It is
// read-only over the records and safe for concurrent queries.
type Retriever struct {
	records []index.Record
}

// New creates a Retriever over the given records.
func New(records []index.Record) *Retriever {
	return &Retriever{records: records}
}

// Len returns the number of index records, including any without vectors.
func (r *Retriever) Len() int { return len(r.records) }

// TopK returns the k records most similar to the query vector, ranked by
// descending cosine similarity. k <= 0 selects DefaultTopK. Records with
// no vector are skipped and do not count toward k. Ties keep index-file
// order (stable sort; no secondary key is defined).
func (r *Retriever) TopK(query []float64, k int) []Match {
	if k <= 0 {
		k = DefaultTopK
	}

	matches := make([]Match, 0, len(r.records))
	for _, rec := range r.records {
		if rec.Embedding == nil {
			continue
		}
		matches = append(matches, Match{
			Date:  rec.Date,
			Score: cosine(query, rec.Embedding),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if k < len(matches) {
		matches = matches[:k]
	}
	return matches
}

// cosine computes cosine similarity between two vectors. Vectors of
// different lengths — an index built by an older embedding model — are
// truncated to the shorter length first. A zero norm on either side
// yields 0 rather than dividing by zero.
func cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
