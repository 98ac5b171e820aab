package embedder

import (
	"math"
	"testing"
)

func TestMeanPoolFullMask(t *testing.T) {
	// Two tokens, dim 2: [1,2] and [3,4] → mean [2,3].
	hidden := []float32{1, 2, 3, 4}
	got := meanPool(hidden, []int64{1, 1}, 2, 2)
	if got[0] != 2 || got[1] != 3 {
		t.Fatalf("meanPool = %v, want [2 3]", got)
	}
}

func TestMeanPoolPartialMask(t *testing.T) {
	// Second position is masked out; only [1,2] counts.
	hidden := []float32{1, 2, 100, 100}
	got := meanPool(hidden, []int64{1, 0}, 2, 2)
	if got[0] != 1 || got[1] != 2 {
		t.Fatalf("meanPool = %v, want [1 2]", got)
	}
}

func TestMeanPoolAllMasked(t *testing.T) {
	got := meanPool([]float32{5, 5}, []int64{0}, 1, 2)
	if got[0] != 0 || got[1] != 0 {
		t.Fatalf("meanPool = %v, want zero vector", got)
	}
}

func TestL2Normalize(t *testing.T) {
	got := l2Normalize([]float64{3, 4})
	if math.Abs(got[0]-0.6) > 1e-12 || math.Abs(got[1]-0.8) > 1e-12 {
		t.Fatalf("l2Normalize = %v, want [0.6 0.8]", got)
	}

	var norm float64
	for _, x := range got {
		norm += x * x
	}
	if math.Abs(norm-1) > 1e-12 {
		t.Fatalf("norm² = %v, want 1", norm)
	}
}

func TestL2NormalizeZeroVector(t *testing.T) {
	got := l2Normalize([]float64{0, 0, 0})
	for _, x := range got {
		if x != 0 {
			t.Fatalf("zero vector changed: %v", got)
		}
	}
}
