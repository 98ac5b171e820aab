package embedder

import "math"

// meanPool averages per-token hidden states into one sentence vector.
//
// hidden is flat [seqLen * dim] float32; mask marks real (1) versus
// padding (0) positions. With no real tokens the zero vector is returned.
func meanPool(hidden []float32, mask []int64, seqLen, dim int64) []float64 {
	out := make([]float64, dim)

	var count float64
	for s := int64(0); s < seqLen; s++ {
		if mask[s] != 1 {
			continue
		}
		count++
		off := s * dim
		for d := int64(0); d < dim; d++ {
			out[d] += float64(hidden[off+d])
		}
	}
	if count == 0 {
		return out
	}

	for d := range out {
		out[d] /= count
	}
	return out
}

// l2Normalize scales the vector to unit length in place. Zero vectors are
// left untouched.
func l2Normalize(v []float64) []float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return v
	}
	inv := 1.0 / math.Sqrt(sum)
	for i := range v {
		v[i] *= inv
	}
	return v
}
