package logstore

import "strings"

// fuzzyThreshold is the minimum bigram similarity for a non-substring
// match to count.
const fuzzyThreshold = 0.6

// fuzzyContains reports whether needle appears in haystack, either as a
// case-insensitive substring or with bigram Dice similarity at or above
// the threshold.
func fuzzyContains(needle, haystack string) bool {
	needle = strings.ToLower(needle)
	haystack = strings.ToLower(haystack)
	if needle == "" {
		return false
	}
	if strings.Contains(haystack, needle) {
		return true
	}
	return diceSimilarity(needle, haystack) >= fuzzyThreshold
}

// diceSimilarity computes the Sørensen–Dice coefficient over character
// bigrams: 2·|A∩B| / (|A|+|B|).
func diceSimilarity(a, b string) float64 {
	ba := bigrams(a)
	bb := bigrams(b)
	if len(ba) == 0 || len(bb) == 0 {
		return 0
	}

	counts := make(map[string]int, len(ba))
	for _, g := range ba {
		counts[g]++
	}
	overlap := 0
	for _, g := range bb {
		if counts[g] > 0 {
			counts[g]--
			overlap++
		}
	}
	return 2 * float64(overlap) / float64(len(ba)+len(bb))
}

func bigrams(s string) []string {
	runes := []rune(s)
	if len(runes) < 2 {
		return nil
	}
	out := make([]string, 0, len(runes)-1)
	for i := 0; i < len(runes)-1; i++ {
		out = append(out, string(runes[i:i+2]))
	}
	return out
}
