package logstore

import "testing"

func TestFuzzyContainsSubstring(t *testing.T) {
	if !fuzzyContains("gym", "productive morning at the GYM") {
		t.Fatal("case-insensitive substring should match")
	}
	if fuzzyContains("", "anything") {
		t.Fatal("empty needle should never match")
	}
}

func TestFuzzyContainsCloseSpelling(t *testing.T) {
	if !fuzzyContains("insomna", "insomnia") {
		t.Fatal("one-character drop should still match")
	}
	if fuzzyContains("banana", "insomnia") {
		t.Fatal("unrelated words should not match")
	}
}

func TestDiceSimilarity(t *testing.T) {
	if got := diceSimilarity("night", "night"); got != 1.0 {
		t.Fatalf("identical strings: %v, want 1.0", got)
	}
	if got := diceSimilarity("night", "nacht"); got <= 0 || got >= 1 {
		t.Fatalf("related strings: %v, want in (0, 1)", got)
	}
	if got := diceSimilarity("ab", "xy"); got != 0 {
		t.Fatalf("disjoint bigrams: %v, want 0", got)
	}
	if got := diceSimilarity("a", "abc"); got != 0 {
		t.Fatalf("single-rune string has no bigrams: %v, want 0", got)
	}
}

func TestBigrams(t *testing.T) {
	got := bigrams("mood")
	want := []string{"mo", "oo", "od"}
	if len(got) != len(want) {
		t.Fatalf("bigrams = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bigrams = %v, want %v", got, want)
		}
	}
	if bigrams("x") != nil {
		t.Fatal("single rune should yield no bigrams")
	}
}
