package embedder

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testVocab writes a small vocab.txt; token IDs are line numbers.
func testVocab(t *testing.T) *tokenizer {
	t.Helper()
	// IDs are line numbers: [PAD]=0 [UNK]=1 [CLS]=2 [SEP]=3, then
	// felt=4 great=5 un=6 ##happy=7 cafe=8 happy=9 ","=10 "!"=11.
	lines := []string{
		"[PAD]", "[UNK]", "[CLS]", "[SEP]",
		"felt", "great", "un", "##happy", "cafe", "happy", ",", "!",
	}
	path := filepath.Join(t.TempDir(), "vocab.txt")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		t.Fatalf("write vocab: %v", err)
	}
	tok, err := newTokenizer(path)
	if err != nil {
		t.Fatalf("newTokenizer: %v", err)
	}
	return tok
}

func wantIDs(t *testing.T, got []int64, want ...int64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ids = %v, want %v", got, want)
		}
	}
}

func TestEncodeSimple(t *testing.T) {
	tok := testVocab(t)
	ids, mask := tok.encode("Felt GREAT")
	wantIDs(t, ids, 2, 4, 5, 3) // [CLS] felt great [SEP]

	if len(mask) != len(ids) {
		t.Fatalf("mask length %d != ids length %d", len(mask), len(ids))
	}
	for i, m := range mask {
		if m != 1 {
			t.Fatalf("mask[%d] = %d, want 1", i, m)
		}
	}
}

func TestEncodeWordpieceDecomposition(t *testing.T) {
	tok := testVocab(t)
	ids, _ := tok.encode("unhappy")
	wantIDs(t, ids, 2, 6, 7, 3) // [CLS] un ##happy [SEP]
}

func TestEncodeUnknownToken(t *testing.T) {
	tok := testVocab(t)
	ids, _ := tok.encode("xylophone")
	wantIDs(t, ids, 2, 1, 3) // [CLS] [UNK] [SEP]
}

func TestEncodePunctuationSplit(t *testing.T) {
	tok := testVocab(t)
	ids, _ := tok.encode("happy, great!")
	wantIDs(t, ids, 2, 9, 10, 5, 11, 3)
}

func TestEncodeAccentStripping(t *testing.T) {
	tok := testVocab(t)
	ids, _ := tok.encode("café")
	wantIDs(t, ids, 2, 8, 3) // café → cafe
}

func TestEncodeEmptyInput(t *testing.T) {
	tok := testVocab(t)
	ids, mask := tok.encode("")
	wantIDs(t, ids, 2, 3) // just [CLS] [SEP]
	if len(mask) != 2 {
		t.Fatalf("mask = %v", mask)
	}
}

func TestEncodeTruncation(t *testing.T) {
	tok := testVocab(t)
	ids, _ := tok.encode(strings.Repeat("happy ", maxSeqLen))
	if len(ids) != maxSeqLen {
		t.Fatalf("len(ids) = %d, want cap %d", len(ids), maxSeqLen)
	}
	if ids[0] != 2 || ids[len(ids)-1] != 3 {
		t.Fatalf("truncated sequence lost its brackets: first=%d last=%d", ids[0], ids[len(ids)-1])
	}
}

func TestBasicTokenize(t *testing.T) {
	got := basicTokenize("Hello,\tWorld!\n")
	want := []string{"hello", ",", "world", "!"}
	if len(got) != len(want) {
		t.Fatalf("tokens = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tokens = %v, want %v", got, want)
		}
	}
}

func TestLoadVocabMissingSpecials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.txt")
	if err := os.WriteFile(path, []byte("hello\nworld\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := loadVocab(path); err == nil {
		t.Fatal("expected error for vocab without special tokens")
	}
}

func TestLoadVocabEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.txt")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := loadVocab(path); err == nil {
		t.Fatal("expected error for empty vocab")
	}
}
