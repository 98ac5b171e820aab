package embedder

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// maxSeqLen caps the token sequence fed to the model, [CLS] and [SEP]
// included. Journal entries occasionally run long; anything past the cap
// is truncated.
const maxSeqLen = 256

// tokenizer performs BERT-style WordPiece tokenization against a loaded
// vocabulary.
type tokenizer struct {
	vocab *vocab
}

func newTokenizer(vocabPath string) (*tokenizer, error) {
	v, err := loadVocab(vocabPath)
	if err != nil {
		return nil, err
	}
	return &tokenizer{vocab: v}, nil
}

// encode converts text into model inputs: token IDs bracketed by [CLS] and
// [SEP], plus a matching all-ones attention mask. No padding is added —
// the local embedder runs one sequence at a time.
func (t *tokenizer) encode(text string) (ids, mask []int64) {
	tokens := t.wordpiece(basicTokenize(text))
	if len(tokens) > maxSeqLen-2 {
		tokens = tokens[:maxSeqLen-2]
	}

	ids = make([]int64, 0, len(tokens)+2)
	ids = append(ids, t.vocab.cls)
	for _, tok := range tokens {
		ids = append(ids, t.vocab.id(tok))
	}
	ids = append(ids, t.vocab.sep)

	mask = make([]int64, len(ids))
	for i := range mask {
		mask[i] = 1
	}
	return ids, mask
}

// wordpiece decomposes basic tokens into subword units using greedy
// longest-match-first lookup. A token with no decomposition becomes [UNK].
func (t *tokenizer) wordpiece(tokens []string) []string {
	var out []string
	for _, token := range tokens {
		runes := []rune(token)
		if len(runes) == 0 {
			continue
		}
		if len(runes) > 100 {
			out = append(out, "[UNK]")
			continue
		}

		var pieces []string
		start := 0
		for start < len(runes) {
			end := len(runes)
			matched := ""
			for end > start {
				sub := string(runes[start:end])
				if start > 0 {
					sub = "##" + sub
				}
				if t.vocab.contains(sub) {
					matched = sub
					break
				}
				end--
			}
			if matched == "" {
				pieces = []string{"[UNK]"}
				break
			}
			pieces = append(pieces, matched)
			start = end
		}
		out = append(out, pieces...)
	}
	return out
}

// basicTokenize lowercases, strips accents and control characters, and
// splits on whitespace and punctuation.
func basicTokenize(text string) []string {
	text = stripAccents(strings.ToLower(cleanText(text)))

	var tokens []string
	for _, word := range strings.Fields(text) {
		tokens = append(tokens, splitPunct(word)...)
	}
	return tokens
}

// cleanText drops control characters and folds all whitespace to spaces.
func cleanText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == 0 || r == 0xFFFD || (unicode.IsControl(r) && !unicode.IsSpace(r)):
			// drop
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// stripAccents removes combining marks after NFD normalization.
func stripAccents(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range norm.NFD.String(text) {
		if unicode.In(r, unicode.Mn) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// splitPunct splits a word at punctuation, keeping each punctuation rune
// as its own token.
func splitPunct(word string) []string {
	var tokens []string
	var cur strings.Builder
	for _, r := range word {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			if cur.Len() > 0 {
				tokens = append(tokens, cur.String())
				cur.Reset()
			}
			tokens = append(tokens, string(r))
			continue
		}
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		tokens = append(tokens, cur.String())
	}
	return tokens
}
