package embedder

import (
	"bufio"
	"fmt"
	"os"
)

// vocab is a WordPiece vocabulary. Token IDs are line numbers (0-indexed)
// in the vocab.txt file.
type vocab struct {
	ids map[string]int64

	pad int64
	unk int64
	cls int64
	sep int64
}

func loadVocab(path string) (*vocab, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: %w", err)
	}
	defer f.Close()

	ids := make(map[string]int64, 32000)
	scanner := bufio.NewScanner(f)
	var n int64
	for scanner.Scan() {
		ids[scanner.Text()] = n
		n++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("vocab: read: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("vocab: file is empty: %s", path)
	}

	v := &vocab{ids: ids}
	for _, s := range []struct {
		token string
		dest  *int64
	}{
		{"[PAD]", &v.pad},
		{"[UNK]", &v.unk},
		{"[CLS]", &v.cls},
		{"[SEP]", &v.sep},
	} {
		id, ok := ids[s.token]
		if !ok {
			return nil, fmt.Errorf("vocab: missing special token %s", s.token)
		}
		*s.dest = id
	}
	return v, nil
}

// id returns the token's ID, or the [UNK] ID if the token is unknown.
func (v *vocab) id(token string) int64 {
	if id, ok := v.ids[token]; ok {
		return id
	}
	return v.unk
}

func (v *vocab) contains(token string) bool {
	_, ok := v.ids[token]
	return ok
}
