package embedder

import (
	"context"
	"fmt"
)

// Local embeds text fully in-process: WordPiece tokenization, ONNX
// inference, masked mean pooling, then L2 normalization. Use it when no
// Ollama instance is available.
type Local struct {
	session *onnxSession
	tok     *tokenizer
}

// NewLocal loads the ONNX model and vocabulary. Loading is expensive —
// create once and reuse.
func NewLocal(modelPath, vocabPath string) (*Local, error) {
	sess, err := newONNXSession(modelPath)
	if err != nil {
		return nil, fmt.Errorf("embedder: %w", err)
	}
	tok, err := newTokenizer(vocabPath)
	if err != nil {
		sess.close()
		return nil, fmt.Errorf("embedder: %w", err)
	}
	return &Local{session: sess, tok: tok}, nil
}

// Embed produces a unit-length embedding vector for the given text.
func (l *Local) Embed(ctx context.Context, text string) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ids, mask := l.tok.encode(text)
	hidden, err := l.session.infer(ids, mask)
	if err != nil {
		return nil, fmt.Errorf("embedder: %w", err)
	}

	pooled := meanPool(hidden, mask, int64(len(ids)), l.session.hiddenSz)
	return l2Normalize(pooled), nil
}

// Close releases the ONNX session.
func (l *Local) Close() error {
	return l.session.close()
}
