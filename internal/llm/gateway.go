package llm

import (
	"context"
	"fmt"
	"time"
)

// requestTimeout bounds every generation call; a hung backend surfaces as
// a timeout error string, never as an indefinitely blocked query.
const requestTimeout = 60 * time.Second

// Gateway wraps a Backend and converts every failure mode — connection
// refused, non-2xx status, timeout, missing credential — into a
// human-readable string. Callers always receive a string to display,
// never an error.
type Gateway struct {
	backend Backend
	timeout time.Duration
}

// NewGateway creates a Gateway around the given backend.
func NewGateway(backend Backend) *Gateway {
	return &Gateway{backend: backend, timeout: requestTimeout}
}

// Answer sends the prompt and returns the reply, or an error string
// beginning with "Error:" when the transport fails.
func (g *Gateway) Answer(ctx context.Context, promptText string) string {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	reply, err := g.backend.Generate(ctx, promptText)
	if err != nil {
		return fmt.Sprintf("Error: could not reach %s backend: %v", g.backend.Name(), err)
	}
	return reply
}
