// Package llm sends assembled prompts to a text-generation backend. Three
// transports are supported: Ollama's chat API, LM Studio's local
// OpenAI-compatible server, and the OpenAI API itself.
package llm

import (
	"context"
	"fmt"

	"github.com/ravimishra07/project-sam/internal/config"
)

// systemPrompt frames every generation request. The assistant must answer
// only from the retrieved log data.
const systemPrompt = "You are a personal log reflection assistant. " +
	"Analyze the provided daily logs and answer the user's question based on " +
	"the patterns, emotions, and experiences shown in the logs. " +
	"Only respond based on the provided data."

// Backend sends a prompt to one generation transport and returns the
// assistant's reply.
type Backend interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// New creates the generation backend selected by the configuration.
func New(cfg config.BackendConfig) (Backend, error) {
	switch cfg.Provider {
	case "ollama":
		return NewOllama(cfg.Host, cfg.Model), nil
	case "lmstudio":
		return NewLMStudio(cfg.Host, cfg.Model), nil
	case "openai":
		return NewOpenAI(cfg.APIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("llm: unknown backend %q", cfg.Provider)
	}
}
