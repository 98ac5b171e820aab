package llm

import "context"

const (
	defaultLMStudioHost  = "http://localhost:1234"
	defaultLMStudioModel = "mistralai/mistral-7b-instruct-v0.3"
)

// LMStudio generates replies through LM Studio's local OpenAI-compatible
// server. No credential is required.
type LMStudio struct {
	client *chatClient
}

// NewLMStudio creates an LM Studio backend. Empty host and model select
// the local defaults.
func NewLMStudio(host, model string) *LMStudio {
	if host == "" {
		host = defaultLMStudioHost
	}
	if model == "" {
		model = defaultLMStudioModel
	}
	return &LMStudio{client: newChatClient(host, model, "")}
}

// Name returns the backend tag.
func (l *LMStudio) Name() string { return "lmstudio" }

// Generate sends the prompt and returns the assistant's reply.
func (l *LMStudio) Generate(ctx context.Context, prompt string) (string, error) {
	return l.client.complete(ctx, prompt)
}
