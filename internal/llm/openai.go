package llm

import (
	"context"
	"fmt"
)

const (
	openAIHost         = "https://api.openai.com"
	defaultOpenAIModel = "gpt-4"
)

// OpenAI generates replies through the OpenAI chat completions API with
// bearer-token auth.
type OpenAI struct {
	client *chatClient
}

// NewOpenAI creates an OpenAI backend. The key is checked at request time
// so a missing credential surfaces as a gateway error string, not a
// construction failure.
func NewOpenAI(apiKey, model string) *OpenAI {
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAI{client: newChatClient(openAIHost, model, apiKey)}
}

// Name returns the backend tag.
func (o *OpenAI) Name() string { return "openai" }

// Generate sends the prompt and returns the assistant's reply.
func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	if o.client.apiKey == "" {
		return "", fmt.Errorf("llm: OPENAI_API_KEY environment variable not set")
	}
	return o.client.complete(ctx, prompt)
}
