package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultOllamaHost  = "http://localhost:11434"
	defaultOllamaModel = "llama3"
)

// Ollama generates replies through Ollama's native /api/chat endpoint.
type Ollama struct {
	host       string
	model      string
	httpClient *http.Client
}

type ollamaChatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  ollamaOptions `json:"options"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

type ollamaChatResponse struct {
	Message chatMessage `json:"message"`
}

// NewOllama creates an Ollama chat backend. Empty host and model select
// the local defaults.
func NewOllama(host, model string) *Ollama {
	if host == "" {
		host = defaultOllamaHost
	}
	if model == "" {
		model = defaultOllamaModel
	}
	return &Ollama{
		host:       host,
		model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Name returns the backend tag.
func (o *Ollama) Name() string { return "ollama" }

// Generate sends the prompt and returns the assistant's reply.
func (o *Ollama) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(ollamaChatRequest{
		Model: o.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Stream:  false,
		Options: ollamaOptions{Temperature: 0.7, NumPredict: 1000},
	})
	if err != nil {
		return "", fmt.Errorf("llm: marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.host+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("llm: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm: ollama chat: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("llm: ollama chat: HTTP %d", resp.StatusCode)
	}

	var result ollamaChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("llm: decode chat response: %w", err)
	}
	return result.Message.Content, nil
}
