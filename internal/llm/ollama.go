package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// OllamaClient implements Client against the Ollama /api/generate endpoint.
type OllamaClient struct {
	config     *Config
	httpClient *http.Client
}

// NewOllamaClient creates a new Ollama client.
func NewOllamaClient(config *Config) *OllamaClient {
	return &OllamaClient{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

type ollamaOptions struct {
	Temperature float32 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	System  string        `json:"system,omitempty"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type ollamaResponse struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}

// Generate issues one non-streaming generation call against Ollama.
func (c *OllamaClient) Generate(ctx context.Context, req Request) (string, error) {
	payload := ollamaRequest{
		Model:  c.config.Model,
		Prompt: req.Prompt,
		System: req.System,
		Stream: false,
		Options: ollamaOptions{
			Temperature: req.Temperature,
			NumPredict:  req.MaxTokens,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", &GenerateError{Provider: ProviderOllama, Message: "failed to encode request", Cause: err}
	}

	url := strings.TrimRight(c.config.BaseURL, "/") + "/api/generate"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &GenerateError{Provider: ProviderOllama, Message: "failed to create request", Cause: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &GenerateError{Provider: ProviderOllama, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &GenerateError{Provider: ProviderOllama, Message: "failed to read response", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &GenerateError{
			Provider: ProviderOllama,
			Message:  fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	var parsed ollamaResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", &GenerateError{Provider: ProviderOllama, Message: "failed to decode response", Cause: err}
	}
	if parsed.Error != "" {
		return "", &GenerateError{Provider: ProviderOllama, Message: parsed.Error}
	}
	if parsed.Response == "" {
		return "", &GenerateError{Provider: ProviderOllama, Message: "empty response"}
	}

	return parsed.Response, nil
}

// Close is a no-op for the Ollama client.
func (c *OllamaClient) Close() error {
	return nil
}
