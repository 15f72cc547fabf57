package llm

import (
	"context"
	"fmt"
)

// Request describes one bounded generation call. Temperature and MaxTokens
// vary by adaptation target; callers pick near-zero temperature for
// classification-like tasks and higher values for narrative text.
type Request struct {
	Prompt      string
	System      string
	Temperature float32
	MaxTokens   int // 0 means provider default
}

// Client is an abstraction over LLM providers. Output must not be assumed
// deterministic even at temperature 0.
type Client interface {
	// Generate issues one generation call and returns the raw response text.
	Generate(ctx context.Context, req Request) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// NewClient creates a new LLM client based on configuration.
func NewClient(ctx context.Context, config *Config) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config)
	case ProviderOllama:
		return NewOllamaClient(config), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", config.Provider)
	}
}
