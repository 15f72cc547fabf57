// Package llm provides the language-model collaborator: a provider-agnostic
// client interface with Gemini and Ollama implementations.
package llm

import (
	"os"
	"strconv"
	"time"
)

// Provider represents an LLM provider.
type Provider string

// Supported providers.
const (
	// ProviderGemini is the Google Gemini provider.
	ProviderGemini Provider = "gemini"
	// ProviderOllama is a local or remote Ollama server.
	ProviderOllama Provider = "ollama"
)

// DefaultTimeout bounds a single generation call. A model response can take
// tens of seconds; callers must treat a timeout as a recoverable failure.
const DefaultTimeout = 60 * time.Second

// Config holds the model configuration for the application.
type Config struct {
	Provider Provider
	Model    string
	BaseURL  string // Ollama only
	APIKey   string
	Timeout  time.Duration
}

// DefaultConfig returns the default configuration (currently Ollama, matching
// a local-first setup; set Provider to gemini to use the hosted API).
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderOllama,
		Model:    "llama3:8b",
		BaseURL:  "http://localhost:11434",
		Timeout:  DefaultTimeout,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back to
// defaults for anything unset. Recognized variables: LLM_PROVIDER,
// OLLAMA_BASE_URL, OLLAMA_MODEL, OLLAMA_TIMEOUT (seconds), GEMINI_API_KEY,
// GEMINI_MODEL.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()

	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		cfg.Provider = Provider(provider)
	}
	if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model := os.Getenv("OLLAMA_MODEL"); model != "" {
		cfg.Model = model
	}
	if seconds := os.Getenv("OLLAMA_TIMEOUT"); seconds != "" {
		if n, err := strconv.Atoi(seconds); err == nil && n > 0 {
			cfg.Timeout = time.Duration(n) * time.Second
		}
	}
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		cfg.APIKey = apiKey
		if cfg.Provider == ProviderGemini || os.Getenv("LLM_PROVIDER") == "" {
			cfg.Provider = ProviderGemini
			cfg.Model = "gemini-2.5-flash"
		}
	}
	if model := os.Getenv("GEMINI_MODEL"); model != "" && cfg.Provider == ProviderGemini {
		cfg.Model = model
	}

	return cfg
}
