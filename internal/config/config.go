// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Job       string `json:"job,omitempty"`       // Path to job posting text file
	JobURL    string `json:"job_url,omitempty"`   // URL to fetch job posting from
	Portfolio string `json:"portfolio,omitempty"` // Path to portfolio YAML file
	OutputDir string `json:"output_dir,omitempty"` // Directory for generated documents

	// Hints
	Company string `json:"company,omitempty"` // Target company name for cover letters
	Role    string `json:"role,omitempty"`    // Role hint when the posting title is ambiguous

	// Model settings
	Provider      string `json:"provider,omitempty"`        // "ollama" or "gemini"
	GeminiAPIKey  string `json:"gemini_api_key,omitempty"`  // Gemini API key
	OllamaBaseURL string `json:"ollama_base_url,omitempty"` // Ollama server base URL
	OllamaModel   string `json:"ollama_model,omitempty"`    // Ollama model name
	OllamaTimeout int    `json:"ollama_timeout,omitempty"`  // Ollama request timeout in seconds

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty"` // Use headless browser for SPA sites
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	switch c.Provider {
	case "", "ollama", "gemini":
	default:
		return fmt.Errorf("config error: 'provider' must be \"ollama\" or \"gemini\", got %q", c.Provider)
	}

	if c.OllamaTimeout < 0 {
		return fmt.Errorf("config error: 'ollama_timeout' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	if c.Portfolio != "" {
		if _, err := os.Stat(c.Portfolio); os.IsNotExist(err) {
			return fmt.Errorf("config error: portfolio file not found: %s", c.Portfolio)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Portfolio == "" {
		result.Portfolio = defaults.Portfolio
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Company == "" {
		result.Company = defaults.Company
	}
	if result.Role == "" {
		result.Role = defaults.Role
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.OllamaBaseURL == "" {
		result.OllamaBaseURL = defaults.OllamaBaseURL
	}
	if result.OllamaModel == "" {
		result.OllamaModel = defaults.OllamaModel
	}

	// Int fields: use default if zero
	if result.OllamaTimeout == 0 {
		result.OllamaTimeout = defaults.OllamaTimeout
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
