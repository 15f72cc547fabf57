package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"job_url": "https://example.com/job",
		"portfolio": "data/portfolio.yaml",
		"company": "Acme",
		"provider": "ollama",
		"ollama_timeout": 90,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://example.com/job", cfg.JobURL)
	assert.Equal(t, "data/portfolio.yaml", cfg.Portfolio)
	assert.Equal(t, "Acme", cfg.Company)
	assert.Equal(t, "ollama", cfg.Provider)
	assert.Equal(t, 90, cfg.OllamaTimeout)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_MutuallyExclusive(t *testing.T) {
	cfg := &Config{
		Job:    "job.txt",
		JobURL: "https://example.com/job",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := &Config{Provider: "openai"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'provider'")
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := &Config{OllamaTimeout: -1}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'ollama_timeout'")
}

func TestValidate_JobFileNotFound(t *testing.T) {
	cfg := &Config{Job: "/nonexistent/job.txt"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "job file not found")
}

func TestValidate_PortfolioFileNotFound(t *testing.T) {
	cfg := &Config{Portfolio: "/nonexistent/portfolio.yaml"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "portfolio file not found")
}

func TestValidate_ExistingFiles(t *testing.T) {
	dir := t.TempDir()
	jobFile := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(jobFile, []byte("posting"), 0644))
	portfolioFile := filepath.Join(dir, "portfolio.yaml")
	require.NoError(t, os.WriteFile(portfolioFile, []byte("personal_info: {}"), 0644))

	cfg := &Config{Job: jobFile, Portfolio: portfolioFile, Provider: "gemini"}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults_FillsEmptyFields(t *testing.T) {
	cfg := Config{
		JobURL:  "https://example.com/job",
		Company: "Acme",
	}
	defaults := Config{
		JobURL:        "https://ignored.example.com",
		Portfolio:     "data/portfolio.yaml",
		OutputDir:     "out",
		Provider:      "ollama",
		OllamaBaseURL: "http://localhost:11434",
		OllamaModel:   "llama3:8b",
		OllamaTimeout: 60,
	}

	merged := cfg.MergeWithDefaults(defaults)

	// Set fields win over defaults
	assert.Equal(t, "https://example.com/job", merged.JobURL)
	assert.Equal(t, "Acme", merged.Company)

	// Empty fields take defaults
	assert.Equal(t, "data/portfolio.yaml", merged.Portfolio)
	assert.Equal(t, "out", merged.OutputDir)
	assert.Equal(t, "ollama", merged.Provider)
	assert.Equal(t, "http://localhost:11434", merged.OllamaBaseURL)
	assert.Equal(t, "llama3:8b", merged.OllamaModel)
	assert.Equal(t, 60, merged.OllamaTimeout)
}

func TestMergeWithDefaults_BoolsNotMerged(t *testing.T) {
	cfg := Config{}
	defaults := Config{Verbose: true, UseBrowser: true}

	merged := cfg.MergeWithDefaults(defaults)

	assert.False(t, merged.Verbose)
	assert.False(t, merged.UseBrowser)
}
