package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/amaldonado/cv-forge/internal/config"
	"github.com/amaldonado/cv-forge/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearModelEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"LLM_PROVIDER", "OLLAMA_BASE_URL", "OLLAMA_MODEL", "OLLAMA_TIMEOUT", "GEMINI_API_KEY", "GEMINI_MODEL"} {
		t.Setenv(key, "")
	}
}

func TestJobInput_ReadsJobFile(t *testing.T) {
	jobFile := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(jobFile, []byte("Backend Engineer posting"), 0644))

	input, err := jobInput(config.Config{Job: jobFile})
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer posting", input)
}

func TestJobInput_PassesURLThrough(t *testing.T) {
	input, err := jobInput(config.Config{JobURL: "https://example.com/job"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/job", input)
}

func TestJobInput_EmptyJobFile(t *testing.T) {
	jobFile := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(jobFile, []byte("  \n"), 0644))

	_, err := jobInput(config.Config{Job: jobFile})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "job file is empty")
}

func TestJobInput_NeitherProvided(t *testing.T) {
	_, err := jobInput(config.Config{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "either --job or --job-url must be provided")
}

func TestJobInput_BothProvided(t *testing.T) {
	_, err := jobInput(config.Config{Job: "job.txt", JobURL: "https://example.com/job"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestModelConfig_DefaultsToOllama(t *testing.T) {
	clearModelEnv(t)

	mc := modelConfig(config.Config{})

	assert.Equal(t, llm.ProviderOllama, mc.Provider)
	assert.Equal(t, "llama3:8b", mc.Model)
}

func TestModelConfig_ProviderSwitchResetsModel(t *testing.T) {
	clearModelEnv(t)

	mc := modelConfig(config.Config{Provider: "gemini", GeminiAPIKey: "test-key"})

	assert.Equal(t, llm.ProviderGemini, mc.Provider)
	assert.Equal(t, "gemini-2.5-flash", mc.Model)
	assert.Equal(t, "test-key", mc.APIKey)
}

func TestModelConfig_OllamaOverrides(t *testing.T) {
	clearModelEnv(t)

	mc := modelConfig(config.Config{
		OllamaBaseURL: "http://ollama.internal:11434",
		OllamaModel:   "mistral:7b",
		OllamaTimeout: 120,
	})

	assert.Equal(t, "http://ollama.internal:11434", mc.BaseURL)
	assert.Equal(t, "mistral:7b", mc.Model)
	assert.Equal(t, 120*time.Second, mc.Timeout)
}

func TestModelConfig_OllamaModelIgnoredForGemini(t *testing.T) {
	clearModelEnv(t)

	mc := modelConfig(config.Config{Provider: "gemini", OllamaModel: "mistral:7b"})

	assert.Equal(t, "gemini-2.5-flash", mc.Model)
}

func TestResolveConfig_EmptyPathIsZeroConfig(t *testing.T) {
	cfg, err := resolveConfig("")
	require.NoError(t, err)
	assert.Equal(t, config.Config{}, cfg)
}

func TestResolveConfig_InvalidConfigRejected(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(cfgFile, []byte(`{"provider": "openai"}`), 0644))

	_, err := resolveConfig(cfgFile)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'provider'")
}
