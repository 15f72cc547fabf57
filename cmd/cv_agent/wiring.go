package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/amaldonado/cv-forge/internal/config"
	"github.com/amaldonado/cv-forge/internal/fetch"
	"github.com/amaldonado/cv-forge/internal/llm"
	"github.com/amaldonado/cv-forge/internal/pipeline"
	"github.com/amaldonado/cv-forge/internal/render"
)

// resolveConfig loads and validates the optional config file.
func resolveConfig(path string) (config.Config, error) {
	var cfg config.Config
	if path == "" {
		return cfg, nil
	}

	loaded, err := config.LoadConfig(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return cfg, err
	}

	return *loaded, nil
}

// jobInput returns the posting input for the pipelines: file contents when a
// job file is configured, otherwise the posting URL.
func jobInput(cfg config.Config) (string, error) {
	if cfg.Job != "" && cfg.JobURL != "" {
		return "", fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	if cfg.Job != "" {
		data, err := os.ReadFile(cfg.Job)
		if err != nil {
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
		if strings.TrimSpace(string(data)) == "" {
			return "", fmt.Errorf("job file is empty: %s", cfg.Job)
		}
		return string(data), nil
	}

	if cfg.JobURL != "" {
		return cfg.JobURL, nil
	}

	return "", fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
}

// modelConfig merges config file model settings over environment defaults.
func modelConfig(cfg config.Config) *llm.Config {
	mc := llm.ConfigFromEnv()

	if cfg.Provider != "" && llm.Provider(cfg.Provider) != mc.Provider {
		mc.Provider = llm.Provider(cfg.Provider)
		// The model carried over from the other provider is meaningless
		if mc.Provider == llm.ProviderGemini {
			mc.Model = "gemini-2.5-flash"
		} else {
			mc.Model = "llama3:8b"
		}
	}
	if cfg.GeminiAPIKey != "" {
		mc.APIKey = cfg.GeminiAPIKey
	}
	if cfg.OllamaBaseURL != "" {
		mc.BaseURL = cfg.OllamaBaseURL
	}
	if cfg.OllamaModel != "" && mc.Provider == llm.ProviderOllama {
		mc.Model = cfg.OllamaModel
	}
	if cfg.OllamaTimeout > 0 {
		mc.Timeout = time.Duration(cfg.OllamaTimeout) * time.Second
	}

	return mc
}

// newFetcher builds the page fetcher used for URL postings.
func newFetcher(cfg config.Config) (*fetch.CachedFetcher, error) {
	opts := fetch.DefaultOptions()
	opts.NoBrowser = !cfg.UseBrowser
	opts.Verbose = cfg.Verbose

	fetcherCfg := fetch.DefaultCachedFetcherConfig()
	fetcherCfg.Options = opts

	return fetch.NewCachedFetcher(fetcherCfg)
}

// newRenderer writes documents to the output directory when one is
// configured, and to stdout otherwise.
func newRenderer(cfg config.Config) pipeline.Renderer {
	if cfg.OutputDir != "" {
		return render.NewFileRenderer(cfg.OutputDir)
	}
	return render.NewTextRenderer(os.Stdout)
}
