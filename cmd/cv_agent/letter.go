package main

import (
	"context"
	"fmt"
	"os"

	"github.com/amaldonado/cv-forge/internal/config"
	"github.com/amaldonado/cv-forge/internal/extract"
	"github.com/amaldonado/cv-forge/internal/language"
	"github.com/amaldonado/cv-forge/internal/letter"
	"github.com/amaldonado/cv-forge/internal/llm"
	"github.com/amaldonado/cv-forge/internal/observability"
	"github.com/amaldonado/cv-forge/internal/pipeline"
	"github.com/amaldonado/cv-forge/internal/portfolio"
	"github.com/spf13/cobra"
)

var letterCommand = &cobra.Command{
	Use:   "letter",
	Short: "Generate a cover letter tailored to a job posting",
	Long: `Generates a cover letter from the portfolio for the given job posting: extracts requirements and critical keywords, picks the most relevant experience as evidence, and writes the letter body with a language model in the posting's language.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runLetterCmd,
}

var (
	letterConfigPath string
	letterJob        string
	letterJobURL     string
	letterCompany    string
	letterRole       string
	letterPortfolio  string
	letterOutputDir  string
	letterUseBrowser bool
	letterVerbose    bool
)

func init() {
	// Config file flag (processed first)
	letterCommand.Flags().StringVar(&letterConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	letterCommand.Flags().StringVarP(&letterJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	letterCommand.Flags().StringVar(&letterJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	letterCommand.Flags().StringVarP(&letterCompany, "company", "c", "", "Target company name (optional, used for addressing)")
	letterCommand.Flags().StringVarP(&letterRole, "role", "r", "", "Role hint when the posting title is ambiguous")
	letterCommand.Flags().StringVarP(&letterPortfolio, "portfolio", "p", "", "Path to portfolio YAML file")
	letterCommand.Flags().StringVarP(&letterOutputDir, "output-dir", "o", "", "Directory for generated documents (prints to stdout if unset)")
	letterCommand.Flags().BoolVar(&letterUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	letterCommand.Flags().BoolVarP(&letterVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(letterCommand)
}

func runLetterCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	cfg, err := resolveConfig(letterConfigPath)
	if err != nil {
		return err
	}
	if letterVerbose && letterConfigPath != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", letterConfigPath)
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("job") {
		cfg.Job = letterJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = letterJobURL
	}
	if cmd.Flags().Changed("company") {
		cfg.Company = letterCompany
	}
	if cmd.Flags().Changed("role") {
		cfg.Role = letterRole
	}
	if cmd.Flags().Changed("portfolio") {
		cfg.Portfolio = letterPortfolio
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = letterOutputDir
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = letterUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = letterVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		Portfolio: portfolio.DefaultPath,
	})

	// Step 4: Validate required fields
	input, err := jobInput(cfg)
	if err != nil {
		return err
	}

	// Step 5: Wire collaborators
	client, err := llm.NewClient(ctx, modelConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}
	defer func() { _ = client.Close() }()

	fetcher, err := newFetcher(cfg)
	if err != nil {
		return fmt.Errorf("failed to create fetcher: %w", err)
	}

	pipe := pipeline.NewLetterPipeline(
		portfolio.NewProvider(cfg.Portfolio),
		extract.NewAnalyzer(fetcher, cfg.Verbose),
		language.NewDetector(client, cfg.Verbose),
		letter.NewGenerator(client, cfg.Verbose),
		newRenderer(cfg),
		observability.NewPrinter(os.Stdout),
		cfg.Verbose,
	)

	_, err = pipe.Run(ctx, input, cfg.Company)
	return err
}
