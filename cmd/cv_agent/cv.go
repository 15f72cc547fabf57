package main

import (
	"context"
	"fmt"
	"os"

	"github.com/amaldonado/cv-forge/internal/adapt"
	"github.com/amaldonado/cv-forge/internal/config"
	"github.com/amaldonado/cv-forge/internal/extract"
	"github.com/amaldonado/cv-forge/internal/language"
	"github.com/amaldonado/cv-forge/internal/llm"
	"github.com/amaldonado/cv-forge/internal/observability"
	"github.com/amaldonado/cv-forge/internal/pipeline"
	"github.com/amaldonado/cv-forge/internal/portfolio"
	"github.com/spf13/cobra"
)

var cvCommand = &cobra.Command{
	Use:   "cv",
	Short: "Generate a CV tailored to a job posting",
	Long: `Generates a CV from the portfolio, tailored to the given job posting: extracts requirements, adapts the profile and experience bullets with a language model, and renders the document in the posting's language.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runCVCmd,
}

var (
	cvConfigPath string
	cvJob        string
	cvJobURL     string
	cvRole       string
	cvPortfolio  string
	cvOutputDir  string
	cvUseBrowser bool
	cvVerbose    bool
)

func init() {
	// Config file flag (processed first)
	cvCommand.Flags().StringVar(&cvConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	cvCommand.Flags().StringVarP(&cvJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	cvCommand.Flags().StringVar(&cvJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	cvCommand.Flags().StringVarP(&cvRole, "role", "r", "", "Role hint when the posting title is ambiguous")
	cvCommand.Flags().StringVarP(&cvPortfolio, "portfolio", "p", "", "Path to portfolio YAML file")
	cvCommand.Flags().StringVarP(&cvOutputDir, "output-dir", "o", "", "Directory for generated documents (prints to stdout if unset)")
	cvCommand.Flags().BoolVar(&cvUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	cvCommand.Flags().BoolVarP(&cvVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(cvCommand)
}

func runCVCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	cfg, err := resolveConfig(cvConfigPath)
	if err != nil {
		return err
	}
	if cvVerbose && cvConfigPath != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", cvConfigPath)
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("job") {
		cfg.Job = cvJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = cvJobURL
	}
	if cmd.Flags().Changed("role") {
		cfg.Role = cvRole
	}
	if cmd.Flags().Changed("portfolio") {
		cfg.Portfolio = cvPortfolio
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = cvOutputDir
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = cvUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = cvVerbose
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

	adapter, err := adapt.NewAdapter(client, nil, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create adapter: %w", err)
	}

	pipe := pipeline.NewCVPipeline(
		portfolio.NewProvider(cfg.Portfolio),
		extract.NewAnalyzer(fetcher, cfg.Verbose),
		language.NewDetector(client, cfg.Verbose),
		adapter,
		newRenderer(cfg),
		observability.NewPrinter(os.Stdout),
		cfg.Verbose,
	)

	_, err = pipe.Run(ctx, input, cfg.Role)
	return err
}
