package main

import (
	"context"
	"fmt"
	"os"

	"github.com/amaldonado/cv-forge/internal/config"
	"github.com/amaldonado/cv-forge/internal/extract"
	"github.com/amaldonado/cv-forge/internal/keywords"
	"github.com/amaldonado/cv-forge/internal/observability"
	"github.com/amaldonado/cv-forge/internal/portfolio"
	"github.com/amaldonado/cv-forge/internal/ranking"
	"github.com/spf13/cobra"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job posting without generating documents",
	Long: `Extracts structured requirements and critical keywords from a job posting and shows how the portfolio experience ranks against them. No language model is involved; this is useful for checking what the generators would work from.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath string
	analyzeJob        string
	analyzeJobURL     string
	analyzeRole       string
	analyzePortfolio  string
	analyzeUseBrowser bool
	analyzeVerbose    bool
)

func init() {
	// Config file flag (processed first)
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCommand.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	analyzeCommand.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	analyzeCommand.Flags().StringVarP(&analyzeRole, "role", "r", "", "Role hint when the posting title is ambiguous")
	analyzeCommand.Flags().StringVarP(&analyzePortfolio, "portfolio", "p", "", "Path to portfolio YAML file")
	analyzeCommand.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	cfg, err := resolveConfig(analyzeConfigPath)
	if err != nil {
		return err
	}
	if analyzeVerbose && analyzeConfigPath != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", analyzeConfigPath)
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("job") {
		cfg.Job = analyzeJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = analyzeJobURL
	}
	if cmd.Flags().Changed("role") {
		cfg.Role = analyzeRole
	}
	if cmd.Flags().Changed("portfolio") {
		cfg.Portfolio = analyzePortfolio
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = analyzeUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
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

	// Step 5: Extract and report
	fetcher, err := newFetcher(cfg)
	if err != nil {
		return fmt.Errorf("failed to create fetcher: %w", err)
	}

	analyzer := extract.NewAnalyzer(fetcher, cfg.Verbose)
	reqs, err := analyzer.Analyze(ctx, input, cfg.Role)
	if err != nil {
		return fmt.Errorf("failed to analyze posting: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintRequirements(reqs)
	printer.PrintKeywords(keywords.Critical(reqs))

	p, err := portfolio.NewProvider(cfg.Portfolio).Load()
	if err != nil {
		return fmt.Errorf("failed to load portfolio: %w", err)
	}
	printer.PrintRanking(ranking.RankForCV(p, reqs))

	return nil
}
