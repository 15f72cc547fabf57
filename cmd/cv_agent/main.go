// Package main provides the entry point for the CV Forge CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_agent",
	Short: "CV Forge document generator",
	Long:  "CV Forge tailors a CV and cover letter to a job posting: it extracts requirements, ranks portfolio experience, and adapts content with a language model in the posting's language.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
