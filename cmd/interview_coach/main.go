// Package main provides the interview_coach command line tool and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/coach"
)

var rootCmd = &cobra.Command{
	Use:   "interview_coach",
	Short: "AI interview preparation assistant",
	Long: `interview_coach helps prepare for job interviews: browse sample postings, analyze a job
description, generate and practice interview questions, score answers, review a resume
against a job, and draft cover letters and STAR examples.

Configuration can be loaded from a JSON file using --config. Command-line flags override
config file values.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

var (
	rootConfigPath string
	rootAPIKey     string
	rootProvider   string
	rootModel      string
	rootVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().StringVar(&rootAPIKey, "api-key", "", "Provider API key (defaults to config, GEMINI_API_KEY/ANTHROPIC_API_KEY, then the OS keychain)")
	rootCmd.PersistentFlags().StringVar(&rootProvider, "provider", "", "Completion provider: gemini or anthropic")
	rootCmd.PersistentFlags().StringVar(&rootModel, "model", "", "Provider model name")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, coach.ErrorText(err))
		os.Exit(1)
	}
}
