package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Summarize a job's skills, level, culture, duties and red flags",
	Args:  cobra.NoArgs,
	RunE:  runAnalyze,
}

var analyzeSource jobSource

func init() {
	analyzeSource.register(analyzeCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	jobDesc, err := analyzeSource.resolve(ctx)
	if err != nil {
		return err
	}

	svc, closeClient, err := newCoach(ctx)
	if err != nil {
		return err
	}
	defer closeClient()

	analysis, err := svc.AnalyzeJob(ctx, jobDesc)
	if err != nil {
		return err
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintSection("JOB ANALYSIS", analysis)
	return nil
}
