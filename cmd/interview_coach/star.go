package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/observability"
)

var starCmd = &cobra.Command{
	Use:   "star",
	Short: "Generate STAR-method example answers for a job",
	Long:  `Generate three behavioral questions with Situation, Task, Action and Result example answers tailored to the job.`,
	Args:  cobra.NoArgs,
	RunE:  runSTAR,
}

var starSource jobSource

func init() {
	starSource.register(starCmd)
	rootCmd.AddCommand(starCmd)
}

func runSTAR(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	jobDesc, err := starSource.resolve(ctx)
	if err != nil {
		return err
	}

	svc, closeClient, err := newCoach(ctx)
	if err != nil {
		return err
	}
	defer closeClient()

	examples, err := svc.GenerateSTARExamples(ctx, jobDesc)
	if err != nil {
		return err
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintSection("STAR EXAMPLES", examples)
	return nil
}
