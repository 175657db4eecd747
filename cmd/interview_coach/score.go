package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/observability"
	"github.com/jonathan/interview-coach/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Quick-score an answer without calling a model",
	Long:  `Rate an answer from 1 to 10 using length, concrete examples, numbers and sequencing words.`,
	Args:  cobra.NoArgs,
	RunE:  runScore,
}

var (
	scoreAnswer     string
	scoreAnswerFile string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreAnswer, "answer", "a", "", "Answer text")
	scoreCmd.Flags().StringVar(&scoreAnswerFile, "answer-file", "", "Path to a file containing the answer")

	scoreCmd.MarkFlagsMutuallyExclusive("answer", "answer-file")
	scoreCmd.MarkFlagsOneRequired("answer", "answer-file")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	answer, err := readTextInput(scoreAnswer, scoreAnswerFile, "answer")
	if err != nil {
		return err
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintScore(scoring.Breakdown(answer))
	return nil
}
