package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/observability"
	"github.com/jonathan/interview-coach/internal/scoring"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Get AI feedback on an interview answer",
	Long: `Evaluate an answer to an interview question. Prints the local quick score followed by
the model's strengths, improvements, score and improved example answer.`,
	Args: cobra.NoArgs,
	RunE: runEvaluate,
}

var (
	evaluateQuestion   string
	evaluateAnswer     string
	evaluateAnswerFile string
)

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateQuestion, "question", "q", "", "Interview question being answered")
	evaluateCmd.Flags().StringVarP(&evaluateAnswer, "answer", "a", "", "Answer text")
	evaluateCmd.Flags().StringVar(&evaluateAnswerFile, "answer-file", "", "Path to a file containing the answer")

	_ = evaluateCmd.MarkFlagRequired("question")
	evaluateCmd.MarkFlagsMutuallyExclusive("answer", "answer-file")
	evaluateCmd.MarkFlagsOneRequired("answer", "answer-file")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	if strings.TrimSpace(evaluateQuestion) == "" {
		return fmt.Errorf("--question is required")
	}
	answer, err := readTextInput(evaluateAnswer, evaluateAnswerFile, "answer")
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	svc, closeClient, err := newCoach(ctx)
	if err != nil {
		return err
	}
	defer closeClient()

	feedback, err := svc.EvaluateAnswer(ctx, evaluateQuestion, answer)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintScore(scoring.Breakdown(answer))
	printer.PrintSection("FEEDBACK", feedback)
	return nil
}
