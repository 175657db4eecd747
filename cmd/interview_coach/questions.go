package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/coach"
	"github.com/jonathan/interview-coach/internal/observability"
)

// Question count bounds for generated interviews.
const (
	minQuestionCount = 5
	maxQuestionCount = 20
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Generate interview questions for a job",
	Long: `Generate a mix of technical, behavioral, culture-fit and problem-solving interview
questions for a job. Use 'practice' to answer them interactively.`,
	Args: cobra.NoArgs,
	RunE: runQuestions,
}

var (
	questionsSource jobSource
	questionsCount  int
)

func init() {
	questionsSource.register(questionsCmd)
	questionsCmd.Flags().IntVarP(&questionsCount, "count", "n", coach.DefaultQuestionCount, "Number of questions (5-20)")

	rootCmd.AddCommand(questionsCmd)
}

// checkQuestionCount enforces the accepted question count range.
func checkQuestionCount(n int) error {
	if n < minQuestionCount || n > maxQuestionCount {
		return fmt.Errorf("--count must be between %d and %d, got %d", minQuestionCount, maxQuestionCount, n)
	}
	return nil
}

func runQuestions(cmd *cobra.Command, _ []string) error {
	if err := checkQuestionCount(questionsCount); err != nil {
		return err
	}
	ctx := cmd.Context()

	jobDesc, err := questionsSource.resolve(ctx)
	if err != nil {
		return err
	}

	svc, closeClient, err := newCoach(ctx)
	if err != nil {
		return err
	}
	defer closeClient()

	raw, err := svc.GenerateQuestions(ctx, jobDesc, questionsCount)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	observability.NewPrinter(out).PrintSection("INTERVIEW QUESTIONS", raw)
	_, _ = fmt.Fprintf(out, "\nGenerated %d questions. Practice them with 'interview_coach practice'.\n", len(coach.SplitQuestions(raw)))
	return nil
}
