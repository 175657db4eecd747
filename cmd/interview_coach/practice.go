package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/coach"
	"github.com/jonathan/interview-coach/internal/observability"
	"github.com/jonathan/interview-coach/internal/scoring"
	"github.com/jonathan/interview-coach/internal/session"
	"github.com/jonathan/interview-coach/internal/types"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Run an interactive mock interview",
	Long: `Generate questions for a job and answer them one at a time. End each answer with an
empty line. Type "skip" to move on without feedback or "quit" to stop early. A summary
of quick scores is printed at the end.`,
	Args: cobra.NoArgs,
	RunE: runPractice,
}

var (
	practiceSource jobSource
	practiceCount  int
)

func init() {
	practiceSource.register(practiceCmd)
	practiceCmd.Flags().IntVarP(&practiceCount, "count", "n", coach.DefaultQuestionCount, "Number of questions (5-20)")

	rootCmd.AddCommand(practiceCmd)
}

func runPractice(cmd *cobra.Command, _ []string) error {
	if err := checkQuestionCount(practiceCount); err != nil {
		return err
	}
	ctx := cmd.Context()

	jobDesc, err := practiceSource.resolve(ctx)
	if err != nil {
		return err
	}

	svc, closeClient, err := newCoach(ctx)
	if err != nil {
		return err
	}
	defer closeClient()

	sess := session.New()
	sess.SelectJob(jobDesc)

	raw, err := svc.GenerateQuestions(ctx, jobDesc, practiceCount)
	if err != nil {
		return err
	}
	if err := sess.LoadQuestions(coach.SplitQuestions(raw)); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printer := observability.NewPrinter(out)
	in := bufio.NewReader(cmd.InOrStdin())
	total := len(sess.Questions())

	for {
		question, index, err := sess.CurrentQuestion()
		if err != nil {
			break
		}
		_, _ = fmt.Fprintf(out, "\nQuestion %d/%d: %s\n> ", index+1, total, question)

		answer, eof := readAnswer(in)
		switch strings.ToLower(answer) {
		case "quit":
			eof = true
		case "skip":
			sess.Advance()
		case "":
		default:
			feedback, err := svc.EvaluateAnswer(ctx, question, answer)
			if err != nil {
				return err
			}
			breakdown := scoring.Breakdown(answer)
			sess.RecordEvaluation(types.Evaluation{
				Question:   question,
				Answer:     answer,
				Feedback:   feedback,
				QuickScore: breakdown.Score,
			})
			printer.PrintScore(breakdown)
			printer.PrintSection("FEEDBACK", feedback)
			sess.Advance()
		}
		if eof {
			break
		}
	}

	printer.PrintEvaluations(sess.Evaluations())
	return nil
}

// readAnswer reads lines until an empty line or end of input and reports
// whether input is exhausted.
func readAnswer(r *bufio.Reader) (string, bool) {
	var lines []string
	for {
		line, err := r.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		} else if err == nil && len(lines) > 0 {
			return strings.TrimSpace(strings.Join(lines, "\n")), false
		}
		if err != nil {
			return strings.TrimSpace(strings.Join(lines, "\n")), true
		}
	}
}
