package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/coach"
	"github.com/jonathan/interview-coach/internal/observability"
	"github.com/jonathan/interview-coach/internal/resume"
)

var coverLetterCmd = &cobra.Command{
	Use:   "cover-letter",
	Short: "Draft a cover letter for a job",
	Long: `Write a three to four paragraph cover letter from a resume and a job description. The
letter is printed and saved to cover_letter_<Company>.txt unless --out is given.`,
	Args: cobra.NoArgs,
	RunE: runCoverLetter,
}

var (
	coverLetterCompany string
	coverLetterResume  string
	coverLetterOut     string
	coverLetterSource  jobSource
)

func init() {
	coverLetterCmd.Flags().StringVarP(&coverLetterCompany, "company", "c", "", "Company name")
	coverLetterCmd.Flags().StringVarP(&coverLetterResume, "resume", "r", "", "Path to resume file (.pdf, .docx or .txt)")
	coverLetterCmd.Flags().StringVarP(&coverLetterOut, "out", "o", "", "Output file path (default cover_letter_<Company>.txt)")
	_ = coverLetterCmd.MarkFlagRequired("company")
	_ = coverLetterCmd.MarkFlagRequired("resume")
	coverLetterSource.register(coverLetterCmd)

	rootCmd.AddCommand(coverLetterCmd)
}

func runCoverLetter(cmd *cobra.Command, _ []string) error {
	if strings.TrimSpace(coverLetterCompany) == "" {
		return fmt.Errorf("--company is required")
	}
	ctx := cmd.Context()

	resumeText, err := resume.ExtractFile(coverLetterResume)
	if err != nil {
		return err
	}
	jobDesc, err := coverLetterSource.resolve(ctx)
	if err != nil {
		return err
	}

	svc, closeClient, err := newCoach(ctx)
	if err != nil {
		return err
	}
	defer closeClient()

	letter, err := svc.GenerateCoverLetter(ctx, resumeText, jobDesc, coverLetterCompany)
	if err != nil {
		return err
	}

	outPath := coverLetterOut
	if outPath == "" {
		outPath = coach.CoverLetterFilename(coverLetterCompany)
	}
	if err := os.WriteFile(outPath, []byte(letter), 0644); err != nil {
		return fmt.Errorf("failed to write cover letter: %w", err)
	}

	out := cmd.OutOrStdout()
	observability.NewPrinter(out).PrintSection("COVER LETTER", letter)
	_, _ = fmt.Fprintf(out, "\nSaved to %s\n", outPath)
	return nil
}
