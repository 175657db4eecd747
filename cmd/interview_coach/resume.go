package main

import (
	"log"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/observability"
	"github.com/jonathan/interview-coach/internal/resume"
)

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Review a resume against a job",
	Long: `Extract text from a PDF, DOCX or plain-text resume and get a match score, matching and
missing skills, and suggested improvements for the job.`,
	Args: cobra.NoArgs,
	RunE: runResume,
}

var (
	resumePath   string
	resumeSource jobSource
)

func init() {
	resumeCmd.Flags().StringVarP(&resumePath, "resume", "r", "", "Path to resume file (.pdf, .docx or .txt)")
	_ = resumeCmd.MarkFlagRequired("resume")
	resumeSource.register(resumeCmd)

	rootCmd.AddCommand(resumeCmd)
}

func runResume(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	resumeText, err := resume.ExtractFile(resumePath)
	if err != nil {
		return err
	}
	if settings.Verbose {
		log.Printf("[VERBOSE] Extracted %d chars from %s", utf8.RuneCountInString(resumeText), resumePath)
	}

	jobDesc, err := resumeSource.resolve(ctx)
	if err != nil {
		return err
	}

	svc, closeClient, err := newCoach(ctx)
	if err != nil {
		return err
	}
	defer closeClient()

	analysis, err := svc.AnalyzeResume(ctx, resumeText, jobDesc)
	if err != nil {
		return err
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintSection("RESUME ANALYSIS", analysis)
	return nil
}
