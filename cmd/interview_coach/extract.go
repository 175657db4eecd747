package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/observability"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract skills and experience requirements from a job description",
	Long: `Match a job description against the skill vocabulary and experience patterns and print
the extracted info as JSON. No API key is needed.`,
	Args: cobra.NoArgs,
	RunE: runExtract,
}

var (
	extractIn         string
	extractText       string
	extractVocabulary string
)

func init() {
	extractCmd.Flags().StringVarP(&extractIn, "in", "i", "", "Path to job description text file")
	extractCmd.Flags().StringVar(&extractText, "text", "", "Job description text")
	extractCmd.Flags().StringVar(&extractVocabulary, "vocabulary", "", "YAML vocabulary file (defaults to config vocabulary_file or the built-in list)")

	extractCmd.MarkFlagsMutuallyExclusive("in", "text")
	extractCmd.MarkFlagsOneRequired("in", "text")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	text, err := readTextInput(extractText, extractIn, "job description")
	if err != nil {
		return err
	}

	extractor, err := loadExtractor(extractVocabulary)
	if err != nil {
		return err
	}
	info := extractor.Extract(text)

	if settings.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintExtractedInfo(info)
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal extracted info: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
