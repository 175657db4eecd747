package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/ingestion"
)

var preprocessCmd = &cobra.Command{
	Use:   "preprocess",
	Short: "Clean and bound a job description for prompting",
	Long: `Render a job posting into cleaned, length-bounded text: tags are stripped, whitespace is
collapsed and text over 8000 characters is truncated. Text shorter than 50 characters after
cleaning is rejected.`,
	Args: cobra.NoArgs,
	RunE: runPreprocess,
}

var (
	preprocessSource jobSource
	preprocessMeta   bool
)

func init() {
	preprocessSource.register(preprocessCmd)
	preprocessCmd.Flags().BoolVar(&preprocessMeta, "meta", false, "Print metadata JSON (length, hash, truncation) after the text")

	rootCmd.AddCommand(preprocessCmd)
}

func runPreprocess(cmd *cobra.Command, _ []string) error {
	var (
		text string
		err  error
	)
	if preprocessSource.text != "" {
		text, err = ingestion.PrepareDescription(preprocessSource.text)
	} else {
		text, err = preprocessSource.resolve(cmd.Context())
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, text)

	if preprocessMeta {
		data, err := ingestion.NewMetadata(text, preprocessSource.url).ToJSON()
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(data))
	}
	return nil
}
