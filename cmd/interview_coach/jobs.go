package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/ingestion"
	"github.com/jonathan/interview-coach/internal/observability"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Search the sample job postings",
	Long: `Search job postings by keyword (title and description) and location. With no filters every
posting is listed; when nothing matches, the first two postings are shown instead.`,
	Args: cobra.NoArgs,
	RunE: runJobs,
}

var (
	jobsQuery         string
	jobsLocation      string
	jobsShowProcessed bool
)

func init() {
	jobsCmd.Flags().StringVarP(&jobsQuery, "query", "q", "", "Keyword to match in title or description")
	jobsCmd.Flags().StringVarP(&jobsLocation, "location", "l", "", "Location to match")
	jobsCmd.Flags().BoolVar(&jobsShowProcessed, "show-processed", false, "Print each posting's preprocessed text and extracted info")

	rootCmd.AddCommand(jobsCmd)
}

func runJobs(cmd *cobra.Command, _ []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	results := catalog.Search(jobsQuery, jobsLocation)
	if len(results) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No job postings available.")
		return nil
	}

	indices := make([]int, len(results))
	for i, p := range results {
		indices[i] = catalog.IndexOf(p)
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintJobList(results, indices)

	if !jobsShowProcessed {
		return nil
	}

	extractor, err := loadExtractor("")
	if err != nil {
		return err
	}
	for i, posting := range results {
		printer.PrintJobPosting(posting)
		processed, err := ingestion.PreprocessJob(posting)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Posting %d could not be processed: %v\n", indices[i], err)
			continue
		}
		printer.PrintSection(fmt.Sprintf("PROCESSED #%d", indices[i]), processed)
		printer.PrintExtractedInfo(extractor.Extract(processed))
	}
	return nil
}
