package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/coach"
	"github.com/jonathan/interview-coach/internal/config"
	"github.com/jonathan/interview-coach/internal/ingestion"
	"github.com/jonathan/interview-coach/internal/jobs"
	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/skills"
)

// settings is the config file merged with root flag overrides for this run.
var settings config.Config

// newLLMClient builds the completion client; tests replace it.
var newLLMClient = llm.NewClient

// loadSettings loads --config (if given) and applies root flag overrides.
func loadSettings(cmd *cobra.Command, _ []string) error {
	var cfg config.Config
	if rootConfigPath != "" {
		loaded, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = *loaded
	}

	flags := cmd.Flags()
	if flags.Changed("provider") {
		cfg.Provider = rootProvider
	}
	if flags.Changed("model") {
		cfg.Model = rootModel
	}
	if flags.Changed("verbose") {
		cfg.Verbose = rootVerbose
	}

	settings = cfg.MergeWithDefaults(config.Config{Provider: string(llm.ProviderGemini)})
	if settings.Verbose && rootConfigPath != "" {
		log.Printf("[VERBOSE] Loaded config from: %s", rootConfigPath)
	}
	return nil
}

// newCoach resolves the API key and builds a coaching service. The returned
// func releases the underlying client.
func newCoach(ctx context.Context) (*coach.Service, func(), error) {
	llmCfg, err := settings.LLMConfig()
	if err != nil {
		return nil, nil, err
	}

	apiKey, source, err := config.ResolveAPIKey(rootAPIKey, &settings, llmCfg.Provider)
	if err != nil {
		return nil, nil, fmt.Errorf("%w (%s for %s)", err, config.APIKeyEnvVar(llmCfg.Provider), llmCfg.Provider)
	}
	if settings.Verbose {
		log.Printf("[VERBOSE] Provider: %s, model: %s, API key from %s", llmCfg.Provider, llmCfg.Model, source)
	}

	client, err := newLLMClient(ctx, llmCfg, apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create completion client: %w", err)
	}
	return coach.NewService(client, llmCfg, settings.Verbose), func() { _ = client.Close() }, nil
}

// loadCatalog returns the configured job catalog or the embedded samples.
func loadCatalog() (*jobs.Catalog, error) {
	if settings.JobsFile == "" {
		return jobs.DefaultCatalog(), nil
	}
	catalog, err := jobs.LoadCatalog(settings.JobsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load jobs file: %w", err)
	}
	return catalog, nil
}

// loadExtractor builds a skill extractor from path, the configured
// vocabulary file, or the built-in vocabulary, in that order.
func loadExtractor(path string) (*skills.Extractor, error) {
	if path == "" {
		path = settings.VocabularyFile
	}
	vocab := skills.DefaultVocabulary()
	if path != "" {
		loaded, err := skills.LoadVocabulary(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load vocabulary: %w", err)
		}
		vocab = loaded
	}
	return skills.NewExtractor(vocab)
}

// readTextInput returns inline text, or the contents of file when text is empty.
func readTextInput(text, file, what string) (string, error) {
	if strings.TrimSpace(text) != "" {
		return text, nil
	}
	if file == "" {
		return "", fmt.Errorf("%s is required", what)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to read %s file: %w", what, err)
	}
	return string(data), nil
}

// jobSource holds the flags that pick the job a command works on.
type jobSource struct {
	in      string
	text    string
	url     string
	browser bool
	index   int
}

func (j *jobSource) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&j.in, "in", "i", "", "Path to job description text file")
	cmd.Flags().StringVar(&j.text, "text", "", "Job description text, used as given")
	cmd.Flags().StringVarP(&j.url, "url", "u", "", "URL to fetch the job posting from")
	cmd.Flags().BoolVar(&j.browser, "browser", false, "Render --url pages in a headless browser when the plain fetch yields too little text (requires Chrome)")
	cmd.Flags().IntVarP(&j.index, "job-index", "j", -1, "Index of a sample job posting (see 'jobs')")

	cmd.MarkFlagsMutuallyExclusive("in", "text", "url", "job-index")
	cmd.MarkFlagsOneRequired("in", "text", "url", "job-index")
}

// resolve returns the job text. Files and catalog postings are cleaned and
// length-checked; URLs are fetched and prepared; --text is used as given.
func (j *jobSource) resolve(ctx context.Context) (string, error) {
	switch {
	case strings.TrimSpace(j.text) != "":
		return strings.TrimSpace(j.text), nil

	case j.in != "":
		data, err := os.ReadFile(j.in)
		if err != nil {
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
		return ingestion.PrepareDescription(string(data))

	case j.url != "":
		text, meta, err := ingestion.IngestFromURL(ctx, j.url, j.browser || settings.UseBrowser, settings.Verbose)
		if err != nil {
			return "", fmt.Errorf("failed to ingest from URL: %w", err)
		}
		if settings.Verbose {
			log.Printf("[VERBOSE] Ingested %d chars (hash %s)", meta.Length, meta.Hash[:12])
		}
		return text, nil

	case j.index >= 0:
		catalog, err := loadCatalog()
		if err != nil {
			return "", err
		}
		posting, err := catalog.Get(j.index)
		if err != nil {
			return "", err
		}
		return ingestion.PreprocessJob(posting)

	default:
		return "", fmt.Errorf("one of --in, --text, --url or --job-index is required")
	}
}
