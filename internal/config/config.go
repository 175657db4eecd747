// Package config provides configuration loading, validation and API key lookup for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/schemas"
)

// DefaultPort is the HTTP API port when none is configured.
const DefaultPort = 8080

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Model
	Provider            string  `json:"provider,omitempty"`             // "gemini" or "anthropic"
	Model               string  `json:"model,omitempty"`                // Provider model name
	APIKey              string  `json:"api_key,omitempty"`              // Provider API key
	MaxTokens           int     `json:"max_tokens,omitempty"`           // Completion size bound
	Temperature         float64 `json:"temperature,omitempty"`          // Default randomness
	CreativeTemperature float64 `json:"creative_temperature,omitempty"` // Cover letters

	// Data
	VocabularyFile string `json:"vocabulary_file,omitempty"` // YAML skill vocabulary
	JobsFile       string `json:"jobs_file,omitempty"`       // YAML job catalog replacing the samples

	// Behavior
	Port       int  `json:"port,omitempty"`        // HTTP API port
	UseBrowser bool `json:"use_browser,omitempty"` // Use headless browser for script-rendered pages
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file, validating it against the
// embedded schema first.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := schemas.ValidateConfig(data); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Provider != "" {
		if _, err := llm.ParseProvider(c.Provider); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	if c.MaxTokens < 0 {
		return fmt.Errorf("config error: 'max_tokens' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	for _, f := range []struct{ name, path string }{
		{"vocabulary", c.VocabularyFile},
		{"jobs", c.JobsFile},
	} {
		if f.path == "" {
			continue
		}
		if _, err := os.Stat(f.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", f.name, f.path)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.VocabularyFile == "" {
		result.VocabularyFile = defaults.VocabularyFile
	}
	if result.JobsFile == "" {
		result.JobsFile = defaults.JobsFile
	}
	if result.MaxTokens == 0 {
		result.MaxTokens = defaults.MaxTokens
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Temperature == 0 {
		result.Temperature = defaults.Temperature
	}
	if result.CreativeTemperature == 0 {
		result.CreativeTemperature = defaults.CreativeTemperature
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// LLMConfig builds the completion settings, using provider defaults for
// anything left unset.
func (c *Config) LLMConfig() (*llm.Config, error) {
	provider, err := llm.ParseProvider(c.Provider)
	if err != nil {
		return nil, err
	}

	out := llm.DefaultConfigFor(provider)
	if c.Model != "" {
		out.Model = c.Model
	}
	if c.MaxTokens > 0 {
		out.MaxTokens = int32(c.MaxTokens)
	}
	if c.Temperature > 0 {
		out.Temperature = float32(c.Temperature)
	}
	if c.CreativeTemperature > 0 {
		out.CreativeTemperature = float32(c.CreativeTemperature)
	}
	return out, out.Validate()
}

// ListenPort returns the configured port or DefaultPort.
func (c *Config) ListenPort() int {
	if c.Port == 0 {
		return DefaultPort
	}
	return c.Port
}
