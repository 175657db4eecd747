// Package llm provides the completion client abstraction and its providers.
package llm

import (
	"fmt"
	"strings"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderAnthropic is the Anthropic/Claude provider
	ProviderAnthropic Provider = "anthropic"
)

// Default generation parameters.
const (
	DefaultMaxTokens           int32   = 1500
	DefaultTemperature         float32 = 0.7
	DefaultCreativeTemperature float32 = 0.8
)

var defaultModels = map[Provider]string{
	ProviderGemini:    "gemini-2.5-flash",
	ProviderAnthropic: "claude-3-7-sonnet-latest",
}

// Config holds the model configuration for the application.
// CreativeTemperature is used for free-form writing such as cover letters.
type Config struct {
	Provider            Provider `json:"provider"`
	Model               string   `json:"model"`
	MaxTokens           int32    `json:"max_tokens"`
	Temperature         float32  `json:"temperature"`
	CreativeTemperature float32  `json:"creative_temperature"`
}

// DefaultConfig returns the default configuration (Gemini)
func DefaultConfig() *Config {
	return DefaultConfigFor(ProviderGemini)
}

// DefaultConfigFor returns the default configuration for a provider.
func DefaultConfigFor(p Provider) *Config {
	return &Config{
		Provider:            p,
		Model:               DefaultModel(p),
		MaxTokens:           DefaultMaxTokens,
		Temperature:         DefaultTemperature,
		CreativeTemperature: DefaultCreativeTemperature,
	}
}

// DefaultModel returns the default model name for a provider, or "" if unknown.
func DefaultModel(p Provider) string {
	return defaultModels[p]
}

// ParseProvider converts a user-supplied provider name.
func ParseProvider(s string) (Provider, error) {
	switch p := Provider(strings.ToLower(strings.TrimSpace(s))); p {
	case ProviderGemini, ProviderAnthropic:
		return p, nil
	case "":
		return ProviderGemini, nil
	default:
		return "", fmt.Errorf("unknown LLM provider %q (want %q or %q)", s, ProviderGemini, ProviderAnthropic)
	}
}

// WithModel returns a copy of the config using model.
func (c *Config) WithModel(model string) *Config {
	cp := *c
	cp.Model = model
	return &cp
}

// Validate checks the generation parameters.
func (c *Config) Validate() error {
	if _, err := ParseProvider(string(c.Provider)); err != nil {
		return err
	}
	if c.Model == "" {
		return fmt.Errorf("model is required")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive, got %d", c.MaxTokens)
	}
	for name, v := range map[string]float32{"temperature": c.Temperature, "creative_temperature": c.CreativeTemperature} {
		if v < 0 || v > 2 {
			return fmt.Errorf("%s must be between 0 and 2, got %v", name, v)
		}
	}
	return nil
}
