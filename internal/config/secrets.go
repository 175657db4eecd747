package config

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/jonathan/interview-coach/internal/llm"
)

// KeyringService groups the application's secrets in the OS keychain.
const KeyringService = "interview-coach"

// ErrAPIKeyNotFound is returned when no source provides an API key.
var ErrAPIKeyNotFound = errors.New("API key not found (use --api-key, the config file, the provider env var, or 'interview_coach auth set')")

// KeySource names where an API key came from.
type KeySource string

// Key sources, in lookup order.
const (
	SourceFlag    KeySource = "flag"
	SourceConfig  KeySource = "config"
	SourceEnv     KeySource = "env"
	SourceKeyring KeySource = "keyring"
)

// APIKeyEnvVar returns the environment variable holding a provider's key.
func APIKeyEnvVar(p llm.Provider) string {
	if p == llm.ProviderAnthropic {
		return "ANTHROPIC_API_KEY"
	}
	return "GEMINI_API_KEY"
}

// ResolveAPIKey looks for a key in the flag value, the config file, the
// provider's environment variable and finally the OS keychain.
func ResolveAPIKey(flagValue string, cfg *Config, p llm.Provider) (string, KeySource, error) {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v, SourceFlag, nil
	}
	if cfg != nil {
		if v := strings.TrimSpace(cfg.APIKey); v != "" {
			return v, SourceConfig, nil
		}
	}
	if v := strings.TrimSpace(os.Getenv(APIKeyEnvVar(p))); v != "" {
		return v, SourceEnv, nil
	}
	if v, err := GetAPIKey(p); err == nil {
		return v, SourceKeyring, nil
	}
	return "", "", ErrAPIKeyNotFound
}

// GetAPIKey reads a provider's key from the OS keychain.
func GetAPIKey(p llm.Provider) (string, error) {
	key, err := keyring.Get(KeyringService, keyringAccount(p))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(key) == "" {
		return "", ErrAPIKeyNotFound
	}
	return key, nil
}

// SetAPIKey stores a provider's key in the OS keychain.
func SetAPIKey(p llm.Provider, key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("API key is empty")
	}
	return keyring.Set(KeyringService, keyringAccount(p), key)
}

// DeleteAPIKey removes a provider's key from the OS keychain.
func DeleteAPIKey(p llm.Provider) error {
	return keyring.Delete(KeyringService, keyringAccount(p))
}

func keyringAccount(p llm.Provider) string {
	return "interview-coach:" + string(p)
}
