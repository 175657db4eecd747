package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/schemas"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, `{
		"provider": "anthropic",
		"model": "claude-3-5-haiku-latest",
		"max_tokens": 800,
		"temperature": 0.5,
		"port": 9090,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, "claude-3-5-haiku-latest", cfg.Model)
	assert.Equal(t, 800, cfg.MaxTokens)
	assert.InDelta(t, 0.5, cfg.Temperature, 1e-9)
	assert.Equal(t, 9090, cfg.ListenPort())
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{ invalid json }`))
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_SchemaViolation(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{"provider": "openai", "temperature": 5}`))
	require.Error(t, err)
	assert.Nil(t, cfg)

	var valErr *schemas.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Len(t, valErr.Errors, 2)
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	vocab := filepath.Join(t.TempDir(), "vocab.yaml")
	require.NoError(t, os.WriteFile(vocab, []byte("terms: []"), 0o644))

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty ok", Config{}, ""},
		{"existing vocabulary", Config{VocabularyFile: vocab}, ""},
		{"bad provider", Config{Provider: "openai"}, "unknown LLM provider"},
		{"negative tokens", Config{MaxTokens: -1}, "max_tokens"},
		{"bad port", Config{Port: 70000}, "port"},
		{"missing vocabulary", Config{VocabularyFile: "/nope/vocab.yaml"}, "vocabulary file not found"},
		{"missing jobs file", Config{JobsFile: "/nope/jobs.yaml"}, "jobs file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Model: "mine", Port: 0}
	merged := cfg.MergeWithDefaults(Config{Provider: "gemini", Model: "theirs", Port: 9000, MaxTokens: 100})

	assert.Equal(t, "gemini", merged.Provider)
	assert.Equal(t, "mine", merged.Model)
	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, 100, merged.MaxTokens)
	assert.Equal(t, "", cfg.Provider) // receiver untouched
}

func TestLLMConfig(t *testing.T) {
	cfg := Config{}
	out, err := cfg.LLMConfig()
	require.NoError(t, err)
	assert.Equal(t, llm.DefaultConfig(), out)

	cfg = Config{Provider: "anthropic", MaxTokens: 900, Temperature: 0.3, CreativeTemperature: 1.0}
	out, err = cfg.LLMConfig()
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderAnthropic, out.Provider)
	assert.Equal(t, llm.DefaultModel(llm.ProviderAnthropic), out.Model)
	assert.Equal(t, int32(900), out.MaxTokens)
	assert.InDelta(t, 0.3, out.Temperature, 1e-6)
	assert.InDelta(t, 1.0, out.CreativeTemperature, 1e-6)

	_, err = (&Config{Provider: "bogus"}).LLMConfig()
	assert.Error(t, err)
}

func TestListenPort_Default(t *testing.T) {
	assert.Equal(t, DefaultPort, (&Config{}).ListenPort())
}
