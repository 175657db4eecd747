package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Path pattern: exact, "{name}" segment wildcards, or a "/"-terminated prefix
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	IdleTimeout     time.Duration // buckets unused for this long are dropped
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// LoadConfig loads rate limiting configuration from environment variables.
//
// RATE_LIMIT_LLM_LIMIT and RATE_LIMIT_LLM_WINDOW control the routes that
// issue completion requests; everything else falls under the default limit.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{
			Enabled: false,
		}
	}

	llmLimit := getEnvInt("RATE_LIMIT_LLM_LIMIT", 30)
	llmWindow := getEnvDuration("RATE_LIMIT_LLM_WINDOW", time.Hour)

	return &Config{
		Enabled:         enabled,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 600),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		IdleTimeout:     getEnvDuration("RATE_LIMIT_IDLE_TIMEOUT", time.Hour),
		Whitelist:       parseIPList(getEnvString("RATE_LIMIT_WHITELIST", "")),
		Blacklist:       parseIPList(getEnvString("RATE_LIMIT_BLACKLIST", "")),
		EndpointConfigs: DefaultEndpointConfigs(llmLimit, llmWindow),
	}
}

// DefaultEndpointConfigs returns the endpoint-specific configurations.
// Routes that call the completion API share the strict llm limit.
func DefaultEndpointConfigs(llmLimit int, llmWindow time.Duration) []EndpointConfig {
	llmBurst := max(1, llmLimit/10)
	strict := func(path string) EndpointConfig {
		return EndpointConfig{Path: path, Method: "POST", Limit: llmLimit, Window: llmWindow, Burst: llmBurst}
	}
	return []EndpointConfig{
		// Tier 1: completion requests
		strict("/analyze"),
		strict("/questions"),
		strict("/evaluate"),
		strict("/resume/analyze"),
		strict("/cover-letter"),
		strict("/star"),
		strict("/sessions/{id}/questions"),
		strict("/sessions/{id}/answer"),

		// Tier 2: session writes
		{Path: "/sessions", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/sessions/", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/sessions/", Method: "DELETE", Limit: 120, Window: time.Minute, Burst: 20},

		// Tier 3: local computation and reads fall under the default limit
		// Tier 4: health check (unlimited) is handled in the matcher
	}
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
