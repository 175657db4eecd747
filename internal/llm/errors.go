package llm

import "errors"

var (
	// ErrMissingAPIKey is returned when a client is created without credentials
	ErrMissingAPIKey = errors.New("API key is required")
	// ErrEmptyResponse is returned when the provider answers without any text
	ErrEmptyResponse = errors.New("no content in response")
)
