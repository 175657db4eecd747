package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const messageResponse = `{
  "id": "msg_01",
  "type": "message",
  "role": "assistant",
  "model": "claude-3-7-sonnet-latest",
  "content": [{"type": "text", "text": "1. Tell me about yourself"}],
  "stop_reason": "end_turn",
  "stop_sequence": null,
  "usage": {"input_tokens": 10, "output_tokens": 5}
}`

func newTestAnthropic(t *testing.T, handler http.HandlerFunc) *AnthropicClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewAnthropicClient(DefaultConfigFor(ProviderAnthropic), "test-key",
		anthropicoption.WithBaseURL(server.URL+"/"))
	require.NoError(t, err)
	return client
}

func TestAnthropicClient_Complete(t *testing.T) {
	client := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		var body struct {
			Model       string  `json:"model"`
			MaxTokens   int     `json:"max_tokens"`
			Temperature float64 `json:"temperature"`
			System      []struct {
				Text string `json:"text"`
			} `json:"system"`
			Messages []struct {
				Role    string `json:"role"`
				Content []struct {
					Text string `json:"text"`
				} `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "claude-3-7-sonnet-latest", body.Model)
		assert.Equal(t, 1500, body.MaxTokens)
		assert.InDelta(t, 0.7, body.Temperature, 1e-6)
		require.Len(t, body.System, 1)
		assert.Equal(t, "You are a helpful AI interview coach.", body.System[0].Text)
		require.Len(t, body.Messages, 1)
		assert.Equal(t, "user", body.Messages[0].Role)
		assert.Equal(t, "generate questions", body.Messages[0].Content[0].Text)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(messageResponse))
	})

	text, err := client.Complete(context.Background(), Request{
		System:      "You are a helpful AI interview coach.",
		Prompt:      "generate questions",
		Temperature: 0.7,
		MaxTokens:   1500,
	})
	require.NoError(t, err)
	assert.Equal(t, "1. Tell me about yourself", text)
}

func TestAnthropicClient_ErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	client := newTestAnthropic(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"boom"}}`))
	})

	_, err := client.Complete(context.Background(), Request{Prompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate content")
	assert.Equal(t, int32(1), calls.Load())
}

func TestAnthropicClient_NoTextBlocks(t *testing.T) {
	client := newTestAnthropic(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_02","type":"message","role":"assistant","model":"m","content":[],"stop_reason":"end_turn","usage":{"input_tokens":1,"output_tokens":0}}`))
	})

	_, err := client.Complete(context.Background(), Request{Prompt: "hi"})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}
