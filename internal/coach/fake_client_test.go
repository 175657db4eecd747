package coach

import (
	"context"
	"sync"

	"github.com/jonathan/interview-coach/internal/llm"
)

// fakeClient records requests and replies with a fixed response or error.
type fakeClient struct {
	mu       sync.Mutex
	response string
	err      error
	requests []llm.Request
}

func (f *fakeClient) Complete(_ context.Context, req llm.Request) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeClient) Model() string { return "fake-model" }

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) lastRequest() llm.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}
