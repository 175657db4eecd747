package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/interview-coach/internal/coach"
	"github.com/jonathan/interview-coach/internal/fetch"
	"github.com/jonathan/interview-coach/internal/ingestion"
	"github.com/jonathan/interview-coach/internal/jobs"
	"github.com/jonathan/interview-coach/internal/resume"
	"github.com/jonathan/interview-coach/internal/session"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "count", Message: "max"}
	assert.Equal(t, "validation error: count - max", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"request validation", &ErrValidation{Field: "answer", Message: "required"}, http.StatusBadRequest},
		{"coach validation", &coach.ValidationError{Field: "question", Message: "must not be empty"}, http.StatusBadRequest},
		{"too short", &ingestion.ValidationError{Length: 3, Min: ingestion.MinLength}, http.StatusBadRequest},
		{"unknown session", session.ErrNotFound, http.StatusNotFound},
		{"wrapped job index", fmt.Errorf("%w: index 9", jobs.ErrNotFound), http.StatusNotFound},
		{"no job", session.ErrNoJobSelected, http.StatusConflict},
		{"no questions", session.ErrNoQuestions, http.StatusConflict},
		{"complete", session.ErrInterviewComplete, http.StatusConflict},
		{"unsupported upload", resume.ErrUnsupportedType, http.StatusUnsupportedMediaType},
		{"unreadable pdf", &resume.ExtractionError{Format: "PDF", Cause: errors.New("bad xref")}, http.StatusUnprocessableEntity},
		{"completion failure", &coach.ExternalServiceError{Op: "analyze_job", Cause: errors.New("quota")}, http.StatusBadGateway},
		{"fetch failure", &fetch.Error{URL: "https://x", Message: "HTTP status 500"}, http.StatusBadGateway},
		{"no client", ErrCoachUnavailable, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
