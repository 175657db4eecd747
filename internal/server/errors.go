package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/interview-coach/internal/coach"
	"github.com/jonathan/interview-coach/internal/fetch"
	"github.com/jonathan/interview-coach/internal/ingestion"
	"github.com/jonathan/interview-coach/internal/jobs"
	"github.com/jonathan/interview-coach/internal/resume"
	"github.com/jonathan/interview-coach/internal/session"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrCoachUnavailable is returned by routes that need a completion client
// when the server was started without one.
var ErrCoachUnavailable = errors.New("no completion API key configured")

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		reqErr     *ErrValidation
		coachErr   *coach.ValidationError
		ingestErr  *ingestion.ValidationError
		svcErr     *coach.ExternalServiceError
		extractErr *resume.ExtractionError
		fetchErr   *fetch.Error
	)

	switch {
	case errors.As(err, &reqErr), errors.As(err, &coachErr), errors.As(err, &ingestErr):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrNotFound), errors.Is(err, jobs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrNoJobSelected),
		errors.Is(err, session.ErrNoQuestions),
		errors.Is(err, session.ErrInterviewComplete):
		return http.StatusConflict
	case errors.Is(err, resume.ErrUnsupportedType):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &extractErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &svcErr), errors.As(err, &fetchErr):
		return http.StatusBadGateway
	case errors.Is(err, ErrCoachUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
