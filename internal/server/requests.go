package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/interview-coach/internal/scoring"
	"github.com/jonathan/interview-coach/internal/session"
	"github.com/jonathan/interview-coach/internal/types"
)

// Question count bounds accepted by the API.
const (
	MinQuestionCount = 5
	MaxQuestionCount = 20
)

// JobSource names the job a request is about: pasted text, a catalog index
// or a posting URL. Exactly one is expected; text wins over index over URL.
type JobSource struct {
	JobDescription string `json:"job_description,omitempty" validate:"required_without_all=JobIndex URL"`
	JobIndex       *int   `json:"job_index,omitempty" validate:"omitempty,min=0"`
	URL            string `json:"url,omitempty" validate:"omitempty,url"`
}

// PreprocessRequest represents the request body for /preprocess
type PreprocessRequest struct {
	JobIndex *int              `json:"job_index,omitempty" validate:"omitempty,min=0"`
	Job      *types.JobPosting `json:"job,omitempty" validate:"required_without=JobIndex"`
}

// ExtractRequest represents the request body for /extract
type ExtractRequest struct {
	Text string `json:"text" validate:"required"`
}

// ScoreRequest represents the request body for /score
type ScoreRequest struct {
	Answer string `json:"answer" validate:"required"`
}

// AnalyzeRequest represents the request body for /analyze and /star
type AnalyzeRequest struct {
	JobSource
}

// QuestionsRequest represents the request body for /questions
type QuestionsRequest struct {
	JobSource
	Count int `json:"count,omitempty" validate:"omitempty,min=5,max=20"`
}

// EvaluateRequest represents the request body for /evaluate
type EvaluateRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// CoverLetterRequest represents the request body for /cover-letter
type CoverLetterRequest struct {
	JobSource
	Resume  string `json:"resume" validate:"required"`
	Company string `json:"company" validate:"required"`
}

// SessionQuestionsRequest represents the request body for /sessions/{id}/questions.
// The job source is optional when the session already has a job.
type SessionQuestionsRequest struct {
	JobDescription string `json:"job_description,omitempty"`
	JobIndex       *int   `json:"job_index,omitempty" validate:"omitempty,min=0"`
	URL            string `json:"url,omitempty" validate:"omitempty,url"`
	Count          int    `json:"count,omitempty" validate:"omitempty,min=5,max=20"`
}

// AnswerRequest represents the request body for /sessions/{id}/answer
type AnswerRequest struct {
	Answer string `json:"answer" validate:"required"`
}

// PreprocessResponse represents the response for /preprocess
type PreprocessResponse struct {
	Text      string `json:"text"`
	Length    int    `json:"length"`
	Hash      string `json:"hash"`
	Truncated bool   `json:"truncated"`
}

// JobView is one posting in the /jobs listing.
type JobView struct {
	Index      int                  `json:"index"`
	Posting    types.JobPosting     `json:"posting"`
	Processed  string               `json:"processed,omitempty"`
	ProcessErr string               `json:"process_error,omitempty"`
	Extracted  *types.ExtractedInfo `json:"extracted,omitempty"`
	DescLength int                  `json:"description_length"`
}

// JobsResponse represents the response for GET /jobs
type JobsResponse struct {
	Jobs              []JobView `json:"jobs"`
	Total             int       `json:"total"`
	AverageDescLength int       `json:"average_description_length"`
}

// QuestionsResponse represents the response for /questions
type QuestionsResponse struct {
	Raw       string   `json:"raw"`
	Questions []string `json:"questions"`
}

// EvaluateResponse represents the response for /evaluate
type EvaluateResponse struct {
	Feedback   string         `json:"feedback"`
	QuickScore int            `json:"quick_score"`
	Breakdown  scoring.Result `json:"breakdown"`
}

// AnswerResponse represents the response for /sessions/{id}/answer
type AnswerResponse struct {
	Evaluation types.Evaluation `json:"evaluation"`
	Session    session.Snapshot `json:"session"`
}

// decodeAndValidate reads a JSON body into req and runs struct validation.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(req); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	return s.validate(req)
}

// validate runs struct validation and converts the first failure to ErrValidation.
func (s *Server) validate(req any) error {
	if err := s.validator.Struct(req); err != nil {
		return extractValidationError(err)
	}
	return nil
}

// extractValidationError converts validator output to an ErrValidation
// naming the first failing field by its JSON name.
func extractValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		ve := validationErrors[0]
		msg := ve.Tag()
		if ve.Param() != "" {
			msg += "=" + ve.Param()
		}
		return &ErrValidation{Field: ve.Field(), Message: msg}
	}
	return &ErrValidation{Field: "body", Message: "invalid request"}
}

// newValidator returns a validator that reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
