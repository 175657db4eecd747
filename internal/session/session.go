// Package session holds the transient state of one mock-interview user.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/interview-coach/internal/types"
)

var (
	// ErrNoJobSelected is returned when questions are loaded before a job is chosen
	ErrNoJobSelected = errors.New("no job selected")
	// ErrNoQuestions is returned when the session has no questions loaded
	ErrNoQuestions = errors.New("no interview questions loaded")
	// ErrInterviewComplete is returned when every question has been answered
	ErrInterviewComplete = errors.New("mock interview complete")
)

// Session is one user's working context: the chosen job, the generated
// questions, the position in the mock interview and the evaluations so far.
// It is safe for concurrent use.
type Session struct {
	mu sync.RWMutex

	id          uuid.UUID
	createdAt   time.Time
	job         string
	questions   []string
	index       int
	evaluations []types.Evaluation
}

// Snapshot is a read-only copy of a Session's state.
type Snapshot struct {
	ID           uuid.UUID          `json:"id"`
	CreatedAt    time.Time          `json:"created_at"`
	SelectedJob  string             `json:"selected_job,omitempty"`
	Questions    []string           `json:"questions"`
	CurrentIndex int                `json:"current_index"`
	Complete     bool               `json:"complete"`
	Evaluations  []types.Evaluation `json:"evaluations"`
}

// New creates an empty session with a fresh ID.
func New() *Session {
	return &Session{id: uuid.New(), createdAt: time.Now().UTC()}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// SelectJob sets the preprocessed job text. Questions, progress and
// evaluations from a previous job are discarded.
func (s *Session) SelectJob(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.job = text
	s.questions = nil
	s.index = 0
	s.evaluations = nil
}

// SelectedJob returns the job text and whether one is set.
func (s *Session) SelectedJob() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.job, s.job != ""
}

// LoadQuestions replaces the question list and restarts the interview.
func (s *Session) LoadQuestions(questions []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.job == "" {
		return ErrNoJobSelected
	}
	if len(questions) == 0 {
		return ErrNoQuestions
	}
	s.questions = append([]string(nil), questions...)
	s.index = 0
	s.evaluations = nil
	return nil
}

// Questions returns a copy of the loaded questions.
func (s *Session) Questions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.questions...)
}

// CurrentQuestion returns the question at the current index and its position.
func (s *Session) CurrentQuestion() (string, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.questions) == 0 {
		return "", 0, ErrNoQuestions
	}
	if s.index >= len(s.questions) {
		return "", s.index, ErrInterviewComplete
	}
	return s.questions[s.index], s.index, nil
}

// RecordEvaluation stores the feedback for the current question.
func (s *Session) RecordEvaluation(e types.Evaluation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evaluations = append(s.evaluations, e)
}

// Advance moves to the next question. It reports whether a question remains.
func (s *Session) Advance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index < len(s.questions) {
		s.index++
	}
	return s.index < len(s.questions)
}

// Complete reports whether every loaded question has been passed.
func (s *Session) Complete() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.questions) > 0 && s.index >= len(s.questions)
}

// Evaluations returns a copy of the recorded evaluations.
func (s *Session) Evaluations() []types.Evaluation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.Evaluation(nil), s.evaluations...)
}

// Reset starts the mock interview over, keeping the job and questions.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = 0
	s.evaluations = nil
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		ID:           s.id,
		CreatedAt:    s.createdAt,
		SelectedJob:  s.job,
		Questions:    append([]string{}, s.questions...),
		CurrentIndex: s.index,
		Complete:     len(s.questions) > 0 && s.index >= len(s.questions),
		Evaluations:  append([]types.Evaluation{}, s.evaluations...),
	}
}
