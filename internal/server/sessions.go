package server

import (
	"net/http"

	"github.com/jonathan/interview-coach/internal/coach"
	"github.com/jonathan/interview-coach/internal/scoring"
	"github.com/jonathan/interview-coach/internal/session"
	"github.com/jonathan/interview-coach/internal/types"
)

// handleCreateSession starts an empty mock-interview session.
func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	sess := s.sessions.Create()
	s.jsonResponse(w, http.StatusCreated, sess.Snapshot())
}

// handleGetSession returns the session state.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, sess.Snapshot())
}

// handleDeleteSession discards a session.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	if err := s.sessions.Delete(sess.ID()); err != nil {
		s.handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSessionJob selects the job the session practices for.
// Any previous questions and evaluations are dropped.
func (s *Server) handleSessionJob(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	var req JobSource
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		s.handleError(w, err)
		return
	}
	jobDesc, err := s.resolveJob(r.Context(), req)
	if err != nil {
		s.handleError(w, err)
		return
	}
	sess.SelectJob(jobDesc)
	s.jsonResponse(w, http.StatusOK, sess.Snapshot())
}

// handleSessionQuestions generates questions for the session's job. A job
// source in the body selects a new job first.
func (s *Server) handleSessionQuestions(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	var req SessionQuestionsRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		s.handleError(w, err)
		return
	}
	svc, err := s.requireCoach()
	if err != nil {
		s.handleError(w, err)
		return
	}

	src := JobSource{JobDescription: req.JobDescription, JobIndex: req.JobIndex, URL: req.URL}
	if src.JobDescription != "" || src.JobIndex != nil || src.URL != "" {
		jobDesc, resolveErr := s.resolveJob(r.Context(), src)
		if resolveErr != nil {
			s.handleError(w, resolveErr)
			return
		}
		sess.SelectJob(jobDesc)
	}

	jobDesc, selected := sess.SelectedJob()
	if !selected {
		s.handleError(w, session.ErrNoJobSelected)
		return
	}

	raw, err := svc.GenerateQuestions(r.Context(), jobDesc, req.Count)
	if err != nil {
		s.handleError(w, err)
		return
	}
	if err := sess.LoadQuestions(coach.SplitQuestions(raw)); err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, sess.Snapshot())
}

// handleSessionAnswer evaluates an answer to the current question and
// records it. The session does not advance until /next.
func (s *Server) handleSessionAnswer(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	var req AnswerRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		s.handleError(w, err)
		return
	}
	svc, err := s.requireCoach()
	if err != nil {
		s.handleError(w, err)
		return
	}

	question, _, err := sess.CurrentQuestion()
	if err != nil {
		s.handleError(w, err)
		return
	}

	feedback, err := svc.EvaluateAnswer(r.Context(), question, req.Answer)
	if err != nil {
		s.handleError(w, err)
		return
	}

	eval := types.Evaluation{
		Question:   question,
		Answer:     req.Answer,
		Feedback:   feedback,
		QuickScore: scoring.ScoreAnswer(req.Answer),
	}
	sess.RecordEvaluation(eval)
	s.jsonResponse(w, http.StatusOK, AnswerResponse{Evaluation: eval, Session: sess.Snapshot()})
}

// handleSessionNext moves to the next question.
func (s *Server) handleSessionNext(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	if _, _, err := sess.CurrentQuestion(); err != nil {
		s.handleError(w, err)
		return
	}
	sess.Advance()
	s.jsonResponse(w, http.StatusOK, sess.Snapshot())
}

// handleSessionReset starts the interview over with the same questions.
func (s *Server) handleSessionReset(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	sess.Reset()
	s.jsonResponse(w, http.StatusOK, sess.Snapshot())
}

// lookupSession resolves the {id} path value, writing a 404 when unknown.
func (s *Server) lookupSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := s.sessions.Lookup(r.PathValue("id"))
	if err != nil {
		s.handleError(w, err)
		return nil, false
	}
	return sess, true
}
