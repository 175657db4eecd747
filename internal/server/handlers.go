package server

import (
	"context"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/interview-coach/internal/coach"
	"github.com/jonathan/interview-coach/internal/ingestion"
	"github.com/jonathan/interview-coach/internal/resume"
	"github.com/jonathan/interview-coach/internal/scoring"
	"github.com/jonathan/interview-coach/internal/types"
)

// handleListJobs searches the catalog. Each posting comes with its
// preprocessed text and extracted info for the browse view.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	location := r.URL.Query().Get("location")

	postings := s.catalog.Search(query, location)

	views := make([]JobView, 0, len(postings))
	totalLen := 0
	for _, p := range postings {
		view := s.jobView(s.catalog.IndexOf(p), p)
		totalLen += view.DescLength
		views = append(views, view)
	}

	resp := JobsResponse{Jobs: views, Total: len(views)}
	if len(views) > 0 {
		resp.AverageDescLength = totalLen / len(views)
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleGetJob returns one catalog posting by index.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job index")
		return
	}
	posting, err := s.catalog.Get(index)
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.jobView(index, posting))
}

func (s *Server) jobView(index int, p types.JobPosting) JobView {
	view := JobView{
		Index:      index,
		Posting:    p,
		DescLength: utf8.RuneCountInString(p.Description),
	}
	processed, err := ingestion.PreprocessJob(p)
	if err != nil {
		view.ProcessErr = err.Error()
		return view
	}
	info := s.extractor.Extract(processed)
	view.Processed = processed
	view.Extracted = &info
	return view
}

// handlePreprocess renders a posting into prompt-ready text.
func (s *Server) handlePreprocess(w http.ResponseWriter, r *http.Request) {
	var req PreprocessRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		s.handleError(w, err)
		return
	}

	var posting types.JobPosting
	if req.JobIndex != nil {
		p, err := s.catalog.Get(*req.JobIndex)
		if err != nil {
			s.handleError(w, err)
			return
		}
		posting = p
	} else {
		posting = *req.Job
	}

	text, err := ingestion.PreprocessJob(posting)
	if err != nil {
		s.handleError(w, err)
		return
	}
	meta := ingestion.NewMetadata(text, "")
	s.jsonResponse(w, http.StatusOK, PreprocessResponse{
		Text:      text,
		Length:    meta.Length,
		Hash:      meta.Hash,
		Truncated: meta.Truncated,
	})
}

// handleExtract returns keyword-derived skills and requirements.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.extractor.Extract(req.Text))
}

// handleScore rates an answer with the local heuristics.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, scoring.Breakdown(req.Answer))
}

// handleAnalyze summarizes a job posting.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		s.handleError(w, err)
		return
	}
	svc, err := s.requireCoach()
	if err != nil {
		s.handleError(w, err)
		return
	}
	jobDesc, err := s.resolveJob(r.Context(), req.JobSource)
	if err != nil {
		s.handleError(w, err)
		return
	}

	analysis, err := svc.AnalyzeJob(r.Context(), jobDesc)
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"analysis": analysis})
}

// handleQuestions generates interview questions.
func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	var req QuestionsRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		s.handleError(w, err)
		return
	}
	svc, err := s.requireCoach()
	if err != nil {
		s.handleError(w, err)
		return
	}
	jobDesc, err := s.resolveJob(r.Context(), req.JobSource)
	if err != nil {
		s.handleError(w, err)
		return
	}

	raw, err := svc.GenerateQuestions(r.Context(), jobDesc, req.Count)
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, QuestionsResponse{Raw: raw, Questions: coach.SplitQuestions(raw)})
}

// handleEvaluate returns AI feedback together with the local quick score.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		s.handleError(w, err)
		return
	}
	svc, err := s.requireCoach()
	if err != nil {
		s.handleError(w, err)
		return
	}

	feedback, err := svc.EvaluateAnswer(r.Context(), req.Question, req.Answer)
	if err != nil {
		s.handleError(w, err)
		return
	}
	breakdown := scoring.Breakdown(req.Answer)
	s.jsonResponse(w, http.StatusOK, EvaluateResponse{
		Feedback:   feedback,
		QuickScore: breakdown.Score,
		Breakdown:  breakdown,
	})
}

// handleResumeAnalyze accepts a multipart upload with a "resume" file and
// the job source as form values.
func (s *Server) handleResumeAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.handleError(w, &ErrValidation{Field: "resume", Message: "invalid multipart form: " + err.Error()})
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.handleError(w, &ErrValidation{Field: "resume", Message: "file is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.handleError(w, &ErrValidation{Field: "resume", Message: "failed to read upload"})
		return
	}

	src := JobSource{
		JobDescription: r.FormValue("job_description"),
		URL:            r.FormValue("url"),
	}
	if raw := r.FormValue("job_index"); raw != "" {
		index, convErr := strconv.Atoi(raw)
		if convErr != nil {
			s.handleError(w, &ErrValidation{Field: "job_index", Message: "must be an integer"})
			return
		}
		src.JobIndex = &index
	}
	if err := s.validate(&src); err != nil {
		s.handleError(w, err)
		return
	}

	svc, err := s.requireCoach()
	if err != nil {
		s.handleError(w, err)
		return
	}

	resumeText, err := resume.ExtractText(resume.DetectMIME(header.Filename, data), data)
	if err != nil {
		s.handleError(w, err)
		return
	}
	jobDesc, err := s.resolveJob(r.Context(), src)
	if err != nil {
		s.handleError(w, err)
		return
	}

	if s.verbose {
		log.Printf("[VERBOSE] Resume %q: %d chars extracted", header.Filename, utf8.RuneCountInString(resumeText))
	}

	analysis, err := svc.AnalyzeResume(r.Context(), resumeText, jobDesc)
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"analysis":     analysis,
		"resume_chars": utf8.RuneCountInString(resumeText),
	})
}

// handleCoverLetter writes a cover letter for a company.
func (s *Server) handleCoverLetter(w http.ResponseWriter, r *http.Request) {
	var req CoverLetterRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		s.handleError(w, err)
		return
	}
	svc, err := s.requireCoach()
	if err != nil {
		s.handleError(w, err)
		return
	}
	jobDesc, err := s.resolveJob(r.Context(), req.JobSource)
	if err != nil {
		s.handleError(w, err)
		return
	}

	letter, err := svc.GenerateCoverLetter(r.Context(), req.Resume, jobDesc, req.Company)
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"cover_letter": letter,
		"filename":     coach.CoverLetterFilename(req.Company),
	})
}

// handleSTAR generates STAR-format example answers.
func (s *Server) handleSTAR(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		s.handleError(w, err)
		return
	}
	svc, err := s.requireCoach()
	if err != nil {
		s.handleError(w, err)
		return
	}
	jobDesc, err := s.resolveJob(r.Context(), req.JobSource)
	if err != nil {
		s.handleError(w, err)
		return
	}

	examples, err := svc.GenerateSTARExamples(r.Context(), jobDesc)
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"examples": examples})
}

// requireCoach returns the coaching service or ErrCoachUnavailable.
func (s *Server) requireCoach() (*coach.Service, error) {
	if s.coach == nil {
		return nil, ErrCoachUnavailable
	}
	return s.coach, nil
}

// resolveJob turns a JobSource into job text. Pasted text is used as given;
// catalog postings are preprocessed; URLs are fetched and prepared.
func (s *Server) resolveJob(ctx context.Context, src JobSource) (string, error) {
	if text := strings.TrimSpace(src.JobDescription); text != "" {
		return text, nil
	}
	if src.JobIndex != nil {
		posting, err := s.catalog.Get(*src.JobIndex)
		if err != nil {
			return "", err
		}
		return ingestion.PreprocessJob(posting)
	}
	if src.URL != "" {
		text, meta, err := ingestion.IngestFromURL(ctx, src.URL, s.useBrowser, s.verbose)
		if err != nil {
			return "", err
		}
		if s.verbose {
			log.Printf("[VERBOSE] Ingested %s: %d chars, hash %s", meta.URL, meta.Length, meta.Hash)
		}
		return text, nil
	}
	return "", &ErrValidation{Field: "job_description", Message: "required_without_all=job_index url"}
}
