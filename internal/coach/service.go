// Package coach implements the interview coaching operations on top of a
// completion client.
package coach

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/prompts"
)

// DefaultQuestionCount is used when a non-positive count is requested.
const DefaultQuestionCount = 10

// Service issues one completion request per operation and returns the
// completion text verbatim. Failed requests are not retried.
type Service struct {
	client  llm.Client
	config  *llm.Config
	verbose bool
}

// NewService creates a Service. A nil config uses llm.DefaultConfig.
func NewService(client llm.Client, config *llm.Config, verbose bool) *Service {
	if config == nil {
		config = llm.DefaultConfig()
	}
	return &Service{client: client, config: config, verbose: verbose}
}

// Config returns the generation settings in use.
func (s *Service) Config() *llm.Config {
	return s.config
}

// AnalyzeJob summarizes skills, level, culture, duties and red flags of a job.
func (s *Service) AnalyzeJob(ctx context.Context, jobDesc string) (string, error) {
	if err := required("job_description", jobDesc); err != nil {
		return "", err
	}
	return s.complete(ctx, "analyze_job", prompts.KeyAnalyzeJob, map[string]string{
		"JobDescription": jobDesc,
	}, s.config.Temperature)
}

// GenerateQuestions asks for n interview questions; n <= 0 means DefaultQuestionCount.
// Use SplitQuestions to turn the result into a list.
func (s *Service) GenerateQuestions(ctx context.Context, jobDesc string, n int) (string, error) {
	if err := required("job_description", jobDesc); err != nil {
		return "", err
	}
	if n <= 0 {
		n = DefaultQuestionCount
	}
	return s.complete(ctx, "generate_questions", prompts.KeyInterviewQuestions, map[string]string{
		"JobDescription": jobDesc,
		"Count":          strconv.Itoa(n),
	}, s.config.Temperature)
}

// EvaluateAnswer asks for a score, strengths, weaknesses and an improved answer.
func (s *Service) EvaluateAnswer(ctx context.Context, question, answer string) (string, error) {
	if err := required("question", question); err != nil {
		return "", err
	}
	if err := required("answer", answer); err != nil {
		return "", err
	}
	return s.complete(ctx, "evaluate_answer", prompts.KeyEvaluateAnswer, map[string]string{
		"Question": question,
		"Answer":   answer,
	}, s.config.Temperature)
}

// AnalyzeResume compares a resume against a job description.
func (s *Service) AnalyzeResume(ctx context.Context, resumeText, jobDesc string) (string, error) {
	if err := required("resume", resumeText); err != nil {
		return "", err
	}
	if err := required("job_description", jobDesc); err != nil {
		return "", err
	}
	return s.complete(ctx, "analyze_resume", prompts.KeyAnalyzeResume, map[string]string{
		"JobDescription": jobDesc,
		"Resume":         resumeText,
	}, s.config.Temperature)
}

// GenerateCoverLetter writes a short cover letter using the creative temperature.
func (s *Service) GenerateCoverLetter(ctx context.Context, resumeText, jobDesc, company string) (string, error) {
	if err := required("resume", resumeText); err != nil {
		return "", err
	}
	if err := required("job_description", jobDesc); err != nil {
		return "", err
	}
	if err := required("company", company); err != nil {
		return "", err
	}
	return s.complete(ctx, "generate_cover_letter", prompts.KeyCoverLetter, map[string]string{
		"Company":        company,
		"JobDescription": jobDesc,
		"Resume":         resumeText,
	}, s.config.CreativeTemperature)
}

// GenerateSTARExamples produces three Situation/Task/Action/Result examples.
func (s *Service) GenerateSTARExamples(ctx context.Context, jobDesc string) (string, error) {
	if err := required("job_description", jobDesc); err != nil {
		return "", err
	}
	return s.complete(ctx, "generate_star_examples", prompts.KeySTARExamples, map[string]string{
		"JobDescription": jobDesc,
	}, s.config.Temperature)
}

func (s *Service) complete(ctx context.Context, op, key string, data map[string]string, temperature float32) (string, error) {
	prompt, err := prompts.Render(key, data)
	if err != nil {
		return "", err
	}
	system, err := prompts.Get(prompts.CoachingFile, prompts.KeySystem)
	if err != nil {
		return "", err
	}

	if s.verbose {
		log.Printf("[VERBOSE] %s: model=%s prompt=%d chars temperature=%.1f", op, s.client.Model(), len(prompt), temperature)
	}
	start := time.Now()

	text, err := s.client.Complete(ctx, llm.Request{
		System:      system,
		Prompt:      prompt,
		Temperature: temperature,
		MaxTokens:   s.config.MaxTokens,
	})
	if err != nil {
		if s.verbose {
			log.Printf("[VERBOSE] %s failed after %v: %v", op, time.Since(start).Round(time.Millisecond), err)
		}
		return "", &ExternalServiceError{Op: op, Cause: err}
	}

	if s.verbose {
		log.Printf("[VERBOSE] %s: %d chars in %v", op, len(text), time.Since(start).Round(time.Millisecond))
	}
	return text, nil
}
