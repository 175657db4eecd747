package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/jonathan/interview-coach/internal/llm"
)

// scriptedClient replies with queued responses in order, repeating the last one.
type scriptedClient struct {
	mu        sync.Mutex
	responses []string
	err       error
	prompts   []string
}

func (c *scriptedClient) Complete(_ context.Context, req llm.Request) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prompts = append(c.prompts, req.Prompt)
	if c.err != nil {
		return "", c.err
	}
	if len(c.responses) == 0 {
		return "", nil
	}
	resp := c.responses[0]
	if len(c.responses) > 1 {
		c.responses = c.responses[1:]
	}
	return resp, nil
}

func (c *scriptedClient) Model() string { return "scripted" }

func (c *scriptedClient) Close() error { return nil }

// useClient swaps the completion client factory for the duration of a test.
func useClient(t *testing.T, c llm.Client) {
	t.Helper()
	prev := newLLMClient
	newLLMClient = func(context.Context, *llm.Config, string) (llm.Client, error) {
		return c, nil
	}
	t.Cleanup(func() { newLLMClient = prev })
}

// resetFlags restores every flag of cmd and its children to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// runCLI executes the root command in-process and returns its stdout.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

const sampleQuestions = `1. Walk me through a SQL query you optimized recently.
2. Tell me about a time you disagreed with a stakeholder.
3. How do you validate the results of an analysis?
4. Describe a dashboard you built and who used it.
5. How would you explain a regression model to an executive?`

func TestJobsCommand(t *testing.T) {
	out, err := runCLI(t, "", "jobs")
	require.NoError(t, err)
	assert.Contains(t, out, "Senior Data Analyst")
	assert.Contains(t, out, "UX/UI Designer")
}

func TestJobsCommand_QueryKeepsCatalogIndex(t *testing.T) {
	out, err := runCLI(t, "", "jobs", "--query", "designer")
	require.NoError(t, err)
	assert.Contains(t, out, "4. UX/UI Designer")
	assert.NotContains(t, out, "Marketing Manager")
}

func TestExtractCommand(t *testing.T) {
	out, err := runCLI(t, "", "extract", "--text", "We need 3+ years of Python and SQL, plus Tableau dashboards.")
	require.NoError(t, err)
	assert.Contains(t, out, `"Python"`)
	assert.Contains(t, out, `"Sql"`)
	assert.Contains(t, out, `"Tableau"`)
	assert.Contains(t, out, "Experience: 3 years")
}

func TestExtractCommand_RequiresInput(t *testing.T) {
	_, err := runCLI(t, "", "extract")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one of the flags")
}

func TestPreprocessCommand_JobIndex(t *testing.T) {
	out, err := runCLI(t, "", "preprocess", "--job-index", "1", "--meta")
	require.NoError(t, err)
	assert.Contains(t, out, "Software Engineer - Full Stack")
	assert.Contains(t, out, `"hash"`)
}

func TestScoreCommand(t *testing.T) {
	out, err := runCLI(t, "", "score", "--answer", "I like working with people.")
	require.NoError(t, err)
	assert.Contains(t, out, "Quick score: 3/10")
	assert.Contains(t, out, "short answer")
}

func TestScoreCommand_AnswerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answer.txt")
	answer := "For example, I first profiled the pipeline, then cut runtime by 40% which finally resulted in faster reports."
	require.NoError(t, os.WriteFile(path, []byte(answer), 0644))

	out, err := runCLI(t, "", "score", "--answer-file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "specific example")
	assert.Contains(t, out, "metrics")
}

func TestAnalyzeCommand(t *testing.T) {
	client := &scriptedClient{responses: []string{"Key skills: SQL, Python"}}
	useClient(t, client)

	out, err := runCLI(t, "", "analyze", "--api-key", "test-key", "--job-index", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "JOB ANALYSIS")
	assert.Contains(t, out, "Key skills: SQL, Python")
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Senior Data Analyst")
}

func TestAnalyzeCommand_ExclusiveSources(t *testing.T) {
	_, err := runCLI(t, "", "analyze", "--api-key", "test-key", "--text", "job", "--job-index", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")
}

func TestAnalyzeCommand_MissingAPIKey(t *testing.T) {
	keyring.MockInit()
	t.Setenv("GEMINI_API_KEY", "")
	useClient(t, &scriptedClient{})

	_, err := runCLI(t, "", "analyze", "--text", "Data analyst with SQL")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not found")
}

func TestAnalyzeCommand_ServiceError(t *testing.T) {
	useClient(t, &scriptedClient{err: errors.New("quota exceeded")})

	_, err := runCLI(t, "", "analyze", "--api-key", "test-key", "--text", "Data analyst with SQL")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestQuestionsCommand(t *testing.T) {
	client := &scriptedClient{responses: []string{sampleQuestions}}
	useClient(t, client)

	out, err := runCLI(t, "", "questions", "--api-key", "test-key", "--job-index", "0", "--count", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "INTERVIEW QUESTIONS")
	assert.Contains(t, out, "Generated 5 questions")
	assert.Contains(t, client.prompts[0], "generate 5 interview questions")
}

func TestQuestionsCommand_CountOutOfRange(t *testing.T) {
	useClient(t, &scriptedClient{})

	for _, count := range []string{"4", "21"} {
		_, err := runCLI(t, "", "questions", "--api-key", "test-key", "--job-index", "0", "--count", count)
		require.Error(t, err, count)
		assert.Contains(t, err.Error(), "between 5 and 20")
	}
}

func TestEvaluateCommand(t *testing.T) {
	client := &scriptedClient{responses: []string{"Strengths: clear structure"}}
	useClient(t, client)

	out, err := runCLI(t, "", "evaluate", "--api-key", "test-key",
		"--question", "Tell me about yourself",
		"--answer", "I am a data analyst.")
	require.NoError(t, err)
	assert.Contains(t, out, "Quick score: 3/10")
	assert.Contains(t, out, "Strengths: clear structure")
	assert.Contains(t, client.prompts[0], "Tell me about yourself")
}

func TestEvaluateCommand_RequiresQuestion(t *testing.T) {
	_, err := runCLI(t, "", "evaluate", "--answer", "something")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question")
}

func TestSTARCommand(t *testing.T) {
	useClient(t, &scriptedClient{responses: []string{"Situation: outage"}})

	out, err := runCLI(t, "", "star", "--api-key", "test-key", "--text", "Site reliability engineer")
	require.NoError(t, err)
	assert.Contains(t, out, "STAR EXAMPLES")
	assert.Contains(t, out, "Situation: outage")
}

func TestResumeCommand(t *testing.T) {
	client := &scriptedClient{responses: []string{"Match score: 80%"}}
	useClient(t, client)

	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\nData analyst. SQL, Python, Tableau."), 0644))

	out, err := runCLI(t, "", "resume", "--api-key", "test-key", "--resume", path, "--job-index", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Match score: 80%")
	assert.Contains(t, client.prompts[0], "Jane Doe")
}

func TestResumeCommand_UnsupportedFile(t *testing.T) {
	useClient(t, &scriptedClient{})

	path := filepath.Join(t.TempDir(), "resume.png")
	require.NoError(t, os.WriteFile(path, []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, 0644))

	_, err := runCLI(t, "", "resume", "--api-key", "test-key", "--resume", path, "--text", "Data analyst")
	require.Error(t, err)
}

func TestCoverLetterCommand(t *testing.T) {
	useClient(t, &scriptedClient{responses: []string{"Dear Hiring Manager,\n\nI am excited to apply."}})

	dir := t.TempDir()
	resumePath := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte("Jane Doe, data analyst"), 0644))
	outPath := filepath.Join(dir, "letter.txt")

	out, err := runCLI(t, "", "cover-letter", "--api-key", "test-key",
		"--company", "Acme Labs", "--resume", resumePath, "--text", "Data analyst", "--out", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Saved to "+outPath)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Dear Hiring Manager")
}

func TestPracticeCommand(t *testing.T) {
	client := &scriptedClient{responses: []string{sampleQuestions, "Good use of numbers"}}
	useClient(t, client)

	stdin := strings.Join([]string{
		"I rewrote a slow report query,",
		"then cut runtime by 60%.",
		"",
		"skip",
		"",
		"quit",
		"",
	}, "\n")

	out, err := runCLI(t, stdin, "practice", "--api-key", "test-key", "--job-index", "0", "--count", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Question 1/5: 1. Walk me through a SQL query")
	assert.Contains(t, out, "Question 2/5")
	assert.Contains(t, out, "Question 3/5")
	assert.NotContains(t, out, "Question 4/5")
	assert.Contains(t, out, "Good use of numbers")
	assert.Contains(t, out, "MOCK INTERVIEW SUMMARY")
	assert.Contains(t, out, "Answered: 1")

	// one generation call plus one evaluation; skip and quit make no calls
	assert.Len(t, client.prompts, 2)
}

func TestPracticeCommand_EndOfInput(t *testing.T) {
	client := &scriptedClient{responses: []string{sampleQuestions}}
	useClient(t, client)

	out, err := runCLI(t, "", "practice", "--api-key", "test-key", "--text", "Data analyst", "--count", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Question 1/5")
	assert.NotContains(t, out, "MOCK INTERVIEW SUMMARY")
	assert.Len(t, client.prompts, 1)
}

func TestReadAnswer(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantEOF bool
	}{
		{name: "blank line ends answer", input: "line one\nline two\n\nnext", want: "line one\nline two"},
		{name: "leading blank lines skipped", input: "\n\nanswer\n\n", want: "answer"},
		{name: "end of input", input: "partial", want: "partial", wantEOF: true},
		{name: "empty input", input: "", want: "", wantEOF: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, eof := readAnswer(bufio.NewReader(strings.NewReader(tt.input)))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantEOF, eof)
		})
	}
}

func TestAuthCommands(t *testing.T) {
	keyring.MockInit()
	t.Setenv("GEMINI_API_KEY", "")

	out, err := runCLI(t, "", "auth", "set", "--key", "stored-key")
	require.NoError(t, err)
	assert.Contains(t, out, "Stored gemini API key")

	key, err := keyring.Get("interview-coach", "interview-coach:gemini")
	require.NoError(t, err)
	assert.Equal(t, "stored-key", key)

	var gotKey string
	prev := newLLMClient
	newLLMClient = func(_ context.Context, _ *llm.Config, apiKey string) (llm.Client, error) {
		gotKey = apiKey
		return &scriptedClient{responses: []string{"ok"}}, nil
	}
	t.Cleanup(func() { newLLMClient = prev })

	_, err = runCLI(t, "", "star", "--text", "Data analyst")
	require.NoError(t, err)
	assert.Equal(t, "stored-key", gotKey)

	out, err = runCLI(t, "", "auth", "delete")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted gemini API key")

	_, err = keyring.Get("interview-coach", "interview-coach:gemini")
	assert.ErrorIs(t, err, keyring.ErrNotFound)
}

func TestLoadSettings_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"provider": "anthropic", "port": 9090}`), 0644))

	_, err := runCLI(t, "", "--config", path, "jobs")
	require.NoError(t, err)
	assert.Equal(t, "anthropic", settings.Provider)
	assert.Equal(t, 9090, settings.ListenPort())

	_, err = runCLI(t, "", "--config", path, "--provider", "gemini", "jobs")
	require.NoError(t, err)
	assert.Equal(t, "gemini", settings.Provider)
}
