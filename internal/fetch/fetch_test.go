package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html><body><h1>Test</h1></body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL, result.URL)
	assert.Contains(t, result.HTML, "<h1>Test</h1>")
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, "text/html", result.ContentType)
}

func TestURL_InvalidURL(t *testing.T) {
	for _, raw := range []string{"", "not-a-valid-url", "example.com", "http://"} {
		_, err := URL(context.Background(), raw, nil)
		require.Error(t, err, raw)

		var fetchErr *Error
		assert.ErrorAs(t, err, &fetchErr)
		assert.Contains(t, err.Error(), "invalid URL")
	}
}

func TestURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
	assert.Contains(t, err.Error(), "HTTP status 404")
}

func TestURL_CustomHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "yes", r.Header.Get("X-Test"))
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	opts := DefaultOptions()
	opts.Headers = map[string]string{"X-Test": "yes"}
	_, err := URL(context.Background(), server.URL, opts)
	require.NoError(t, err)
}

func TestExtractMainText_PrefersContentSelector(t *testing.T) {
	html := `<html><body>
		<nav>Home | Jobs</nav>
		<div class="job-description">
			<h2>Senior Data Analyst</h2>
			<p>Analyze large datasets.</p>
		</div>
		<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractMainText(html, JobPostingSelectors())
	require.NoError(t, err)
	assert.Equal(t, "Senior Data Analyst\nAnalyze large datasets.", text)
	assert.NotContains(t, text, "Home")
	assert.NotContains(t, text, "Copyright")
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Just a paragraph</p><script>var x = 1;</script></body></html>`

	text, err := ExtractMainText(html, []string{".missing"})
	require.NoError(t, err)
	assert.Equal(t, "Just a paragraph", text)
}

func TestExtractMainText_RemovesNoise(t *testing.T) {
	html := `<html><body><main><p>Role details</p><form>Apply now</form></main></body></html>`

	text, err := ExtractMainText(html, []string{"main"}, "form")
	require.NoError(t, err)
	assert.Equal(t, "Role details", text)
}

func TestNeedsRendering(t *testing.T) {
	assert.True(t, NeedsRendering("Loading..."))
	assert.True(t, NeedsRendering("   "+strings.Repeat("a", MinPostingChars-1)+"\n\n"))
	assert.False(t, NeedsRendering(strings.Repeat("a", MinPostingChars)))
	// counted in characters, not bytes
	assert.True(t, NeedsRendering(strings.Repeat("é", MinPostingChars-1)))
}
