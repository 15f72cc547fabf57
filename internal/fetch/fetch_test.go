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
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
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
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-valid-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.NotNil(t, result) // Result is returned even on error
	assert.Equal(t, http.StatusNotFound, result.StatusCode)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "404")
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://www.linkedin.com/jobs/view/12345"))
	assert.True(t, IsURL("  http://example.com/job  "))
	assert.False(t, IsURL("Backend Engineer\nWe are looking for..."))
	assert.False(t, IsURL("ftp://example.com/job"))
	assert.False(t, IsURL("just some posting text"))
}

func TestJobText_TruncatesLongPostings(t *testing.T) {
	long := strings.Repeat("a", MaxTextLength+500)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><main>" + long + "</main></body></html>"))
	}))
	defer server.Close()

	result, err := JobText(context.Background(), server.URL, &Options{NoBrowser: true})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(result.Text, TruncationMarker))
	assert.Len(t, []rune(result.Text), MaxTextLength+len(TruncationMarker))
}

func TestJobText_NonHTMLUsesRawCap(t *testing.T) {
	long := strings.Repeat("b", MaxRawLength+100)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(long))
	}))
	defer server.Close()

	result, err := JobText(context.Background(), server.URL, &Options{NoBrowser: true})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(result.Text, TruncationMarker))
	assert.Len(t, []rune(result.Text), MaxRawLength+len(TruncationMarker))
}

func TestJobText_ShortPostingUnchanged(t *testing.T) {
	body := "<html><body><div class=\"job-description\">" +
		strings.Repeat("Senior Go developer wanted. ", 30) +
		"</div></body></html>"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	result, err := JobText(context.Background(), server.URL, &Options{NoBrowser: true})
	require.NoError(t, err)
	assert.Contains(t, result.Text, "Senior Go developer")
	assert.NotContains(t, result.Text, TruncationMarker)
}

func TestExtractMainText_JobPostingSelectors(t *testing.T) {
	html := `
	<html>
		<body>
			<div class="sidebar">Sidebar junk</div>
			<div class="job-description">
				<h2>Requirements</h2>
				<p>5 years experience in Go</p>
			</div>
		</body>
	</html>`

	text, err := ExtractMainText(html, JobPostingSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Requirements")
	assert.Contains(t, text, "5 years experience")
	assert.NotContains(t, text, "Sidebar junk")
}

func TestExtractMainText_FallbackToBody(t *testing.T) {
	html := `
	<html>
		<body>
			<div>Some content here.</div>
		</body>
	</html>`

	text, err := ExtractMainText(html, JobPostingSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Some content here")
}

func TestExtractMainText_RemovesNoise(t *testing.T) {
	html := `
	<html>
		<body>
			<nav>Navigation</nav>
			<main>
				<h1>Backend Engineer</h1>
				<form>Apply now form</form>
			</main>
			<footer>Footer</footer>
		</body>
	</html>`

	text, err := ExtractMainText(html, JobPostingSelectors(), "form")
	require.NoError(t, err)
	assert.Contains(t, text, "Backend Engineer")
	assert.NotContains(t, text, "Navigation")
	assert.NotContains(t, text, "Footer")
	assert.NotContains(t, text, "Apply now form")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 100))
	assert.Equal(t, "abc"+TruncationMarker, Truncate("abcdef", 3))
}
