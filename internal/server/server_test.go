package server

import (
	"bytes"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codereview/internal/analyzer"
	"codereview/internal/session"
	"codereview/internal/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv, err := New(analyzer.NewAnalyzer(nil, nil), session.NewStore(time.Minute), nil)
	require.NoError(t, err)
	return srv
}

// client replays the session cookie the way a browser would
type client struct {
	t      *testing.T
	srv    *Server
	cookie *http.Cookie
}

func (c *client) do(req *http.Request) *httptest.ResponseRecorder {
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	rec := httptest.NewRecorder()
	c.srv.Handler().ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == sessionCookie {
			c.cookie = ck
		}
	}
	return rec
}

func (c *client) get(path string) *httptest.ResponseRecorder {
	return c.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (c *client) submit(language, code string) *httptest.ResponseRecorder {
	form := url.Values{
		"org_name": {"Acme"},
		"clients":  {"250"},
		"problem":  {"adds numbers"},
		"language": {language},
		"code":     {code},
	}
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func TestIndexIssuesSessionCookie(t *testing.T) {
	c := &client{t: t, srv: newTestServer(t)}

	rec := c.get("/")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, c.cookie)
	assert.True(t, c.cookie.HttpOnly)
	assert.Contains(t, rec.Body.String(), "Paste your code here")
	assert.NotContains(t, rec.Body.String(), "Code Suggestions")
	assert.Contains(t, rec.Body.String(), "<footer>Developed By: Muhammad Shoban and Group</footer>")

	first := c.cookie.Value
	c.get("/")
	assert.Equal(t, first, c.cookie.Value)
}

func TestAnalyzeRendersSuggestions(t *testing.T) {
	c := &client{t: t, srv: newTestServer(t)}
	c.get("/")

	rec := c.submit("Python", "x = 1\ny = 2\nz = 3\na = 4\nb = 5\nc = 6")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Analysis Complete!")
	assert.Contains(t, body, `<div class="suggestion-box critical"><strong>1. [Critical]</strong> <em>Modularity</em>: Refactor logic into functions for modularity.</div>`)
	assert.Contains(t, body, `<div class="suggestion-box moderate"><strong>2. [Moderate]</strong>`)
	assert.Contains(t, body, "calculate_sum")
	assert.Contains(t, body, `<option value="Python" selected>`)
}

func TestBlankSubmitKeepsPriorResult(t *testing.T) {
	c := &client{t: t, srv: newTestServer(t)}

	rec := c.submit("Python", "   \n ")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), analyzer.ErrEmptyCode.Error())
	assert.NotContains(t, rec.Body.String(), "Code Suggestions")

	c.submit("JavaScript", "console.log(1)")
	rec = c.submit("Python", "")
	body := rec.Body.String()
	assert.Contains(t, body, analyzer.ErrEmptyCode.Error())
	assert.Contains(t, body, "Break down large functions into reusable modules.")
	assert.NotContains(t, body, "Analysis Complete!")
}

func TestDownloads(t *testing.T) {
	c := &client{t: t, srv: newTestServer(t)}

	assert.Equal(t, http.StatusNotFound, c.get("/download/csv").Code)
	assert.Equal(t, http.StatusNotFound, c.get("/download/chart").Code)
	assert.Equal(t, http.StatusNotFound, c.get("/chart.png").Code)

	c.submit("Java", "class A {}")

	rec := c.get("/download/csv")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="code_analysis.csv"`, rec.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Category,Severity,Suggestion\n"))
	assert.Contains(t, rec.Body.String(), "Function Size,Critical,Break down large functions into reusable modules.")

	rec = c.get("/download/chart")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="pie_chart.png"`, rec.Header().Get("Content-Disposition"))
	_, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)

	rec = c.get("/chart.png")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
}

func TestSessionsDoNotShareArtifacts(t *testing.T) {
	srv := newTestServer(t)
	alice := &client{t: t, srv: srv}
	bob := &client{t: t, srv: srv}

	alice.submit("Python", "print(1)")
	bob.submit("C", "int main() { return 0; }")

	aliceCSV := alice.get("/download/csv").Body.String()
	bobCSV := bob.get("/download/csv").Body.String()

	assert.Contains(t, aliceCSV, "Add docstrings for clarity and documentation.")
	assert.NotContains(t, bobCSV, "Add docstrings")
	assert.Contains(t, bobCSV, "Improve naming conventions for variables/functions.")
	assert.NotEqual(t, alice.cookie.Value, bob.cookie.Value)
}

func TestHealthz(t *testing.T) {
	c := &client{t: t, srv: newTestServer(t)}
	rec := c.get("/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestParseClients(t *testing.T) {
	tests := map[string]int{
		"":      1,
		"abc":   1,
		"0":     1,
		"-5":    1,
		"77":    77,
		" 900 ": 900,
		"10000": 10000,
		"20000": 10000,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseClients(in), in)
	}
}

func TestFormSubmissionFallsBackToOther(t *testing.T) {
	sub := analyzeForm{Language: "Fortran", Code: "x"}.submission()
	assert.Equal(t, types.LangOther, sub.Language)
}

func TestEmphasisClass(t *testing.T) {
	assert.Equal(t, "suggestion-box", EmphasisClass(types.SeverityGood))
	assert.Equal(t, "suggestion-box moderate", EmphasisClass(types.SeverityModerate))
	assert.Equal(t, "suggestion-box critical", EmphasisClass(types.SeverityCritical))
}
