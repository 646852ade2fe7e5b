package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codereview/internal/types"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestAnalyzeTextFromStdin(t *testing.T) {
	out, err := runCLI(t, "x = 1\ny = 2\nz = 3\na = 4\nb = 5\nc = 6", "analyze")
	require.NoError(t, err)

	assert.Contains(t, out, "1. [Critical] Modularity: Refactor logic into functions for modularity.")
	assert.Contains(t, out, "2. [Moderate] Documentation: Add docstrings for clarity and documentation.")
	assert.Contains(t, out, "Good: 0  Moderate: 1  Critical: 2")
	assert.NotContains(t, out, "calculate_sum")
}

func TestAnalyzeVerboseIncludesGoodAndExemplar(t *testing.T) {
	code := "def f():\n    '''doc'''\n    try:\n        pass\n    except Exception:\n        pass"
	out, err := runCLI(t, code, "analyze", "-v")
	require.NoError(t, err)

	assert.Contains(t, out, "1. [Good] Modularity\n")
	assert.Contains(t, out, "5. [Critical] Hardcoding")
	assert.Contains(t, out, "calculate_sum")
}

func TestAnalyzeJSONFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.js")
	require.NoError(t, os.WriteFile(path, []byte("console.log('hi')"), 0o644))

	out, err := runCLI(t, "", "analyze", "-f", path, "-l", "js", "-o", "json")
	require.NoError(t, err)

	var report jsonReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, types.LangJavaScript, report.Language)
	require.Len(t, report.Findings, 3)
	assert.Equal(t, types.CategoryFunctionSize, report.Findings[1].Category)
	assert.Equal(t, 3, report.Tally.Total())
	assert.NotEmpty(t, report.ID)
}

func TestAnalyzePositionalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.py")
	require.NoError(t, os.WriteFile(path, []byte("x = 1\ny = 2\nz = 3\na = 4\nb = 5\nc = 6"), 0o644))

	out, err := runCLI(t, "ignored()", "analyze", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1. [Critical] Modularity: Refactor logic into functions for modularity.")

	_, err = runCLI(t, "", "analyze", path, path)
	assert.ErrorContains(t, err, "accepts at most 1 arg(s)")
}

func TestAnalyzeMarkdown(t *testing.T) {
	out, err := runCLI(t, "int x;", "analyze", "-l", "C", "-o", "markdown")
	require.NoError(t, err)

	assert.Contains(t, out, "| 2 | Function Size | Critical | Break down large functions into reusable modules. |")
	assert.Contains(t, out, "// Refactored version would go here depending on language\n```")
}

func TestAnalyzeWritesReports(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, "print(1)", "analyze", "--out", dir)
	require.NoError(t, err)

	csvData, err := os.ReadFile(filepath.Join(dir, "code_analysis.csv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(csvData), "Category,Severity,Suggestion\n"))

	_, err = os.Stat(filepath.Join(dir, "pie_chart.png"))
	assert.NoError(t, err)
}

func TestAnalyzeErrors(t *testing.T) {
	t.Run("blank code", func(t *testing.T) {
		_, err := runCLI(t, "  \n", "analyze")
		assert.ErrorContains(t, err, "please paste some code")
	})

	t.Run("unknown language", func(t *testing.T) {
		_, err := runCLI(t, "x", "analyze", "-l", "cobol")
		assert.ErrorContains(t, err, "unsupported language")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := runCLI(t, "x", "analyze", "-o", "xml")
		assert.ErrorContains(t, err, "unsupported output format")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := runCLI(t, "", "analyze", "-f", filepath.Join(t.TempDir(), "missing.py"))
		assert.ErrorContains(t, err, "failed to read code file")
	})
}
