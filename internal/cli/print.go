package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"codereview/internal/analyzer"
	"codereview/internal/types"
)

var (
	goodColor     = color.New(color.FgGreen)
	moderateColor = color.New(color.FgYellow, color.Bold)
	criticalColor = color.New(color.FgRed, color.Bold)
)

// printer renders an analysis for the terminal
type printer interface {
	Print(w io.Writer, a *analyzer.Analysis) error
}

func newPrinter(format string, verbose bool) (printer, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return textPrinter{verbose: verbose}, nil
	case "json":
		return jsonPrinter{}, nil
	case "markdown", "md":
		return markdownPrinter{}, nil
	}
	return nil, fmt.Errorf("unsupported output format %q", format)
}

func severityColor(s types.Severity) *color.Color {
	switch s {
	case types.SeverityCritical:
		return criticalColor
	case types.SeverityModerate:
		return moderateColor
	default:
		return goodColor
	}
}

func label(f types.Finding) string {
	if f.Message == "" {
		return string(f.Category)
	}
	return fmt.Sprintf("%s: %s", f.Category, f.Message)
}

type textPrinter struct {
	verbose bool
}

func (p textPrinter) Print(w io.Writer, a *analyzer.Analysis) error {
	for i, f := range a.Result.Findings {
		// Skip Good findings if not verbose
		if !p.verbose && f.Severity == types.SeverityGood {
			continue
		}
		tag := severityColor(f.Severity).Sprintf("[%s]", f.Severity)
		if _, err := fmt.Fprintf(w, "%d. %s %s\n", i+1, tag, label(f)); err != nil {
			return err
		}
	}

	t := a.Artifacts.Tally
	if _, err := fmt.Fprintf(w, "\nGood: %d  Moderate: %d  Critical: %d\n", t.Good, t.Moderate, t.Critical); err != nil {
		return err
	}

	if p.verbose {
		if _, err := fmt.Fprintf(w, "\nSuggested improved code:\n\n%s\n", a.Result.Exemplar); err != nil {
			return err
		}
	}
	return nil
}

type jsonPrinter struct{}

type jsonReport struct {
	ID       string              `json:"id"`
	Language types.Language      `json:"language"`
	Findings []types.Finding     `json:"findings"`
	Tally    types.SeverityTally `json:"tally"`
	Exemplar string              `json:"exemplar"`
}

func (jsonPrinter) Print(w io.Writer, a *analyzer.Analysis) error {
	encoded, err := json.MarshalIndent(jsonReport{
		ID:       a.Artifacts.ID,
		Language: a.Result.Language,
		Findings: a.Result.Findings,
		Tally:    a.Artifacts.Tally,
		Exemplar: a.Result.Exemplar,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(encoded))
	return err
}

type markdownPrinter struct{}

func (markdownPrinter) Print(w io.Writer, a *analyzer.Analysis) error {
	var builder strings.Builder
	builder.WriteString("## Code Suggestions\n\n")
	builder.WriteString("| # | Category | Severity | Suggestion |\n")
	builder.WriteString("|---|---|---|---|\n")
	for i, f := range a.Result.Findings {
		builder.WriteString(fmt.Sprintf("| %d | %s | %s | %s |\n", i+1, f.Category, f.Severity, f.Message))
	}

	t := a.Artifacts.Tally
	builder.WriteString(fmt.Sprintf("\n**Good:** %d, **Moderate:** %d, **Critical:** %d\n", t.Good, t.Moderate, t.Critical))

	builder.WriteString("\n## Suggested Improved Code\n\n```\n")
	builder.WriteString(a.Result.Exemplar)
	if !strings.HasSuffix(a.Result.Exemplar, "\n") {
		builder.WriteString("\n")
	}
	builder.WriteString("```\n")

	_, err := io.WriteString(w, builder.String())
	return err
}
