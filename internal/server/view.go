package server

import (
	"codereview/internal/session"
	"codereview/internal/types"
)

// EmphasisClass maps a severity to the CSS class of its suggestion block
func EmphasisClass(s types.Severity) string {
	switch s {
	case types.SeverityCritical:
		return "suggestion-box critical"
	case types.SeverityModerate:
		return "suggestion-box moderate"
	default:
		return "suggestion-box"
	}
}

type suggestionView struct {
	Index    int
	Category types.Category
	Severity types.Severity
	Message  string
}

type page struct {
	Languages   []types.Language
	Form        types.Submission
	Warning     string
	Success     bool
	HasResult   bool
	Suggestions []suggestionView
	Exemplar    string
	ChartID     string
}

func newPage(sess session.Session, form types.Submission) page {
	p := page{
		Languages: types.Languages,
		Form:      form,
	}
	if sess.State != session.HasResult || sess.Analysis == nil {
		return p
	}

	p.HasResult = true
	p.Exemplar = sess.Analysis.Result.Exemplar
	p.ChartID = sess.Analysis.Artifacts.ID
	for i, f := range sess.Analysis.Result.Findings {
		p.Suggestions = append(p.Suggestions, suggestionView{
			Index:    i + 1,
			Category: f.Category,
			Severity: f.Severity,
			Message:  f.Message,
		})
	}
	return p
}
