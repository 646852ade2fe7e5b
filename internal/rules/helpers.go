package rules

import (
	"regexp"
	"strings"

	"codereview/internal/types"
)

// Helper functions for rule creation

// countMatches counts non-overlapping matches of pattern in text
func countMatches(text string, pattern *regexp.Regexp) int {
	return len(pattern.FindAllStringIndex(text, -1))
}

// containsAny checks if text contains any of the substrings
func containsAny(text string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(text, sub) {
			return true
		}
	}
	return false
}

// countActionable counts findings that carry a suggestion
func countActionable(findings []types.Finding) int {
	n := 0
	for _, f := range findings {
		if f.Actionable() {
			n++
		}
	}
	return n
}

// createFinding is a helper to create a Finding with consistent formatting
func createFinding(category types.Category, severity types.Severity, message string) types.Finding {
	return types.Finding{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}
