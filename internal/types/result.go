package types

import (
	"fmt"
	"strings"
)

// Language is a programming language selectable in the form
type Language string

const (
	LangPython     Language = "Python"
	LangJavaScript Language = "JavaScript"
	LangC          Language = "C"
	LangCPP        Language = "C++"
	LangJava       Language = "Java"
	LangOther      Language = "Other"
)

// Languages lists the selectable languages in display order
var Languages = []Language{LangPython, LangJavaScript, LangC, LangCPP, LangJava, LangOther}

var languageAliases = map[string]Language{
	"python":     LangPython,
	"py":         LangPython,
	"javascript": LangJavaScript,
	"js":         LangJavaScript,
	"c":          LangC,
	"c++":        LangCPP,
	"cpp":        LangCPP,
	"java":       LangJava,
	"other":      LangOther,
}

// ParseLanguage resolves a display name or alias to a Language
func ParseLanguage(s string) (Language, error) {
	if lang, ok := languageAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return lang, nil
	}
	return "", fmt.Errorf("unsupported language %q", s)
}

// Category groups a finding by the concern it reports on
type Category string

const (
	CategoryModularity    Category = "Modularity"
	CategoryDocumentation Category = "Documentation"
	CategoryErrorHandling Category = "Error Handling"
	CategoryNaming        Category = "Naming"
	CategoryTypeSafety    Category = "Type Safety"
	CategoryHardcoding    Category = "Hardcoding"
	CategoryFunctionSize  Category = "Function Size"
)

// Severity is the level attached to a finding
type Severity string

const (
	SeverityGood     Severity = "Good"
	SeverityModerate Severity = "Moderate"
	SeverityCritical Severity = "Critical"
)

// Severities lists every severity in chart order
var Severities = []Severity{SeverityGood, SeverityModerate, SeverityCritical}

// Finding represents a single classification result
type Finding struct {
	Category Category `json:"category"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message,omitempty"` // empty for Good findings
}

// Actionable reports whether the finding carries a suggestion
func (f Finding) Actionable() bool {
	return f.Message != ""
}

// AnalysisResult is the ordered output of one classification
type AnalysisResult struct {
	Language Language  `json:"language"`
	Findings []Finding `json:"findings"`
	Exemplar string    `json:"exemplar"`
}

// SeverityTally counts findings per severity
type SeverityTally struct {
	Good     int `json:"good"`
	Moderate int `json:"moderate"`
	Critical int `json:"critical"`
}

// Total returns the number of findings counted
func (t SeverityTally) Total() int {
	return t.Good + t.Moderate + t.Critical
}

// Count returns the count for a single severity
func (t SeverityTally) Count(s Severity) int {
	switch s {
	case SeverityGood:
		return t.Good
	case SeverityModerate:
		return t.Moderate
	case SeverityCritical:
		return t.Critical
	}
	return 0
}

// Submission holds the fields collected by the input form
type Submission struct {
	OrgName  string
	Clients  int
	Problem  string
	Language Language
	Code     string
}
