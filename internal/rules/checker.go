package rules

import (
	"regexp"
	"strings"

	"codereview/internal/config"
	"codereview/internal/snippet"
	"codereview/internal/types"
)

var (
	assignmentPattern  = regexp.MustCompile(`\b[a-zA-Z_][a-zA-Z0-9_]*\s*=`)
	functionDefPattern = regexp.MustCompile(`def\s`)
)

// assignments above this count without any function definition are flagged
const maxFlatAssignments = 5

// backfillThreshold is the number of suggestions below which the general
// Python suggestions are appended
const backfillThreshold = 3

// RuleChecker manages and executes the heuristic rules
type RuleChecker struct {
	rules []Rule
}

// Rule defines a heuristic check
type Rule struct {
	ID          string
	Description string
	Disabled    bool
	Check       func(*snippet.Snippet) []types.Finding
}

// NewRuleChecker creates a new rule checker with default rules
func NewRuleChecker() *RuleChecker {
	checker := &RuleChecker{
		rules: []Rule{},
	}

	// Register default rules
	checker.registerDefaultRules()

	return checker
}

// Rules returns the registered rules in evaluation order
func (e *RuleChecker) Rules() []Rule {
	out := make([]Rule, len(e.rules))
	copy(out, e.rules)
	return out
}

// Classify produces the findings and exemplar for a snippet. It never fails.
func (e *RuleChecker) Classify(s *snippet.Snippet) types.AnalysisResult {
	if s.Language != types.LangPython {
		return types.AnalysisResult{
			Language: s.Language,
			Findings: genericFindings(),
			Exemplar: genericExemplar,
		}
	}

	return types.AnalysisResult{
		Language: s.Language,
		Findings: e.Check(s),
		Exemplar: pythonExemplar,
	}
}

// Check runs all enabled Python rules against the snippet, then backfills
func (e *RuleChecker) Check(s *snippet.Snippet) []types.Finding {
	var findings []types.Finding

	for _, rule := range e.rules {
		if rule.Disabled {
			continue
		}
		findings = append(findings, rule.Check(s)...)
	}

	// All three are appended together, however many suggestions are missing
	if countActionable(findings) < backfillThreshold {
		findings = append(findings, backfillFindings()...)
	}

	return findings
}

// registerDefaultRules registers the built-in Python rules
func (e *RuleChecker) registerDefaultRules() {
	// Rule PY_MODULARITY: flat scripts with many assignments and no functions
	e.registerRule("PY_MODULARITY", "Logic should be organised into functions", e.checkModularity)

	// Rule PY_DOCSTRING: presence of any docstring delimiter
	e.registerRule("PY_DOCSTRING", "Code should carry docstrings", e.checkDocstring)

	// Rule PY_ERROR_HANDLING: presence of try/except
	e.registerRule("PY_ERROR_HANDLING", "Critical sections should handle errors", e.checkErrorHandling)
}

// registerRule is a helper to register rules
func (e *RuleChecker) registerRule(id, description string, checkFunc func(*snippet.Snippet) []types.Finding) {
	e.rules = append(e.rules, Rule{
		ID:          id,
		Description: description,
		Check:       checkFunc,
	})
}

func (e *RuleChecker) checkModularity(s *snippet.Snippet) []types.Finding {
	assignments := countMatches(s.Code, assignmentPattern)

	if assignments > maxFlatAssignments && !functionDefPattern.MatchString(s.Code) {
		return []types.Finding{createFinding(
			types.CategoryModularity,
			types.SeverityCritical,
			"Refactor logic into functions for modularity.",
		)}
	}

	return []types.Finding{createFinding(types.CategoryModularity, types.SeverityGood, "")}
}

func (e *RuleChecker) checkDocstring(s *snippet.Snippet) []types.Finding {
	if !containsAny(s.Code, `"""`, `'''`) {
		return []types.Finding{createFinding(
			types.CategoryDocumentation,
			types.SeverityModerate,
			"Add docstrings for clarity and documentation.",
		)}
	}

	return []types.Finding{createFinding(types.CategoryDocumentation, types.SeverityGood, "")}
}

func (e *RuleChecker) checkErrorHandling(s *snippet.Snippet) []types.Finding {
	var findings []types.Finding

	if !strings.Contains(s.Code, "try:") && !strings.Contains(s.Code, "except") {
		findings = append(findings, createFinding(
			types.CategoryErrorHandling,
			types.SeverityCritical,
			"Wrap critical sections in try-except blocks.",
		))
	}

	return findings
}

// ApplyConfig applies configuration to the rules
func (e *RuleChecker) ApplyConfig(cfg *config.Config) {
	for i := range e.rules {
		rule := &e.rules[i]
		if ruleConfig, ok := cfg.Rules[rule.ID]; ok && ruleConfig.Disabled {
			rule.Disabled = true
		}
	}
}
