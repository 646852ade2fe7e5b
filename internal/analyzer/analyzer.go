package analyzer

import (
	"errors"

	"go.uber.org/zap"

	"codereview/internal/config"
	"codereview/internal/report"
	"codereview/internal/rules"
	"codereview/internal/snippet"
	"codereview/internal/types"
)

// ErrEmptyCode is returned when the submitted code is blank
var ErrEmptyCode = errors.New("please paste some code to analyze")

// Analysis is everything produced for one analyze action
type Analysis struct {
	Submission types.Submission
	Result     types.AnalysisResult
	Artifacts  *report.Artifacts
}

// Analyzer runs the classify and report pipeline
type Analyzer struct {
	checker *rules.RuleChecker
	logger  *zap.SugaredLogger
}

// NewAnalyzer creates a new analyzer instance
func NewAnalyzer(cfg *config.Config, logger *zap.SugaredLogger) *Analyzer {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	checker := rules.NewRuleChecker()
	checker.ApplyConfig(cfg)

	return &Analyzer{
		checker: checker,
		logger:  logger,
	}
}

// Analyze classifies the submitted code and renders its artifacts
func (a *Analyzer) Analyze(sub types.Submission) (*Analysis, error) {
	s := snippet.Parse(sub.Language, []byte(sub.Code))
	if s.Blank() {
		return nil, ErrEmptyCode
	}

	result := a.checker.Classify(s)

	artifacts, err := report.Build(result)
	if err != nil {
		return nil, err
	}

	a.logger.Debugw("analysis complete",
		"id", artifacts.ID,
		"language", sub.Language,
		"lines", len(s.Lines),
		"findings", len(result.Findings),
		"critical", artifacts.Tally.Critical,
	)

	return &Analysis{
		Submission: sub,
		Result:     result,
		Artifacts:  artifacts,
	}, nil
}
