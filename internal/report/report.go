package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"codereview/internal/types"
)

// Download names of the generated artifacts
const (
	CSVFileName   = "code_analysis.csv"
	ChartFileName = "pie_chart.png"
)

// Artifacts holds the report files generated for one analysis. They live
// in memory and are owned by whoever requested the analysis.
type Artifacts struct {
	ID    string
	Tally types.SeverityTally
	CSV   []byte
	Chart []byte
}

// Tally counts findings per severity
func Tally(findings []types.Finding) types.SeverityTally {
	var t types.SeverityTally
	for _, f := range findings {
		switch f.Severity {
		case types.SeverityGood:
			t.Good++
		case types.SeverityModerate:
			t.Moderate++
		case types.SeverityCritical:
			t.Critical++
		}
	}
	return t
}

// Build renders the table and chart for a result
func Build(result types.AnalysisResult) (*Artifacts, error) {
	tally := Tally(result.Findings)

	var table bytes.Buffer
	if err := WriteCSV(&table, result.Findings); err != nil {
		return nil, fmt.Errorf("failed to write table: %w", err)
	}

	chart, err := RenderChart(tally)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	return &Artifacts{
		ID:    uuid.NewString(),
		Tally: tally,
		CSV:   table.Bytes(),
		Chart: chart,
	}, nil
}

// WriteDir persists the artifacts under dir using the download names
func (a *Artifacts) WriteDir(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	files := []struct {
		name string
		data []byte
	}{
		{CSVFileName, a.CSV},
		{ChartFileName, a.Chart},
	}

	var written []string
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, f.data, 0o644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", f.name, err)
		}
		written = append(written, path)
	}
	return written, nil
}
