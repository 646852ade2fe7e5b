package report

import (
	"encoding/csv"
	"io"

	"codereview/internal/types"
)

var csvHeader = []string{"Category", "Severity", "Suggestion"}

// WriteCSV writes one row per finding, in display order
func WriteCSV(w io.Writer, findings []types.Finding) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, f := range findings {
		if err := cw.Write([]string{string(f.Category), string(f.Severity), f.Message}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
