package report

import (
	"encoding/json"

	"github.com/flowforge/flowforge/pkg/domain"
)

// jsonReport is the machine-readable report shape.
type jsonReport struct {
	Summary Summary             `json:"summary"`
	Results []domain.Diagnostic `json:"results"`
}

// RenderJSON renders diagnostics as an indented JSON report with a
// severity summary.
func RenderJSON(diagnostics []domain.Diagnostic) ([]byte, error) {
	if diagnostics == nil {
		diagnostics = []domain.Diagnostic{}
	}
	return json.MarshalIndent(jsonReport{
		Summary: Summarize(diagnostics),
		Results: diagnostics,
	}, "", "  ")
}
