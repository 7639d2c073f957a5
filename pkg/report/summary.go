package report

import "github.com/flowforge/flowforge/pkg/domain"

// Summary counts diagnostics by severity.
type Summary struct {
	Total    int `json:"total"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Infos    int `json:"info"`
}

// Summarize tallies a diagnostic list.
func Summarize(diagnostics []domain.Diagnostic) Summary {
	s := Summary{Total: len(diagnostics)}
	for _, d := range diagnostics {
		switch d.Severity {
		case domain.SeverityError:
			s.Errors++
		case domain.SeverityWarning:
			s.Warnings++
		case domain.SeverityInfo:
			s.Infos++
		}
	}
	return s
}

// Valid reports whether the diagnostics contain no errors.
func (s Summary) Valid() bool {
	return s.Errors == 0
}
