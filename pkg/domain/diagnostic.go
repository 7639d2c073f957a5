package domain

// Severity ranks a diagnostic finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Diagnostic is a single validation finding. Diagnostics are pure
// output: produced once by the validation engine, never mutated.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Hint     string   `json:"hint,omitempty"`

	// NodeID is the offending node, or 0 for whole-graph findings.
	NodeID int `json:"node_id,omitempty"`
}

// HasErrors reports whether any diagnostic in the sequence carries the
// error severity. Warning and info findings never block the artifact.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Generation bundles a scenario with the diagnostics produced for it.
// It is the unit stored by artifact stores and returned by the serve
// and MCP adapters.
type Generation struct {
	Scenario    *Scenario    `json:"scenario"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}
