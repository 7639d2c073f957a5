package report

import (
	"encoding/json"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowforge/flowforge/pkg/domain"
)

func sampleDiagnostics() []domain.Diagnostic {
	return []domain.Diagnostic{
		{Severity: domain.SeverityError, Code: "structural.trigger-count", Message: "scenario has 0 trigger modules, expected exactly 1"},
		{Severity: domain.SeverityWarning, Code: "heuristic.max-results", Message: "node 1 fetches 80 items per run", Hint: "consider reducing the batch size", NodeID: 1},
		{Severity: domain.SeverityInfo, Code: "advisory.audit-log", Message: "scenario has no execution logging module"},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleDiagnostics())

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Errors)
	assert.Equal(t, 1, s.Warnings)
	assert.Equal(t, 1, s.Infos)
	assert.False(t, s.Valid())
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.True(t, s.Valid())
	assert.Zero(t, s.Total)
}

func TestRenderText(t *testing.T) {
	out := renderText(sampleDiagnostics(), termenv.Ascii)

	assert.Contains(t, out, "1 error(s), 1 warning(s), 1 info")
	assert.Contains(t, out, "Errors (must fix)")
	assert.Contains(t, out, "structural.trigger-count")
	assert.Contains(t, out, "hint: consider reducing the batch size")
	assert.Contains(t, out, "Information (consider)")
}

func TestRenderText_Clean(t *testing.T) {
	out := renderText(nil, termenv.Ascii)

	assert.Contains(t, out, "No issues found.")
	assert.NotContains(t, out, "Errors (must fix)")
}

func TestRenderMarkdown(t *testing.T) {
	scenario := &domain.Scenario{
		Name:        "Gmail_AI_Automation",
		Description: "Analyze support emails and reply",
		Nodes: []domain.Node{
			{ID: 1, Kind: "trigger.gmail-watch", Category: domain.CategoryTrigger, Connection: "gmail_connection"},
			{ID: 2, Kind: "processing.ai-agent", Category: domain.CategoryProcessing, Connection: "openai_connection"},
		},
		Connections: []domain.Connection{
			{Name: "gmail_connection", Type: "gmail", Modules: []int{1}},
		},
	}

	out := RenderMarkdown(scenario, sampleDiagnostics())

	assert.Contains(t, out, "# Gmail_AI_Automation")
	assert.Contains(t, out, "| 1 | `trigger.gmail-watch` | trigger | gmail_connection |")
	assert.Contains(t, out, "- `gmail_connection` (gmail), used by modules 1")
	assert.Contains(t, out, "**error** `structural.trigger-count`")
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(sampleDiagnostics())
	require.NoError(t, err)

	var decoded struct {
		Summary Summary             `json:"summary"`
		Results []domain.Diagnostic `json:"results"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, 3, decoded.Summary.Total)
	require.Len(t, decoded.Results, 3)
	assert.Equal(t, "heuristic.max-results", decoded.Results[1].Code)
	assert.Equal(t, 1, decoded.Results[1].NodeID)
}

func TestRenderJSON_EmptyIsArray(t *testing.T) {
	data, err := RenderJSON(nil)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"results": []`)
}
