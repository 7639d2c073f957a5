package report

import (
	"fmt"
	"strings"

	"github.com/flowforge/flowforge/pkg/domain"
)

// RenderMarkdown renders a scenario and its diagnostics as a markdown
// report, suitable for writing next to the blueprint or rendering in
// the terminal.
func RenderMarkdown(s *domain.Scenario, diagnostics []domain.Diagnostic) string {
	summary := Summarize(diagnostics)

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", s.Name)
	if s.Description != "" {
		fmt.Fprintf(&sb, "> %s\n\n", s.Description)
	}

	sb.WriteString("## Modules\n\n")
	sb.WriteString("| # | Module | Category | Connection |\n")
	sb.WriteString("|---|--------|----------|------------|\n")
	for _, node := range s.Nodes {
		connection := node.Connection
		if connection == "" {
			connection = "-"
		}
		fmt.Fprintf(&sb, "| %d | `%s` | %s | %s |\n", node.ID, node.Kind, node.Category, connection)
	}
	sb.WriteString("\n")

	if len(s.Connections) > 0 {
		sb.WriteString("## Connections\n\n")
		for _, conn := range s.Connections {
			fmt.Fprintf(&sb, "- `%s` (%s), used by modules %s\n", conn.Name, conn.Type, joinIDs(conn.Modules))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Validation\n\n")
	fmt.Fprintf(&sb, "%d error(s), %d warning(s), %d info.\n\n",
		summary.Errors, summary.Warnings, summary.Infos)
	for _, d := range diagnostics {
		fmt.Fprintf(&sb, "- **%s** `%s`: %s", d.Severity, d.Code, d.Message)
		if d.Hint != "" {
			fmt.Fprintf(&sb, " _(%s)_", d.Hint)
		}
		sb.WriteString("\n")
	}
	if summary.Total == 0 {
		sb.WriteString("No issues found.\n")
	}

	return sb.String()
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ", ")
}
