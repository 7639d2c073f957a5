package report

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/flowforge/flowforge/pkg/domain"
)

// severityStyle colors a severity label for the active terminal
// profile.
func severityStyle(p termenv.Profile, severity domain.Severity) termenv.Style {
	switch severity {
	case domain.SeverityError:
		return termenv.String().Foreground(p.Color("#f87171")).Bold()
	case domain.SeverityWarning:
		return termenv.String().Foreground(p.Color("#fbbf24"))
	default:
		return termenv.String().Foreground(p.Color("#60a5fa"))
	}
}

// RenderText renders diagnostics for terminal output: a summary line
// followed by one section per severity, worst first. Colors degrade
// to plain text on dumb terminals via the termenv profile.
func RenderText(diagnostics []domain.Diagnostic) string {
	return renderText(diagnostics, termenv.ColorProfile())
}

func renderText(diagnostics []domain.Diagnostic, p termenv.Profile) string {
	summary := Summarize(diagnostics)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Validation summary: %d error(s), %d warning(s), %d info\n",
		summary.Errors, summary.Warnings, summary.Infos)

	sections := []struct {
		severity domain.Severity
		heading  string
	}{
		{domain.SeverityError, "Errors (must fix)"},
		{domain.SeverityWarning, "Warnings (should fix)"},
		{domain.SeverityInfo, "Information (consider)"},
	}

	for _, section := range sections {
		var lines []string
		for _, d := range diagnostics {
			if d.Severity != section.severity {
				continue
			}
			line := fmt.Sprintf("  • [%s] %s", d.Code, d.Message)
			if d.Hint != "" {
				line += fmt.Sprintf("\n      hint: %s", d.Hint)
			}
			lines = append(lines, line)
		}
		if len(lines) == 0 {
			continue
		}
		sb.WriteString("\n")
		style := severityStyle(p, section.severity)
		sb.WriteString(style.Styled(section.heading))
		sb.WriteString("\n")
		sb.WriteString(strings.Join(lines, "\n"))
		sb.WriteString("\n")
	}

	if summary.Total == 0 {
		sb.WriteString("\nNo issues found.\n")
	}
	return sb.String()
}
