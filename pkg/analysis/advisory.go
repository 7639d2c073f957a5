package analysis

import (
	"fmt"
	"regexp"

	"github.com/flowforge/flowforge/pkg/domain"
)

// auditLogRule suggests an execution log module.
type auditLogRule struct{}

func (r *auditLogRule) Code() string { return "advisory.audit-log" }

func (r *auditLogRule) Apply(s *domain.Scenario) []domain.Diagnostic {
	for _, node := range s.Nodes {
		if node.Kind == "action.datastore-log" {
			return nil
		}
	}
	return []domain.Diagnostic{{
		Severity: domain.SeverityInfo,
		Code:     r.Code(),
		Message:  "scenario has no execution logging module",
		Hint:     "add a data store log module to keep an audit trail of runs",
	}}
}

// staticPromptRule flags AI prompts that reference no upstream data.
type staticPromptRule struct{}

func (r *staticPromptRule) Code() string { return "advisory.static-prompt" }

func (r *staticPromptRule) Apply(s *domain.Scenario) []domain.Diagnostic {
	var diags []domain.Diagnostic
	for _, node := range s.Nodes {
		if node.Kind != "processing.ai-agent" {
			continue
		}
		prompt, ok := node.Parameters["prompt"].(string)
		if !ok || domain.HasBinding(prompt) {
			continue
		}
		diags = append(diags, domain.Diagnostic{
			Severity: domain.SeverityInfo,
			Code:     r.Code(),
			Message:  fmt.Sprintf("node %d sends the AI a static prompt with no upstream data", node.ID),
			Hint:     "embed trigger output in the prompt so each run processes fresh input",
			NodeID:   node.ID,
		})
	}
	return diags
}

var scenarioNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// maxNameLength bounds scenario names for platform import.
const maxNameLength = 100

// nameFormatRule checks the scenario name convention.
type nameFormatRule struct{}

func (r *nameFormatRule) Code() string { return "advisory.name-format" }

func (r *nameFormatRule) Apply(s *domain.Scenario) []domain.Diagnostic {
	var diags []domain.Diagnostic
	if !scenarioNamePattern.MatchString(s.Name) {
		diags = append(diags, domain.Diagnostic{
			Severity: domain.SeverityInfo,
			Code:     r.Code(),
			Message:  fmt.Sprintf("scenario name %q contains characters outside [A-Za-z0-9_-]", s.Name),
			Hint:     "stick to letters, digits, underscores, and hyphens",
		})
	}
	if len(s.Name) > maxNameLength {
		diags = append(diags, domain.Diagnostic{
			Severity: domain.SeverityInfo,
			Code:     r.Code(),
			Message:  fmt.Sprintf("scenario name is %d characters long", len(s.Name)),
			Hint:     "shorter names are easier to find in the platform UI",
		})
	}
	return diags
}

// maxModuleCount is the size above which a scenario becomes hard to
// maintain as one flow.
const maxModuleCount = 20

type moduleCountRule struct{}

func (r *moduleCountRule) Code() string { return "advisory.module-count" }

func (r *moduleCountRule) Apply(s *domain.Scenario) []domain.Diagnostic {
	if len(s.Nodes) <= maxModuleCount {
		return nil
	}
	return []domain.Diagnostic{{
		Severity: domain.SeverityInfo,
		Code:     r.Code(),
		Message:  fmt.Sprintf("scenario has %d modules", len(s.Nodes)),
		Hint:     "consider splitting into smaller scenarios",
	}}
}

// maxAIModules is the AI call count above which per-run costs add up.
const maxAIModules = 3

type aiModuleCountRule struct{}

func (r *aiModuleCountRule) Code() string { return "advisory.ai-module-count" }

func (r *aiModuleCountRule) Apply(s *domain.Scenario) []domain.Diagnostic {
	count := 0
	for _, node := range s.Nodes {
		if node.Kind == "processing.ai-agent" {
			count++
		}
	}
	if count <= maxAIModules {
		return nil
	}
	return []domain.Diagnostic{{
		Severity: domain.SeverityInfo,
		Code:     r.Code(),
		Message:  fmt.Sprintf("scenario runs %d AI modules per execution", count),
		Hint:     "consolidating AI processing reduces token costs",
	}}
}

// openWebhookRule flags webhooks accepting traffic from anywhere.
type openWebhookRule struct{}

func (r *openWebhookRule) Code() string { return "advisory.open-webhook" }

func (r *openWebhookRule) Apply(s *domain.Scenario) []domain.Diagnostic {
	var diags []domain.Diagnostic
	for _, node := range s.Nodes {
		if node.Kind != "trigger.webhook" {
			continue
		}
		if restriction, ok := node.Parameters["restrictionType"].(string); ok && restriction == "none" {
			diags = append(diags, domain.Diagnostic{
				Severity: domain.SeverityInfo,
				Code:     r.Code(),
				Message:  fmt.Sprintf("node %d accepts webhook calls without IP restrictions", node.ID),
				Hint:     "consider an IP whitelist",
				NodeID:   node.ID,
			})
		}
	}
	return diags
}

var connectionNamePattern = regexp.MustCompile(`^[a-z_]+_connection$`)

// connectionNamingRule checks the shared connection naming
// convention.
type connectionNamingRule struct{}

func (r *connectionNamingRule) Code() string { return "advisory.connection-naming" }

func (r *connectionNamingRule) Apply(s *domain.Scenario) []domain.Diagnostic {
	var diags []domain.Diagnostic
	for _, conn := range s.Connections {
		if !connectionNamePattern.MatchString(conn.Name) {
			diags = append(diags, domain.Diagnostic{
				Severity: domain.SeverityInfo,
				Code:     r.Code(),
				Message:  fmt.Sprintf("connection name %q does not follow the <service>_connection convention", conn.Name),
			})
		}
	}
	return diags
}
