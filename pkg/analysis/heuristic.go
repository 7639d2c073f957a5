package analysis

import (
	"fmt"
	"strings"

	"github.com/flowforge/flowforge/pkg/domain"
)

// maxResultsLimit is the batch size above which external APIs tend to
// rate-limit polling triggers.
const maxResultsLimit = 50

// maxResultsRule warns on oversized fetch batches.
type maxResultsRule struct{}

func (r *maxResultsRule) Code() string { return "heuristic.max-results" }

func (r *maxResultsRule) Apply(s *domain.Scenario) []domain.Diagnostic {
	var diags []domain.Diagnostic
	for _, node := range s.Nodes {
		for _, param := range []string{"maxResults", "limit"} {
			value, ok := intParam(node, param)
			if ok && value > maxResultsLimit {
				diags = append(diags, domain.Diagnostic{
					Severity: domain.SeverityWarning,
					Code:     r.Code(),
					Message:  fmt.Sprintf("node %d fetches %d items per run, which may hit rate limits", node.ID, value),
					Hint:     "consider reducing the batch size to 20 or less",
					NodeID:   node.ID,
				})
			}
		}
	}
	return diags
}

// aiTimeoutLimit is the AI agent timeout above which runs block the
// scenario for too long.
const aiTimeoutLimit = 600

// aiTimeoutRule warns on very long AI timeouts.
type aiTimeoutRule struct{}

func (r *aiTimeoutRule) Code() string { return "heuristic.ai-timeout" }

func (r *aiTimeoutRule) Apply(s *domain.Scenario) []domain.Diagnostic {
	var diags []domain.Diagnostic
	for _, node := range s.Nodes {
		if node.Kind != "processing.ai-agent" {
			continue
		}
		if timeout, ok := intParam(node, "timeout"); ok && timeout > aiTimeoutLimit {
			diags = append(diags, domain.Diagnostic{
				Severity: domain.SeverityWarning,
				Code:     r.Code(),
				Message:  fmt.Sprintf("node %d sets a very high AI timeout (%ds)", node.ID, timeout),
				Hint:     "long timeouts stall the whole scenario on slow runs",
				NodeID:   node.ID,
			})
		}
	}
	return diags
}

var destructiveKeywords = []string{"delete", "drop", "truncate", "remove all"}

// destructiveOperationRule warns when parameters describe destructive
// data operations and the scenario has no error handler to contain
// failures.
type destructiveOperationRule struct{}

func (r *destructiveOperationRule) Code() string { return "heuristic.destructive-operation" }

func (r *destructiveOperationRule) Apply(s *domain.Scenario) []domain.Diagnostic {
	var diags []domain.Diagnostic
	for _, node := range s.Nodes {
		keyword := destructiveKeyword(node)
		if keyword == "" {
			continue
		}
		diags = append(diags, domain.Diagnostic{
			Severity: domain.SeverityWarning,
			Code:     r.Code(),
			Message:  fmt.Sprintf("node %d performs a potentially destructive operation (%q)", node.ID, keyword),
			Hint:     "verify the statement scope and add an error handler before running this unattended",
			NodeID:   node.ID,
		})
	}
	return diags
}

func destructiveKeyword(node domain.Node) string {
	for _, value := range stringParams(node) {
		lowered := strings.ToLower(value)
		for _, kw := range destructiveKeywords {
			if strings.Contains(lowered, kw) {
				return kw
			}
		}
	}
	return ""
}

// sideEffecting lists the kinds whose failures cost money or send
// things that cannot be unsent.
var sideEffecting = map[string]bool{
	"processing.ai-agent": true,
	"action.send-email":   true,
	"action.http-request": true,
	"action.mysql-query":  true,
}

// missingErrorHandlerRule warns when side-effecting modules run
// without an error handler.
type missingErrorHandlerRule struct{}

func (r *missingErrorHandlerRule) Code() string { return "heuristic.missing-error-handler" }

func (r *missingErrorHandlerRule) Apply(s *domain.Scenario) []domain.Diagnostic {
	if hasErrorHandler(s) {
		return nil
	}
	for _, node := range s.Nodes {
		if sideEffecting[node.Kind] {
			return []domain.Diagnostic{{
				Severity: domain.SeverityWarning,
				Code:     r.Code(),
				Message:  "scenario has side-effecting modules but no error handler",
				Hint:     "add failure handling so partial runs do not repeat paid or visible actions",
			}}
		}
	}
	return nil
}

func hasErrorHandler(s *domain.Scenario) bool {
	for _, node := range s.Nodes {
		if node.Category == domain.CategoryErrorHandler {
			return true
		}
	}
	return false
}

func intParam(node domain.Node, name string) (int, bool) {
	switch v := node.Parameters[name].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
