package intent

import (
	"strings"

	"github.com/flowforge/flowforge/pkg/domain"
)

// Intent is a resolved module kind plus the parameters extracted from
// the description for it.
type Intent struct {
	Kind   string
	Params map[string]any
}

// Result is the structured reading of a description: exactly one
// trigger, at most one processing step, zero or more actions, and the
// flow-control hints the builder uses to shape the graph.
type Result struct {
	Trigger         Intent
	Processing      *Intent
	Actions         []Intent
	Branching       bool
	FailureHandling bool
}

// Extractor resolves descriptions against its rule tables. It keeps
// no request state; one extractor serves concurrent callers.
type Extractor struct {
	rules Rules
}

// NewExtractor creates an extractor with the given rule tables.
func NewExtractor(rules Rules) *Extractor {
	return &Extractor{rules: rules}
}

// fallbackTrigger is used when no trigger rule matches; every
// automation has a trigger, and a schedule is the neutral choice.
const fallbackTrigger = "trigger.schedule"

var branchKeywords = []string{
	"if ", "else", "otherwise", "approve", "deny", "route", "depending",
}

var failureKeywords = []string{
	"on failure", "retry", "error handling", "fallback", "if it fails",
}

// Extract reads a description into a Result. It returns
// domain.ErrEmptyDescription when the description is blank; it never
// fails on content it cannot place, falling back to a schedule
// trigger instead.
func (e *Extractor) Extract(description string) (Result, error) {
	if strings.TrimSpace(description) == "" {
		return Result{}, domain.ErrEmptyDescription
	}

	lowered := strings.ToLower(description)

	result := Result{
		Trigger:         e.matchFirst(e.rules.Triggers, lowered, description),
		Actions:         e.matchAll(e.rules.Actions, lowered, description),
		Branching:       containsAny(lowered, branchKeywords),
		FailureHandling: containsAny(lowered, failureKeywords),
	}

	if p := e.matchFirstPtr(e.rules.Processing, lowered, description); p != nil {
		result.Processing = p
	}

	return result, nil
}

func (e *Extractor) matchFirst(rules []Rule, lowered, description string) Intent {
	if p := e.matchFirstPtr(rules, lowered, description); p != nil {
		return *p
	}
	return Intent{Kind: fallbackTrigger}
}

func (e *Extractor) matchFirstPtr(rules []Rule, lowered, description string) *Intent {
	for _, rule := range rules {
		if rule.matches(lowered) {
			return &Intent{Kind: rule.Kind, Params: extractParams(rule, description)}
		}
	}
	return nil
}

func (e *Extractor) matchAll(rules []Rule, lowered, description string) []Intent {
	var intents []Intent
	for _, rule := range rules {
		if rule.matches(lowered) {
			intents = append(intents, Intent{Kind: rule.Kind, Params: extractParams(rule, description)})
		}
	}
	return intents
}

func extractParams(rule Rule, description string) map[string]any {
	if rule.Extract == nil {
		return nil
	}
	return rule.Extract(description)
}

func containsAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
