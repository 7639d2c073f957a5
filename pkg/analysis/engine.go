package analysis

import (
	"sort"

	"github.com/flowforge/flowforge/pkg/domain"
	"github.com/flowforge/flowforge/pkg/registry"
)

// Rule inspects a scenario and reports diagnostics. Rules are pure:
// they never modify the scenario, never fail, and produce the same
// diagnostics for the same input.
type Rule interface {
	// Code is the stable machine identifier every diagnostic the rule
	// emits carries, e.g. "structural.trigger-count".
	Code() string
	// Apply evaluates the rule against the scenario.
	Apply(s *domain.Scenario) []domain.Diagnostic
}

// Engine runs a fixed, ordered rule list over a scenario. Diagnostics
// come back in rule order, then node order; running the engine twice
// on the same scenario yields identical output.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine with the default rule set resolved
// against the given module catalogue.
func NewEngine(reg *registry.Registry) *Engine {
	return &Engine{rules: DefaultRules(reg)}
}

// NewEngineWithRules creates an engine with a custom rule list, in
// the order given.
func NewEngineWithRules(rules []Rule) *Engine {
	return &Engine{rules: rules}
}

// Analyze evaluates every rule against the scenario. It never
// short-circuits: later rules still run when earlier ones report
// errors.
func (e *Engine) Analyze(s *domain.Scenario) []domain.Diagnostic {
	var diagnostics []domain.Diagnostic
	for _, rule := range e.rules {
		diagnostics = append(diagnostics, rule.Apply(s)...)
	}
	return diagnostics
}

// DefaultRules returns the built-in rules in evaluation order:
// structural errors first, then consistency, heuristics, and
// advisories.
func DefaultRules(reg *registry.Registry) []Rule {
	return []Rule{
		&triggerCountRule{},
		&duplicateIDRule{},
		&unknownKindRule{registry: reg},
		&bindingRule{registry: reg},
		&unresolvedBindingRule{},
		&connectionRefRule{},
		&requiredParamRule{registry: reg},
		&paramTypeRule{registry: reg},
		&connectionClashRule{},
		&connectionTypeRule{registry: reg},
		&maxResultsRule{},
		&aiTimeoutRule{},
		&destructiveOperationRule{},
		&missingErrorHandlerRule{},
		&auditLogRule{},
		&staticPromptRule{},
		&nameFormatRule{},
		&moduleCountRule{},
		&aiModuleCountRule{},
		&openWebhookRule{},
		&connectionNamingRule{},
	}
}

// sortedKeys gives rules a deterministic iteration order over
// parameter maps.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
