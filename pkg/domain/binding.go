package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

// Binding references the output capability of an upstream node from
// inside a parameter value, using the external "{{id.capability}}"
// syntax. Bindings are acyclic by construction: the builder only ever
// binds to nodes created earlier.
type Binding struct {
	NodeID     int
	Capability string
}

// String renders the binding in the external wire syntax.
func (b Binding) String() string {
	return fmt.Sprintf("{{%d.%s}}", b.NodeID, b.Capability)
}

var (
	bindingPattern    = regexp.MustCompile(`\{\{(\d+)\.([A-Za-z][A-Za-z0-9_]*)\}\}`)
	unresolvedPattern = regexp.MustCompile(`\{\{\?\.([A-Za-z][A-Za-z0-9_]*)\}\}`)
)

// Unresolved renders the placeholder emitted when no upstream node
// declares the wanted capability. Validation flags these; they are
// never silently shipped as working references.
func Unresolved(capability string) string {
	return fmt.Sprintf("{{?.%s}}", capability)
}

// ParseBindings extracts every well-formed binding from a parameter
// value. Malformed expressions are ignored here; the validation engine
// reports unresolved placeholders separately.
func ParseBindings(value string) []Binding {
	matches := bindingPattern.FindAllStringSubmatch(value, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]Binding, 0, len(matches))
	for _, m := range matches {
		id, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		out = append(out, Binding{NodeID: id, Capability: m[2]})
	}
	return out
}

// UnresolvedCapabilities extracts the capability names of unresolved
// "{{?.capability}}" placeholders in a parameter value.
func UnresolvedCapabilities(value string) []string {
	matches := unresolvedPattern.FindAllStringSubmatch(value, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

// HasBinding reports whether the value carries at least one resolved
// binding expression.
func HasBinding(value string) bool {
	return bindingPattern.MatchString(value)
}
