package registry

import (
	"github.com/flowforge/flowforge/pkg/domain"
	"github.com/flowforge/flowforge/pkg/schema"
)

// Descriptor describes a module kind the generator can emit: its
// category, parameter schema, defaults, and the capabilities its
// output exposes to downstream modules.
type Descriptor struct {
	// Kind is the unique module identifier, e.g. "trigger.gmail-watch".
	Kind string

	// Category places the kind in the graph: trigger, processing,
	// router, action, or error-handler.
	Category domain.Category

	// Summary is a one-line human description shown by listing commands.
	Summary string

	// Params declares the parameter names and types this kind accepts.
	Params schema.Schema

	// Required lists parameters that must be present on every node of
	// this kind. Everything else may be filled from Defaults.
	Required []string

	// Defaults are merged under caller-supplied parameters at build time.
	Defaults map[string]any

	// Capabilities names the output fields downstream modules may bind
	// to with "{{id.capability}}" expressions.
	Capabilities []string

	// Service identifies the external account the module needs, e.g.
	// "gmail". Empty for builtin modules that need no connection.
	Service string

	// Bind maps parameter names to an ordered capability preference
	// list. At build time each listed parameter is wired to the nearest
	// preceding node exposing one of the capabilities, first match wins.
	Bind map[string][]string
}

// HasCapability reports whether the descriptor exposes the capability.
func (d Descriptor) HasCapability(capability string) bool {
	for _, c := range d.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}

// NeedsConnection reports whether nodes of this kind require an
// external service connection.
func (d Descriptor) NeedsConnection() bool {
	return d.Service != ""
}
