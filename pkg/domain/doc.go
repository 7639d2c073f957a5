// Package domain holds the core entities of the scenario compiler:
// module nodes, capability bindings, connections, and diagnostics.
// It has no dependencies on adapters or the registry; every other
// package speaks in these types.
package domain
