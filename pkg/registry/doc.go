// Package registry holds the catalogue of module kinds the generator
// can emit. Each Descriptor declares a kind's category, parameter
// schema, defaults, exposed capabilities, and the external service it
// requires. A Registry is immutable after construction and is injected
// into the builder and validation engine rather than accessed through
// package state.
package registry
