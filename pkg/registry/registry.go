package registry

import (
	"fmt"

	"github.com/flowforge/flowforge/pkg/domain"
)

// Registry is an immutable catalogue of module descriptors. Build it
// once at startup and inject it wherever kinds must be resolved.
type Registry struct {
	descriptors map[string]Descriptor
	kinds       []string // registration order
}

// New creates a registry from the given descriptors. Kinds must be
// unique and carry a valid category.
func New(descriptors ...Descriptor) (*Registry, error) {
	r := &Registry{
		descriptors: make(map[string]Descriptor, len(descriptors)),
	}
	for _, d := range descriptors {
		if err := r.add(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) add(d Descriptor) error {
	if d.Kind == "" {
		return fmt.Errorf("descriptor has empty kind")
	}
	switch d.Category {
	case domain.CategoryTrigger, domain.CategoryProcessing, domain.CategoryRouter,
		domain.CategoryAction, domain.CategoryErrorHandler:
	default:
		return fmt.Errorf("descriptor %s: unknown category %q", d.Kind, d.Category)
	}
	if _, exists := r.descriptors[d.Kind]; exists {
		return fmt.Errorf("descriptor %s: already registered", d.Kind)
	}
	r.descriptors[d.Kind] = d
	r.kinds = append(r.kinds, d.Kind)
	return nil
}

// Lookup returns the descriptor for a kind.
func (r *Registry) Lookup(kind string) (Descriptor, bool) {
	d, ok := r.descriptors[kind]
	return d, ok
}

// Kinds returns all registered kinds in registration order.
func (r *Registry) Kinds() []string {
	out := make([]string, len(r.kinds))
	copy(out, r.kinds)
	return out
}

// ByCategory returns the descriptors of one category, in registration
// order.
func (r *Registry) ByCategory(category domain.Category) []Descriptor {
	var out []Descriptor
	for _, kind := range r.kinds {
		if d := r.descriptors[kind]; d.Category == category {
			out = append(out, d)
		}
	}
	return out
}

// Len returns the number of registered kinds.
func (r *Registry) Len() int {
	return len(r.kinds)
}
