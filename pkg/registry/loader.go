package registry

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/flowforge/flowforge/pkg/domain"
	"github.com/flowforge/flowforge/pkg/schema"
)

// descriptorSpec is the on-disk shape of a catalogue entry. Parameter
// types are declared as strings ("int", "enum(a|b)") and parsed into a
// schema at load time.
type descriptorSpec struct {
	Kind         string              `mapstructure:"kind"`
	Category     string              `mapstructure:"category"`
	Summary      string              `mapstructure:"summary"`
	Params       map[string]string   `mapstructure:"params"`
	Required     []string            `mapstructure:"required"`
	Defaults     map[string]any      `mapstructure:"defaults"`
	Capabilities []string            `mapstructure:"capabilities"`
	Service      string              `mapstructure:"service"`
	Bind         map[string][]string `mapstructure:"bind"`
}

type catalogueFile struct {
	Modules []map[string]any `yaml:"modules"`
}

// LoadFile reads additional module descriptors from a YAML catalogue
// file. Use Extend to merge them into a registry.
func LoadFile(path string) ([]Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalogue: %w", err)
	}

	var file catalogueFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalogue: %w", err)
	}

	descriptors := make([]Descriptor, 0, len(file.Modules))
	for i, raw := range file.Modules {
		var spec descriptorSpec
		if err := mapstructure.Decode(raw, &spec); err != nil {
			return nil, fmt.Errorf("catalogue entry %d: %w", i, err)
		}

		d, err := spec.descriptor()
		if err != nil {
			return nil, fmt.Errorf("catalogue entry %d: %w", i, err)
		}
		descriptors = append(descriptors, d)
	}

	return descriptors, nil
}

func (s descriptorSpec) descriptor() (Descriptor, error) {
	if s.Kind == "" {
		return Descriptor{}, fmt.Errorf("missing kind")
	}

	params, err := schema.ParseTypeMap(s.Params)
	if err != nil {
		return Descriptor{}, fmt.Errorf("kind %s: %w", s.Kind, err)
	}

	return Descriptor{
		Kind:         s.Kind,
		Category:     domain.Category(s.Category),
		Summary:      s.Summary,
		Params:       params,
		Required:     s.Required,
		Defaults:     s.Defaults,
		Capabilities: s.Capabilities,
		Service:      s.Service,
		Bind:         s.Bind,
	}, nil
}

// Extend returns a new registry containing this registry's descriptors
// plus the given ones. The receiver is unchanged.
func (r *Registry) Extend(descriptors ...Descriptor) (*Registry, error) {
	combined := make([]Descriptor, 0, len(r.kinds)+len(descriptors))
	for _, kind := range r.kinds {
		combined = append(combined, r.descriptors[kind])
	}
	combined = append(combined, descriptors...)
	return New(combined...)
}
