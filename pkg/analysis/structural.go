package analysis

import (
	"fmt"

	"github.com/flowforge/flowforge/pkg/domain"
	"github.com/flowforge/flowforge/pkg/registry"
	"github.com/flowforge/flowforge/pkg/schema"
)

// triggerCountRule requires exactly one trigger node.
type triggerCountRule struct{}

func (r *triggerCountRule) Code() string { return "structural.trigger-count" }

func (r *triggerCountRule) Apply(s *domain.Scenario) []domain.Diagnostic {
	count := len(s.Triggers())
	if count == 1 {
		return nil
	}
	return []domain.Diagnostic{{
		Severity: domain.SeverityError,
		Code:     r.Code(),
		Message:  fmt.Sprintf("scenario has %d trigger modules, expected exactly 1", count),
		Hint:     "every automation starts from a single trigger",
	}}
}

// duplicateIDRule requires unique node ids.
type duplicateIDRule struct{}

func (r *duplicateIDRule) Code() string { return "structural.duplicate-id" }

func (r *duplicateIDRule) Apply(s *domain.Scenario) []domain.Diagnostic {
	var diags []domain.Diagnostic
	seen := make(map[int]bool, len(s.Nodes))
	for _, node := range s.Nodes {
		if seen[node.ID] {
			diags = append(diags, domain.Diagnostic{
				Severity: domain.SeverityError,
				Code:     r.Code(),
				Message:  fmt.Sprintf("node id %d is used more than once", node.ID),
				NodeID:   node.ID,
			})
		}
		seen[node.ID] = true
	}
	return diags
}

// unknownKindRule requires every node kind to exist in the catalogue.
type unknownKindRule struct {
	registry *registry.Registry
}

func (r *unknownKindRule) Code() string { return "structural.unknown-kind" }

func (r *unknownKindRule) Apply(s *domain.Scenario) []domain.Diagnostic {
	var diags []domain.Diagnostic
	for _, node := range s.Nodes {
		if _, ok := r.registry.Lookup(node.Kind); !ok {
			diags = append(diags, domain.Diagnostic{
				Severity: domain.SeverityError,
				Code:     r.Code(),
				Message:  fmt.Sprintf("node %d uses unknown module kind %q", node.ID, node.Kind),
				NodeID:   node.ID,
			})
		}
	}
	return diags
}

// bindingRule requires every "{{id.capability}}" reference to point at
// an earlier node that declares the capability.
type bindingRule struct {
	registry *registry.Registry
}

func (r *bindingRule) Code() string { return "structural.binding" }

func (r *bindingRule) Apply(s *domain.Scenario) []domain.Diagnostic {
	var diags []domain.Diagnostic
	for _, node := range s.Nodes {
		for _, value := range stringParams(node) {
			for _, binding := range domain.ParseBindings(value) {
				diags = append(diags, r.check(s, node, binding)...)
			}
		}
	}
	return diags
}

func (r *bindingRule) check(s *domain.Scenario, node domain.Node, binding domain.Binding) []domain.Diagnostic {
	target := s.Node(binding.NodeID)
	if target == nil {
		return []domain.Diagnostic{{
			Severity: domain.SeverityError,
			Code:     r.Code(),
			Message:  fmt.Sprintf("node %d references missing node %d", node.ID, binding.NodeID),
			NodeID:   node.ID,
		}}
	}
	if binding.NodeID >= node.ID {
		return []domain.Diagnostic{{
			Severity: domain.SeverityError,
			Code:     r.Code(),
			Message:  fmt.Sprintf("node %d references node %d, which does not precede it", node.ID, binding.NodeID),
			Hint:     "bindings may only point backwards in the flow",
			NodeID:   node.ID,
		}}
	}
	desc, ok := r.registry.Lookup(target.Kind)
	if ok && !desc.HasCapability(binding.Capability) {
		return []domain.Diagnostic{{
			Severity: domain.SeverityError,
			Code:     r.Code(),
			Message: fmt.Sprintf("node %d binds %q, but node %d (%s) does not expose it",
				node.ID, binding.Capability, target.ID, target.Kind),
			NodeID: node.ID,
		}}
	}
	return nil
}

// unresolvedBindingRule flags "{{?.capability}}" placeholders the
// builder could not resolve.
type unresolvedBindingRule struct{}

func (r *unresolvedBindingRule) Code() string { return "structural.unresolved-binding" }

func (r *unresolvedBindingRule) Apply(s *domain.Scenario) []domain.Diagnostic {
	var diags []domain.Diagnostic
	for _, node := range s.Nodes {
		for _, value := range stringParams(node) {
			for _, capability := range domain.UnresolvedCapabilities(value) {
				diags = append(diags, domain.Diagnostic{
					Severity: domain.SeverityError,
					Code:     r.Code(),
					Message:  fmt.Sprintf("node %d needs %q, but no preceding module provides it", node.ID, capability),
					Hint:     "add a module that exposes the capability, or set the parameter explicitly",
					NodeID:   node.ID,
				})
			}
		}
	}
	return diags
}

// connectionRefRule requires node connection references to resolve.
type connectionRefRule struct{}

func (r *connectionRefRule) Code() string { return "structural.connection-ref" }

func (r *connectionRefRule) Apply(s *domain.Scenario) []domain.Diagnostic {
	var diags []domain.Diagnostic
	for _, node := range s.Nodes {
		if node.Connection == "" {
			continue
		}
		if s.ConnectionByName(node.Connection) == nil {
			diags = append(diags, domain.Diagnostic{
				Severity: domain.SeverityError,
				Code:     r.Code(),
				Message:  fmt.Sprintf("node %d references undeclared connection %q", node.ID, node.Connection),
				NodeID:   node.ID,
			})
		}
	}
	return diags
}

// requiredParamRule requires declared-required parameters to be
// present and non-empty.
type requiredParamRule struct {
	registry *registry.Registry
}

func (r *requiredParamRule) Code() string { return "structural.required-param" }

func (r *requiredParamRule) Apply(s *domain.Scenario) []domain.Diagnostic {
	var diags []domain.Diagnostic
	for _, node := range s.Nodes {
		desc, ok := r.registry.Lookup(node.Kind)
		if !ok {
			continue
		}
		for _, name := range desc.Required {
			value, present := node.Parameters[name]
			if !present || value == "" || value == nil {
				diags = append(diags, domain.Diagnostic{
					Severity: domain.SeverityError,
					Code:     r.Code(),
					Message:  fmt.Sprintf("node %d (%s) is missing required parameter %q", node.ID, node.Kind, name),
					NodeID:   node.ID,
				})
			}
		}
	}
	return diags
}

// paramTypeRule type-checks every present parameter against the
// kind's schema.
type paramTypeRule struct {
	registry *registry.Registry
}

func (r *paramTypeRule) Code() string { return "structural.param-type" }

func (r *paramTypeRule) Apply(s *domain.Scenario) []domain.Diagnostic {
	var diags []domain.Diagnostic
	for _, node := range s.Nodes {
		desc, ok := r.registry.Lookup(node.Kind)
		if !ok {
			continue
		}
		err := schema.ValidatePresent(desc.Params, node.Parameters)
		for _, fieldErr := range schema.ValidationErrors(err) {
			diags = append(diags, domain.Diagnostic{
				Severity: domain.SeverityError,
				Code:     r.Code(),
				Message:  fmt.Sprintf("node %d (%s): %s", node.ID, node.Kind, fieldErr.Error()),
				NodeID:   node.ID,
			})
		}
	}
	return diags
}

// stringParams returns the node's string-valued parameters in a
// stable (sorted key) order.
func stringParams(node domain.Node) []string {
	keys := sortedKeys(node.Parameters)
	var values []string
	for _, key := range keys {
		if s, ok := node.Parameters[key].(string); ok {
			values = append(values, s)
		}
	}
	return values
}
