package analysis

import (
	"fmt"

	"github.com/flowforge/flowforge/pkg/domain"
	"github.com/flowforge/flowforge/pkg/registry"
)

// connectionClashRule flags connection names declared more than once.
type connectionClashRule struct{}

func (r *connectionClashRule) Code() string { return "consistency.connection-name-clash" }

func (r *connectionClashRule) Apply(s *domain.Scenario) []domain.Diagnostic {
	var diags []domain.Diagnostic
	seen := make(map[string]string, len(s.Connections))
	for _, conn := range s.Connections {
		if previous, dup := seen[conn.Name]; dup {
			message := fmt.Sprintf("connection name %q is declared more than once", conn.Name)
			if previous != conn.Type {
				message = fmt.Sprintf("connection name %q is declared with conflicting types %q and %q",
					conn.Name, previous, conn.Type)
			}
			diags = append(diags, domain.Diagnostic{
				Severity: domain.SeverityError,
				Code:     r.Code(),
				Message:  message,
			})
			continue
		}
		seen[conn.Name] = conn.Type
	}
	return diags
}

// connectionTypeRule requires a node's connection to carry the
// service type its kind declares.
type connectionTypeRule struct {
	registry *registry.Registry
}

func (r *connectionTypeRule) Code() string { return "consistency.connection-type" }

func (r *connectionTypeRule) Apply(s *domain.Scenario) []domain.Diagnostic {
	var diags []domain.Diagnostic
	for _, node := range s.Nodes {
		if node.Connection == "" {
			continue
		}
		desc, ok := r.registry.Lookup(node.Kind)
		if !ok {
			continue
		}
		conn := s.ConnectionByName(node.Connection)
		if conn == nil {
			// structural.connection-ref already reports this
			continue
		}
		if desc.Service != "" && conn.Type != desc.Service {
			diags = append(diags, domain.Diagnostic{
				Severity: domain.SeverityError,
				Code:     r.Code(),
				Message: fmt.Sprintf("node %d (%s) needs a %q connection but %q is of type %q",
					node.ID, node.Kind, desc.Service, conn.Name, conn.Type),
				NodeID: node.ID,
			})
		}
	}
	return diags
}
