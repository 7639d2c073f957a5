package emit

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/flowforge/flowforge/pkg/domain"
)

// moduleVersion is the platform module schema version stamped on
// every flow entry.
const moduleVersion = 1

// Blueprint is the import-ready document shape. Field names follow
// the platform's blueprint format.
type Blueprint struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Flow        []FlowModule `json:"flow"`
	Connections []Connection `json:"connections,omitempty"`
	Metadata    Metadata     `json:"metadata"`
}

// FlowModule is one node of the flow.
type FlowModule struct {
	ID         int            `json:"id"`
	Module     string         `json:"module"`
	Version    int            `json:"version"`
	Parameters map[string]any `json:"parameters"`
	Connection string         `json:"connection,omitempty"`
}

// Connection declares one shared service account.
type Connection struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Modules []int  `json:"modules,omitempty"`
}

// Metadata records provenance without affecting graph semantics.
type Metadata struct {
	GeneratedAt time.Time `json:"generated_at"`
	Source      string    `json:"source,omitempty"`
	Generator   string    `json:"generator,omitempty"`
}

// FromScenario converts a scenario to its blueprint document. The
// timestamp is caller-supplied so the graph itself stays a pure
// function of its input.
func FromScenario(s *domain.Scenario, generatedAt time.Time, generator string) *Blueprint {
	b := &Blueprint{
		Name:        s.Name,
		Description: s.Description,
		Flow:        make([]FlowModule, 0, len(s.Nodes)),
		Metadata: Metadata{
			GeneratedAt: generatedAt.UTC(),
			Source:      s.Description,
			Generator:   generator,
		},
	}

	for _, node := range s.Nodes {
		b.Flow = append(b.Flow, FlowModule{
			ID:         node.ID,
			Module:     node.Kind,
			Version:    moduleVersion,
			Parameters: node.Parameters,
			Connection: node.Connection,
		})
	}

	for _, conn := range s.Connections {
		b.Connections = append(b.Connections, Connection{
			Name:    conn.Name,
			Type:    conn.Type,
			Modules: conn.Modules,
		})
	}

	return b
}

// Marshal renders the blueprint as indented JSON.
func (b *Blueprint) Marshal() ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}

// Parse decodes a blueprint document.
func Parse(data []byte) (*Blueprint, error) {
	var b Blueprint
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse blueprint: %w", err)
	}
	if b.Name == "" {
		return nil, fmt.Errorf("blueprint has no name")
	}
	return &b, nil
}

// Scenario converts the blueprint back to the graph form validation
// runs on. Node categories are recovered from the kind prefix.
func (b *Blueprint) Scenario() *domain.Scenario {
	s := &domain.Scenario{
		Name:        b.Name,
		Description: b.Description,
	}
	for _, m := range b.Flow {
		s.Nodes = append(s.Nodes, domain.Node{
			ID:         m.ID,
			Kind:       m.Module,
			Category:   categoryOf(m.Module),
			Parameters: m.Parameters,
			Connection: m.Connection,
		})
	}
	for _, c := range b.Connections {
		s.Connections = append(s.Connections, domain.Connection{
			Name:    c.Name,
			Type:    c.Type,
			Modules: c.Modules,
		})
	}
	return s
}

// categoryOf maps a kind's prefix to its category, e.g.
// "action.slack-post" is an action.
func categoryOf(kind string) domain.Category {
	prefix, _, _ := strings.Cut(kind, ".")
	switch prefix {
	case "trigger":
		return domain.CategoryTrigger
	case "processing":
		return domain.CategoryProcessing
	case "router":
		return domain.CategoryRouter
	case "action":
		return domain.CategoryAction
	case "error":
		return domain.CategoryErrorHandler
	default:
		return domain.Category(prefix)
	}
}
