package builder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/flowforge/flowforge/pkg/domain"
	"github.com/flowforge/flowforge/pkg/intent"
	"github.com/flowforge/flowforge/pkg/registry"
)

// Builder turns extracted intents into a wired module graph. It holds
// only the registry; each Build call is independent.
type Builder struct {
	registry *registry.Registry
}

// New creates a builder over the given module catalogue.
func New(reg *registry.Registry) *Builder {
	return &Builder{registry: reg}
}

// nodeRef pairs an emitted node with its descriptor so later nodes can
// resolve capability bindings against it.
type nodeRef struct {
	node *domain.Node
	desc registry.Descriptor
}

// Build assembles a scenario from the extraction result. Emission
// order is trigger, processing, router (when the flow branches),
// actions, error handler. Node ids increase from 1 and are never
// reused. The output is deterministic for identical input.
func (b *Builder) Build(result intent.Result, description string) (*domain.Scenario, error) {
	g := &graphState{builder: b}

	if err := g.emit(result.Trigger); err != nil {
		return nil, err
	}

	if result.Processing != nil {
		if err := g.emit(*result.Processing); err != nil {
			return nil, err
		}
	}

	if result.Branching || len(result.Actions) > 1 {
		routes := len(result.Actions)
		if routes < 2 {
			routes = 2
		}
		if err := g.emit(intent.Intent{
			Kind:   "router.branch",
			Params: map[string]any{"routes": routes},
		}); err != nil {
			return nil, err
		}
	}

	for _, action := range result.Actions {
		if err := g.emit(action); err != nil {
			return nil, err
		}
	}

	if result.FailureHandling {
		if err := g.emit(intent.Intent{Kind: "error.ignore"}); err != nil {
			return nil, err
		}
	}

	scenario := &domain.Scenario{
		Name:        scenarioName(g.built),
		Description: description,
		Connections: g.connections,
	}
	for _, ref := range g.built {
		scenario.Nodes = append(scenario.Nodes, *ref.node)
	}
	return scenario, nil
}

// graphState accumulates one Build call's output.
type graphState struct {
	builder     *Builder
	built       []nodeRef
	connections []domain.Connection
	nextID      int
}

func (g *graphState) emit(in intent.Intent) error {
	desc, ok := g.builder.registry.Lookup(in.Kind)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownKind, in.Kind)
	}

	g.nextID++
	node := &domain.Node{
		ID:         g.nextID,
		Kind:       desc.Kind,
		Category:   desc.Category,
		Parameters: g.parameters(desc, in.Params),
	}

	if desc.NeedsConnection() {
		node.Connection = g.attachConnection(desc.Service, node.ID)
	}

	g.built = append(g.built, nodeRef{node: node, desc: desc})
	return nil
}

// parameters overlays extracted params on the kind's defaults, then
// fills bound template parameters from preceding nodes.
func (g *graphState) parameters(desc registry.Descriptor, extracted map[string]any) map[string]any {
	params := make(map[string]any, len(desc.Defaults)+len(extracted))
	for k, v := range desc.Defaults {
		params[k] = v
	}
	for k, v := range extracted {
		params[k] = v
	}

	for _, param := range boundParams(desc) {
		if _, set := extracted[param]; set {
			continue
		}
		value := g.resolve(desc.Bind[param])
		if desc.Kind == "action.send-email" && param == "subject" {
			value = "Re: " + value
		}
		params[param] = value
	}

	if desc.Kind == "processing.ai-agent" {
		if _, set := params["prompt"]; !set {
			params["prompt"] = g.composePrompt()
		}
	}

	return params
}

// boundParams returns the descriptor's bound parameter names in a
// stable order: schema order is a map, so sort by name for
// deterministic output.
func boundParams(desc registry.Descriptor) []string {
	names := make([]string, 0, len(desc.Bind))
	for name := range desc.Bind {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resolve walks the capability preferences in order; for each, the
// nearest preceding node exposing it wins. When nothing resolves, the
// unresolved placeholder for the first preference is emitted so the
// validation engine can flag it.
func (g *graphState) resolve(preferences []string) string {
	for _, capability := range preferences {
		if ref, ok := g.nearest(capability); ok {
			return domain.Binding{NodeID: ref.node.ID, Capability: capability}.String()
		}
	}
	if len(preferences) == 0 {
		return ""
	}
	return domain.Unresolved(preferences[0])
}

func (g *graphState) nearest(capability string) (nodeRef, bool) {
	for i := len(g.built) - 1; i >= 0; i-- {
		if g.built[i].desc.HasCapability(capability) {
			return g.built[i], true
		}
	}
	return nodeRef{}, false
}

// composePrompt builds the AI instruction, embedding bindings for
// whatever message fields preceding nodes expose.
func (g *graphState) composePrompt() string {
	var sb strings.Builder
	sb.WriteString("You are an intelligent automation assistant. Analyze the input and determine the appropriate action.")

	fields := []struct {
		label      string
		capability string
	}{
		{"From", "from"},
		{"Subject", "subject"},
		{"Body", "body"},
		{"Payload", "payload"},
	}

	var lines []string
	for _, f := range fields {
		if ref, ok := g.nearest(f.capability); ok {
			binding := domain.Binding{NodeID: ref.node.ID, Capability: f.capability}
			lines = append(lines, f.label+": "+binding.String())
		}
	}

	if len(lines) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(strings.Join(lines, "\n"))
	}
	return sb.String()
}

// attachConnection registers the node against its service's shared
// connection, creating the connection on first use.
func (g *graphState) attachConnection(service string, nodeID int) string {
	name := connectionName(service)
	for i := range g.connections {
		if g.connections[i].Name == name {
			g.connections[i].Modules = append(g.connections[i].Modules, nodeID)
			return name
		}
	}
	g.connections = append(g.connections, domain.Connection{
		Name:    name,
		Type:    service,
		Modules: []int{nodeID},
	})
	return name
}

// connectionName derives the shared connection name from the service
// type, e.g. "google-drive" becomes "google_drive_connection".
func connectionName(service string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(service) {
		if r >= 'a' && r <= 'z' {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('_')
		}
	}
	return sb.String() + "_connection"
}

// scenarioName composes a descriptive name from the emitted kinds,
// e.g. "Gmail_AI_Database_Automation".
func scenarioName(built []nodeRef) string {
	var parts []string
	add := func(part string) {
		for _, p := range parts {
			if p == part {
				return
			}
		}
		parts = append(parts, part)
	}

	for _, ref := range built {
		switch ref.node.Kind {
		case "trigger.gmail-watch":
			add("Gmail")
		case "trigger.excel-watch":
			add("Excel")
		case "trigger.webhook":
			add("Webhook")
		case "processing.ai-agent":
			add("AI")
		case "action.mysql-query":
			add("Database")
		case "action.drive-save":
			add("Drive")
		case "action.slack-post":
			add("Slack")
		}
	}

	parts = append(parts, "Automation")
	return strings.Join(parts, "_")
}
