package graph

import (
	"fmt"
	"strings"

	"github.com/flowforge/flowforge/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart from a scenario.
// It applies semantic styling:
// - Trigger: ((Circle))
// - Router: {Diamond}
// - Error handler: [/Parallelogram/]
// - Default: [Rectangle]
// Connections are annotated on the nodes that use them.
func GenerateMermaid(s *domain.Scenario) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, node := range s.Nodes {
		id := fmt.Sprintf("n%d", node.ID)

		opener, closer := "[", "]"
		switch node.Category {
		case domain.CategoryTrigger:
			opener, closer = "((", "))"
		case domain.CategoryRouter:
			opener, closer = "{", "}"
		case domain.CategoryErrorHandler:
			opener, closer = "[/", "/]"
		}

		label := node.Kind
		if node.Connection != "" {
			label = fmt.Sprintf("%s <br/> 🔌 %s", node.Kind, node.Connection)
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, label, closer))
	}

	// Flow edges: the chain is ordered; routers fan out to every
	// following action, everything else links to its successor.
	for i := 0; i < len(s.Nodes)-1; i++ {
		from := s.Nodes[i]
		if from.Category == domain.CategoryRouter {
			for j := i + 1; j < len(s.Nodes); j++ {
				if s.Nodes[j].Category == domain.CategoryAction {
					sb.WriteString(fmt.Sprintf("    n%d -- \"route\" --> n%d\n", from.ID, s.Nodes[j].ID))
				}
			}
			continue
		}
		to := s.Nodes[i+1]
		if afterRouter(s, from) && from.Category == domain.CategoryAction && to.Category == domain.CategoryAction {
			// Route siblings; both already linked from the router.
			continue
		}
		arrow := "-->"
		if to.Category == domain.CategoryErrorHandler {
			arrow = "-.->"
		}
		sb.WriteString(fmt.Sprintf("    n%d %s n%d\n", from.ID, arrow, to.ID))
	}

	sb.WriteString("\n    classDef trigger fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
	for _, node := range s.Nodes {
		if node.Category == domain.CategoryTrigger {
			sb.WriteString(fmt.Sprintf("    class n%d trigger;\n", node.ID))
		}
	}

	return sb.String()
}

func afterRouter(s *domain.Scenario, node domain.Node) bool {
	for _, n := range s.Nodes {
		if n.Category == domain.CategoryRouter && n.ID < node.ID {
			return true
		}
	}
	return false
}
