package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flowforge/flowforge/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	s := &domain.Scenario{
		Name: "Gmail_AI_Automation",
		Nodes: []domain.Node{
			{ID: 1, Kind: "trigger.gmail-watch", Category: domain.CategoryTrigger, Connection: "gmail_connection"},
			{ID: 2, Kind: "processing.ai-agent", Category: domain.CategoryProcessing, Connection: "openai_connection"},
			{ID: 3, Kind: "router.branch", Category: domain.CategoryRouter},
			{ID: 4, Kind: "action.send-email", Category: domain.CategoryAction, Connection: "gmail_connection"},
			{ID: 5, Kind: "action.slack-post", Category: domain.CategoryAction, Connection: "slack_connection"},
			{ID: 6, Kind: "error.ignore", Category: domain.CategoryErrorHandler},
		},
	}

	out := GenerateMermaid(s)

	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, `n1(("trigger.gmail-watch <br/> 🔌 gmail_connection"))`)
	assert.Contains(t, out, `n3{"router.branch"}`)
	assert.Contains(t, out, `n6[/"error.ignore"/]`)

	// Router fans out to both actions.
	assert.Contains(t, out, `n3 -- "route" --> n4`)
	assert.Contains(t, out, `n3 -- "route" --> n5`)

	// Linear edges before the router.
	assert.Contains(t, out, "n1 --> n2")
	assert.Contains(t, out, "n2 --> n3")

	// Error handler hangs off with a dotted edge.
	assert.Contains(t, out, "n5 -.-> n6")

	// Trigger styling applied.
	assert.Contains(t, out, "class n1 trigger;")
}

func TestGenerateMermaid_SingleNode(t *testing.T) {
	s := &domain.Scenario{
		Nodes: []domain.Node{
			{ID: 1, Kind: "trigger.schedule", Category: domain.CategoryTrigger},
		},
	}

	out := GenerateMermaid(s)
	assert.Contains(t, out, `n1(("trigger.schedule"))`)
	assert.NotContains(t, out, "-->")
}
