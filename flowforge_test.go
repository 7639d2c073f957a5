package flowforge

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowforge/flowforge/pkg/domain"
)

func fixedClock() func() time.Time {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func TestGenerate_Deterministic(t *testing.T) {
	gen := New(WithClock(fixedClock()))
	description := "When an email arrives in Gmail, analyze it with AI and reply"

	first, err := gen.Generate(description)
	require.NoError(t, err)
	second, err := gen.Generate(description)
	require.NoError(t, err)

	assert.Equal(t, first.Scenario, second.Scenario)
	assert.Equal(t, first.Diagnostics, second.Diagnostics)

	firstDoc, err := first.Blueprint.Marshal()
	require.NoError(t, err)
	secondDoc, err := second.Blueprint.Marshal()
	require.NoError(t, err)
	assert.Equal(t, firstDoc, secondDoc)
}

func TestGenerate_ExactlyOneTrigger(t *testing.T) {
	gen := New()
	descriptions := []string{
		"When an email arrives in Gmail, reply",
		"Every 30 minutes, insert records into the database",
		"Log something somewhere",
	}
	for _, description := range descriptions {
		result, err := gen.Generate(description)
		require.NoError(t, err, description)
		assert.Len(t, result.Scenario.Triggers(), 1, description)
		assert.Equal(t, 1, result.Scenario.Nodes[0].ID, description)
	}
}

func TestGenerate_BindingsOnlyReferenceEarlierNodes(t *testing.T) {
	gen := New()
	result, err := gen.Generate(
		"When an email arrives in Gmail, analyze it with AI, reply, and post it on Slack",
	)
	require.NoError(t, err)

	for _, node := range result.Scenario.Nodes {
		for key, value := range node.Parameters {
			text, ok := value.(string)
			if !ok {
				continue
			}
			for _, binding := range domain.ParseBindings(text) {
				assert.Less(t, binding.NodeID, node.ID,
					"node %d parameter %q references node %d", node.ID, key, binding.NodeID)
				assert.NotNil(t, result.Scenario.Node(binding.NodeID))
			}
		}
	}
}

func TestGenerate_ConnectionsSharedPerService(t *testing.T) {
	gen := New()
	result, err := gen.Generate("When an email arrives in Gmail, reply with an email")
	require.NoError(t, err)

	require.Len(t, result.Scenario.Connections, 1)
	conn := result.Scenario.Connections[0]
	assert.Equal(t, "gmail_connection", conn.Name)
	assert.Equal(t, "gmail", conn.Type)
	assert.Equal(t, []int{1, 2}, conn.Modules)

	for _, node := range result.Scenario.Nodes {
		if node.Connection != "" {
			assert.NotNil(t, result.Scenario.ConnectionByName(node.Connection))
		}
	}
}

func TestValidate_Idempotent(t *testing.T) {
	gen := New()
	result, err := gen.Generate("Every hour, delete records from the database")
	require.NoError(t, err)

	first := gen.Validate(result.Scenario)
	second := gen.Validate(result.Scenario)
	assert.Equal(t, first, second)
	assert.Equal(t, result.Diagnostics, first)
}

func TestGenerate_GmailToDrive(t *testing.T) {
	gen := New()
	result, err := gen.Generate(
		"Watch Gmail for invoices and save attachments to Google Drive",
	)
	require.NoError(t, err)

	s := result.Scenario
	require.Len(t, s.Nodes, 2)
	assert.Equal(t, "trigger.gmail-watch", s.Nodes[0].Kind)
	assert.Equal(t, "action.drive-save", s.Nodes[1].Kind)

	filter, _ := s.Nodes[0].Parameters["filter"].(string)
	assert.Contains(t, filter, "has:attachment")

	content, _ := s.Nodes[1].Parameters["content"].(string)
	assert.Equal(t, "{{1.body}}", content)
	fileName, _ := s.Nodes[1].Parameters["fileName"].(string)
	assert.Equal(t, "{{1.subject}}", fileName)

	require.Len(t, s.Connections, 2)
	assert.NotNil(t, s.ConnectionByName("gmail_connection"))
	assert.NotNil(t, s.ConnectionByName("google_drive_connection"))

	assert.False(t, domain.HasErrors(result.Diagnostics))
}

func TestGenerate_DestructiveDatabaseOperation(t *testing.T) {
	gen := New()
	result, err := gen.Generate("Delete all records in the database every week")
	require.NoError(t, err)

	var query *domain.Node
	for i := range result.Scenario.Nodes {
		if result.Scenario.Nodes[i].Kind == "action.mysql-query" {
			query = &result.Scenario.Nodes[i]
		}
	}
	require.NotNil(t, query)
	assert.Equal(t, "delete", query.Parameters["statement"])

	var flagged bool
	for _, d := range result.Diagnostics {
		if d.Code == "heuristic.destructive-operation" {
			flagged = true
			assert.Equal(t, domain.SeverityWarning, d.Severity)
			assert.Equal(t, query.ID, d.NodeID)
		}
	}
	assert.True(t, flagged, "expected a destructive-operation warning")
}

func TestGenerate_EmptyDescription(t *testing.T) {
	gen := New()

	_, err := gen.Generate("")
	assert.ErrorIs(t, err, domain.ErrEmptyDescription)

	_, err = gen.Generate("   \n\t")
	assert.ErrorIs(t, err, domain.ErrEmptyDescription)
}

func TestGenerate_BlueprintMetadata(t *testing.T) {
	gen := New(WithClock(fixedClock()))
	result, err := gen.Generate("When an email arrives in Gmail, reply")
	require.NoError(t, err)

	bp := result.Blueprint
	assert.Equal(t, fixedClock()(), bp.Metadata.GeneratedAt)
	assert.Equal(t, "flowforge/"+Version, bp.Metadata.Generator)
	assert.True(t, strings.HasSuffix(bp.Name, "Automation"))
	assert.Len(t, bp.Flow, len(result.Scenario.Nodes))
}

func TestFromTemplate(t *testing.T) {
	gen := New(WithClock(fixedClock()))

	result, err := gen.FromTemplate("gmail-customer-support")
	require.NoError(t, err)
	require.NotEmpty(t, result.Scenario.Nodes)
	assert.Equal(t, "trigger.gmail-watch", result.Scenario.Nodes[0].Kind)

	var kinds []string
	for _, n := range result.Scenario.Nodes {
		kinds = append(kinds, n.Kind)
	}
	assert.Contains(t, kinds, "router.branch")
	assert.Contains(t, kinds, "error.ignore")

	_, err = gen.FromTemplate("no-such-template")
	assert.ErrorIs(t, err, domain.ErrUnknownTemplate)
}

func TestGenerate_RouterFanOut(t *testing.T) {
	gen := New()
	result, err := gen.Generate(
		"When a webhook fires, analyze the payload, post it on Slack and keep a log in the datastore",
	)
	require.NoError(t, err)

	var router *domain.Node
	actions := 0
	for i := range result.Scenario.Nodes {
		switch result.Scenario.Nodes[i].Category {
		case domain.CategoryRouter:
			router = &result.Scenario.Nodes[i]
		case domain.CategoryAction:
			actions++
		}
	}
	require.NotNil(t, router, "multiple actions should be fanned out through a router")
	assert.Equal(t, actions, router.Parameters["routes"])
	assert.GreaterOrEqual(t, actions, 2)
}
