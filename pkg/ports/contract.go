package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowforge/flowforge/pkg/domain"
)

// contractGeneration builds a small but representative artifact.
func contractGeneration(name string) *domain.Generation {
	return &domain.Generation{
		Scenario: &domain.Scenario{
			Name:        name,
			Description: "contract test scenario",
			Nodes: []domain.Node{
				{
					ID: 1, Kind: "trigger.schedule", Category: domain.CategoryTrigger,
					Parameters: map[string]any{"interval": 3600, "timezone": "UTC"},
				},
			},
		},
		Diagnostics: []domain.Diagnostic{
			{Severity: domain.SeverityInfo, Code: "advisory.audit-log", Message: "scenario has no execution logging module"},
		},
	}
}

// RunArtifactStoreContract verifies that an ArtifactStore
// implementation adheres to the interface contract.
func RunArtifactStoreContract(t *testing.T, store ArtifactStore) {
	ctx := context.Background()
	key := "contract-test-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		generation := contractGeneration("Contract_Automation")

		err := store.Save(ctx, key, generation)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, "Contract_Automation", loaded.Scenario.Name)
		require.Len(t, loaded.Scenario.Nodes, 1)
		assert.Equal(t, "trigger.schedule", loaded.Scenario.Nodes[0].Kind)
		require.Len(t, loaded.Diagnostics, 1)
		assert.Equal(t, domain.SeverityInfo, loaded.Diagnostics[0].Severity)
	})

	t.Run("Save Replaces", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, contractGeneration("First_Automation")))
		require.NoError(t, store.Save(ctx, key, contractGeneration("Second_Automation")))

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "Second_Automation", loaded.Scenario.Name)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, contractGeneration("Doomed_Automation")))

		require.NoError(t, store.Delete(ctx, key), "Delete should not return error")

		_, err := store.Load(ctx, key)
		assert.ErrorIs(t, err, domain.ErrArtifactNotFound, "Load after Delete should return ErrArtifactNotFound")

		assert.NoError(t, store.Delete(ctx, key), "Delete of a missing key should not return error")
	})

	t.Run("List", func(t *testing.T) {
		id1 := key + "-1"
		id2 := key + "-2"
		require.NoError(t, store.Save(ctx, id1, contractGeneration("List_One")))
		require.NoError(t, store.Save(ctx, id2, contractGeneration("List_Two")))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		keys, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, keys, id1)
		assert.Contains(t, keys, id2)
	})
}
