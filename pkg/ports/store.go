package ports

import (
	"context"

	"github.com/flowforge/flowforge/pkg/domain"
)

// ArtifactStore persists generation results (scenario plus
// diagnostics) under caller-chosen keys. Implementations back the
// serve and MCP adapters so repeated requests for the same automation
// do not regenerate it.
type ArtifactStore interface {
	// Save persists the generation under the given key, replacing any
	// previous value.
	Save(ctx context.Context, key string, generation *domain.Generation) error

	// Load retrieves the generation stored under key.
	// Returns domain.ErrArtifactNotFound if the key does not exist.
	Load(ctx context.Context, key string) (*domain.Generation, error)

	// Delete removes the generation stored under key. Deleting a
	// missing key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns the stored keys.
	List(ctx context.Context) ([]string, error)
}
