package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flowforge/flowforge/pkg/domain"
)

// Store implements ports.ArtifactStore on the local filesystem.
// Each generation is one JSON file under the base path.
type Store struct {
	BasePath string
}

// NewStore creates a file store rooted at basePath.
// If basePath is empty, it defaults to ".flowforge/artifacts".
func NewStore(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".flowforge", "artifacts")
	}
	return &Store{BasePath: basePath}
}

func (f *Store) path(key string) string {
	return filepath.Join(f.BasePath, key+".json")
}

// Save persists the generation as a JSON file.
func (f *Store) Save(ctx context.Context, key string, generation *domain.Generation) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	if err := os.MkdirAll(f.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure artifact directory: %w", err)
	}

	data, err := json.MarshalIndent(generation, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal generation: %w", err)
	}

	if err := os.WriteFile(f.path(key), data, 0644); err != nil {
		return fmt.Errorf("failed to write artifact file: %w", err)
	}
	return nil
}

// Load retrieves the generation from its JSON file.
func (f *Store) Load(ctx context.Context, key string) (*domain.Generation, error) {
	if key == "" {
		return nil, fmt.Errorf("key cannot be empty")
	}

	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrArtifactNotFound
		}
		return nil, fmt.Errorf("failed to read artifact file: %w", err)
	}

	var generation domain.Generation
	if err := json.Unmarshal(data, &generation); err != nil {
		return nil, fmt.Errorf("failed to unmarshal generation: %w", err)
	}
	return &generation, nil
}

// Delete removes the artifact file.
func (f *Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	err := os.Remove(f.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete artifact file: %w", err)
	}
	return nil
}

// List returns all stored keys.
func (f *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(f.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}

	var keys []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".json" {
			keys = append(keys, strings.TrimSuffix(entry.Name(), ".json"))
		}
	}
	return keys, nil
}
