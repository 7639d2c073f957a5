package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/flowforge/flowforge/pkg/domain"
)

// Store implements ports.ArtifactStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string][]byte
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string][]byte),
	}
}

// Save persists the generation in memory. The value is stored as JSON
// so callers cannot mutate stored state through shared pointers.
func (s *Store) Save(ctx context.Context, key string, generation *domain.Generation) error {
	data, err := json.Marshal(generation)
	if err != nil {
		return fmt.Errorf("failed to marshal generation: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = data
	return nil
}

// Load retrieves the generation from memory.
func (s *Store) Load(ctx context.Context, key string) (*domain.Generation, error) {
	s.mu.RLock()
	data, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrArtifactNotFound
	}

	var generation domain.Generation
	if err := json.Unmarshal(data, &generation); err != nil {
		return nil, fmt.Errorf("failed to unmarshal generation: %w", err)
	}
	return &generation, nil
}

// Delete removes the generation.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// List returns the stored keys.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for key := range s.data {
		keys = append(keys, key)
	}
	return keys, nil
}
