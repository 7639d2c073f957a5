package memory_test

import (
	"testing"

	"github.com/flowforge/flowforge/internal/adapters/memory"
	"github.com/flowforge/flowforge/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunArtifactStoreContract(t, memory.NewStore())
}
