package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowforge/flowforge/internal/adapters/file"
	"github.com/flowforge/flowforge/pkg/domain"
	"github.com/flowforge/flowforge/pkg/ports"
)

func TestFileStore_Contract(t *testing.T) {
	ports.RunArtifactStoreContract(t, file.NewStore(t.TempDir()))
}

func TestFileStore_EmptyKey(t *testing.T) {
	store := file.NewStore(t.TempDir())
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, "", &domain.Generation{}))
	_, err := store.Load(ctx, "")
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	dir := t.TempDir()

	blueprintPath, reportPath, err := file.Export(dir, "Gmail_AI_Automation",
		[]byte(`{"name":"Gmail_AI_Automation","flow":[]}`), "# Report\n")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "Gmail_AI_Automation.blueprint.json"), blueprintPath)
	assert.Equal(t, filepath.Join(dir, "Gmail_AI_Automation.report.md"), reportPath)

	blueprint, err := os.ReadFile(blueprintPath)
	require.NoError(t, err)
	assert.Contains(t, string(blueprint), "Gmail_AI_Automation")

	report, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Equal(t, "# Report\n", string(report))
}

func TestExport_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	_, _, err := file.Export(dir, "X", []byte("{}"), "r")
	require.NoError(t, err)
}
