package templates

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const invoiceTemplate = `---
name: invoice-archive
description: Save incoming invoices to Drive and log them
keywords: [invoice, archive]
trigger: trigger.gmail-watch
processing: processing.ai-agent
actions: [action.drive-save, action.datastore-log]
failure_handling: true
---
Archives invoice emails to a Drive folder and keeps an audit log.
`

func setupLibrary(t *testing.T) *Library {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "invoice-archive.md"), []byte(invoiceTemplate), 0o644))

	lib, err := NewLibrary(dir)
	require.NoError(t, err)
	return lib
}

func TestLibrary_Get(t *testing.T) {
	lib := setupLibrary(t)

	tpl, err := lib.Get(context.Background(), "invoice-archive")
	require.NoError(t, err)

	assert.Equal(t, "invoice-archive", tpl.Name)
	assert.Equal(t, "trigger.gmail-watch", tpl.Result.Trigger.Kind)
	require.NotNil(t, tpl.Result.Processing)
	assert.Equal(t, "processing.ai-agent", tpl.Result.Processing.Kind)
	require.Len(t, tpl.Result.Actions, 2)
	assert.Equal(t, "action.drive-save", tpl.Result.Actions[0].Kind)
	assert.True(t, tpl.Result.FailureHandling)
	assert.False(t, tpl.Result.Branching)
}

func TestLibrary_List(t *testing.T) {
	lib := setupLibrary(t)

	all, err := lib.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "invoice-archive", all[0].Name)
}

func TestLibrary_MissingTrigger(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.md"), []byte("---\nname: broken\n---\nNo trigger.\n"), 0o644))

	lib, err := NewLibrary(dir)
	require.NoError(t, err)

	_, err = lib.Get(context.Background(), "broken")
	assert.Error(t, err)
}
