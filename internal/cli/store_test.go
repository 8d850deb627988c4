package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talia-cli/talia/internal/app"
	"github.com/talia-cli/talia/internal/infra/jsonstore"
	"github.com/talia-cli/talia/internal/testutil"
)

// newFileContainer builds a container over a real store in a temp dir.
func newFileContainer(t *testing.T) (*app.Container, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.json")
	store := jsonstore.New(path, nil)
	c := app.NewWithDeps(store, &testutil.MockClock{NowTime: testNow}, &testutil.RecordingLogger{})
	return c, path
}

// =============================================================================
// Backup Command Tests
// =============================================================================

func TestBackupCommand_NoStoreFile(t *testing.T) {
	c, _ := newFileContainer(t)

	out, err := execute(t, newBackupCommand(c))

	require.NoError(t, err)
	assert.Contains(t, out, "No tasks found to back up")
}

func TestBackupCommand_WithTimestamp(t *testing.T) {
	c, path := newFileContainer(t)
	_, err := execute(t, newAddCommand(c), "Buy milk")
	require.NoError(t, err)

	out, err := execute(t, newBackupCommand(c))

	require.NoError(t, err)
	want := path + ".202401150930"
	assert.Contains(t, out, "Tasks backed up to: "+want)
	if _, statErr := os.Stat(want); statErr != nil {
		t.Errorf("backup file not created: %v", statErr)
	}
}

func TestBackupCommand_CustomName(t *testing.T) {
	c, path := newFileContainer(t)
	_, err := execute(t, newAddCommand(c), "Buy milk")
	require.NoError(t, err)

	out, err := execute(t, newBackupCommand(c), "--name", "before-cleanup")

	require.NoError(t, err)
	assert.Contains(t, out, path+".before-cleanup")
}

// =============================================================================
// Reset Command Tests
// =============================================================================

func TestResetCommand_BacksUpAndStartsFresh(t *testing.T) {
	c, path := newFileContainer(t)
	_, err := execute(t, newAddCommand(c), "Buy milk")
	require.NoError(t, err)

	out, err := execute(t, newResetCommand(c))

	require.NoError(t, err)
	assert.Contains(t, out, path+".todelete")
	assert.Empty(t, c.Repo.All())

	// The primary file must now hold an empty list
	fresh := jsonstore.New(path, nil)
	assert.Empty(t, fresh.Load())
}

func TestResetCommand_NoStoreFile(t *testing.T) {
	c, path := newFileContainer(t)

	out, err := execute(t, newResetCommand(c))

	require.NoError(t, err)
	assert.Contains(t, out, "No tasks found to back up")

	// Reset still persists the empty list
	if _, statErr := os.Stat(path); statErr != nil {
		t.Errorf("reset did not write a fresh store: %v", statErr)
	}
}

func TestResetCommand_SaveFailurePropagates(t *testing.T) {
	store := &testutil.MemStore{SaveErr: errors.New("disk full")}
	c := newTestContainer(store)

	_, err := execute(t, newResetCommand(c))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
