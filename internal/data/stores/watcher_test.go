package stores

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitChange(t *testing.T, w *Watcher) Change {
	t.Helper()
	select {
	case c, ok := <-w.Events():
		require.True(t, ok, "events channel closed unexpectedly")
		return c
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for a change event")
		return Change{}
	}
}

func TestWatcher_reports_json_writes(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, BlocksFile), []byte("[]"), 0o644))

	change := waitChange(t, w)
	assert.Equal(t, BlocksFile, change.File)
}

func TestWatcher_debounces_bursts(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	path := filepath.Join(dir, TasksFile)
	for range 5 {
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	}

	change := waitChange(t, w)
	assert.Equal(t, TasksFile, change.File)

	// The burst collapses into one event; the channel then stays quiet.
	select {
	case c := <-w.Events():
		t.Fatalf("unexpected second event: %+v", c)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_ignores_non_json_files(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "scratch.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, BlocksFile), []byte("[]"), 0o644))

	change := waitChange(t, w)
	assert.Equal(t, BlocksFile, change.File, "the txt write must not surface")
}

func TestWatcher_Close_closes_event_channel(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.Close())

	select {
	case _, ok := <-w.Events():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("events channel not closed")
	}
}

func TestWatcher_missing_dir_is_created(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	w, err := NewWatcher(dir)

	require.NoError(t, err)
	defer func() { _ = w.Close() }()
	assert.DirExists(t, dir)
}
