package stores

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blocpad/internal/core/shortcut"
)

func TestShortcutStore_Load_missing_file(t *testing.T) {
	s := NewShortcutStore(t.TempDir())

	assert.Empty(t, s.Load())
}

func TestShortcutStore_round_trip(t *testing.T) {
	s := NewShortcutStore(t.TempDir())
	in := []shortcut.Shortcut{
		shortcut.New("Mail", "", "mail.example.com", shortcut.PositionLeft),
		shortcut.New("News", "", "news.example.com", shortcut.PositionRight),
	}

	require.NoError(t, s.Save(in))

	assert.Equal(t, in, s.Load())
}

func TestShortcutStore_Load_normalizes_old_records(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ShortcutsFile), []byte(`[
		{"name":"old","url":"https://a.com"}
	]`), 0o644))

	out := NewShortcutStore(dir).Load()

	require.Len(t, out, 1)
	assert.NotEmpty(t, out[0].ID)
	assert.Equal(t, shortcut.PositionRight, out[0].Position)
}

func TestShortcutStore_Load_malformed_file(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ShortcutsFile), []byte("nope"), 0o644))

	assert.Empty(t, NewShortcutStore(dir).Load())
}
