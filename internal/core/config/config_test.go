package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_missing_file_returns_defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "/data")

	require.NoError(t, err)
	assert.Equal(t, "tokyo-night", cfg.Theme)
	assert.Equal(t, LocaleEN, cfg.Locale)
	assert.Equal(t, "/data", cfg.DataDir)
	assert.True(t, cfg.UI.TasksVisible())
	assert.True(t, cfg.UI.CountdownVisible())
}

func TestLoad_reads_file(t *testing.T) {
	path := writeConfig(t, `
theme: gruvbox
locale: es
ui:
  show_tasks: false
`)

	cfg, err := Load(path, "/data")

	require.NoError(t, err)
	assert.Equal(t, "gruvbox", cfg.Theme)
	assert.Equal(t, LocaleES, cfg.Locale)
	assert.False(t, cfg.UI.TasksVisible())
	assert.True(t, cfg.UI.CountdownVisible(), "unset widget stays visible")
}

func TestLoad_partial_file_fills_defaults(t *testing.T) {
	path := writeConfig(t, `theme: gruvbox`)

	cfg, err := Load(path, "/data")

	require.NoError(t, err)
	assert.Equal(t, "gruvbox", cfg.Theme)
	assert.Equal(t, LocaleEN, cfg.Locale)
}

func TestLoad_invalid_yaml(t *testing.T) {
	path := writeConfig(t, "theme: [unclosed")

	_, err := Load(path, "/data")

	assert.ErrorContains(t, err, "parse config file")
}

func TestLoad_validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown theme", "theme: neon-dreams", "theme"},
		{"unknown locale", "locale: de", "locale"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)

			_, err := Load(path, "/data")

			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoad_empty_data_dir_is_invalid(t *testing.T) {
	_, err := Load("", "")

	require.Error(t, err)
	assert.ErrorContains(t, err, "data_dir")
}
