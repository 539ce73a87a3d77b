// Package stores persists blocpad data as JSON files in the data directory.
// Every store follows the same contract: loads are tolerant (a missing or
// structurally malformed file degrades to the empty value, never an error
// that callers must branch on), and saves rewrite the whole file atomically.
package stores

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Data file names within the data directory.
const (
	BlocksFile    = "blocks.json"
	TasksFile     = "tasks.json"
	ShortcutsFile = "shortcuts.json"
	CountdownFile = "countdown.json"
)

// readFile returns the file contents, or nil when the file does not exist.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// writeJSON writes v to path atomically via a temp file rename.
func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
