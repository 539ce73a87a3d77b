package stores

import (
	"encoding/json"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"blocpad/internal/core/shortcut"
)

// ShortcutStore persists the shortcut-launcher entries.
type ShortcutStore struct {
	path string
	mu   sync.Mutex
}

// NewShortcutStore creates a shortcut store rooted in dataDir.
func NewShortcutStore(dataDir string) *ShortcutStore {
	return &ShortcutStore{path: filepath.Join(dataDir, ShortcutsFile)}
}

// Load returns the stored shortcuts with legacy records normalized.
func (s *ShortcutStore) Load() []shortcut.Shortcut {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := readFile(s.path)
	if err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("read shortcuts file")
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var shortcuts []shortcut.Shortcut
	if err := json.Unmarshal(data, &shortcuts); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("malformed shortcuts file, starting empty")
		return nil
	}
	return shortcut.Normalize(shortcuts)
}

// Save overwrites the stored shortcut list.
func (s *ShortcutStore) Save(shortcuts []shortcut.Shortcut) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if shortcuts == nil {
		shortcuts = []shortcut.Shortcut{}
	}
	return writeJSON(s.path, shortcuts)
}
