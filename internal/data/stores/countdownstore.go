package stores

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"blocpad/internal/core/countdown"
)

// CountdownStore persists the single countdown event.
type CountdownStore struct {
	path string
	mu   sync.Mutex
}

// NewCountdownStore creates a countdown store rooted in dataDir.
func NewCountdownStore(dataDir string) *CountdownStore {
	return &CountdownStore{path: filepath.Join(dataDir, CountdownFile)}
}

// Load returns the stored event, or nil when none is set.
func (s *CountdownStore) Load() *countdown.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := readFile(s.path)
	if err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("read countdown file")
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var ev countdown.Event
	if err := json.Unmarshal(data, &ev); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("malformed countdown file, clearing")
		return nil
	}
	if ev.Name == "" || ev.Date.IsZero() {
		return nil
	}
	return &ev
}

// Save overwrites the stored event.
func (s *CountdownStore) Save(ev countdown.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(s.path, ev)
}

// Clear removes the stored event.
func (s *CountdownStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
