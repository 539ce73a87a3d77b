package stores

import (
	"encoding/json"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"blocpad/internal/core/block"
	"blocpad/pkg/randid"
)

// BlockStore persists the ordered block list as a single JSON array.
type BlockStore struct {
	path string
	mu   sync.Mutex
}

// NewBlockStore creates a block store rooted in dataDir.
func NewBlockStore(dataDir string) *BlockStore {
	return &BlockStore{path: filepath.Join(dataDir, BlocksFile)}
}

// Path returns the backing file path.
func (s *BlockStore) Path() string { return s.path }

// Load reads and migrates the stored block list. Any structural problem
// degrades to an empty list: persistence failures must never take the
// scratchpad down with them.
func (s *BlockStore) Load() []block.Block {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := readFile(s.path)
	if err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("read blocks file")
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	// Records are reconciled one by one rather than trusting the stored
	// shape: each is decoded independently, fields validated, defaults
	// filled. A malformed record is dropped, not fatal.
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("malformed blocks file, starting empty")
		return nil
	}

	seen := make(map[string]struct{}, len(raw))
	blocks := make([]block.Block, 0, len(raw))
	for i, msg := range raw {
		var b block.Block
		if err := json.Unmarshal(msg, &b); err != nil {
			log.Warn().Err(err).Int("index", i).Msg("dropping malformed block record")
			continue
		}

		b = migrate(b)
		for {
			if _, dup := seen[b.ID]; !dup {
				break
			}
			b.ID = randid.Generate(block.IDLength)
		}
		seen[b.ID] = struct{}{}

		blocks = append(blocks, b)
	}
	return blocks
}

// migrate reconciles a single stored record with the current schema. It is
// idempotent: running it over already-migrated data changes nothing.
func migrate(b block.Block) block.Block {
	if b.ID == "" {
		b.ID = randid.Generate(block.IDLength)
	}
	if b.Tag == "" {
		b.Tag = randid.Generate(block.IDLength)
	}
	// Titles auto-generated by an old version are cleared so the
	// tag-based placeholder shows instead.
	if block.IsLegacyTitle(b.Title) {
		b.Title = ""
	}
	return b
}

// Save overwrites the stored list with the full ordered block list.
func (s *BlockStore) Save(blocks []block.Block) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if blocks == nil {
		blocks = []block.Block{}
	}
	return writeJSON(s.path, blocks)
}
