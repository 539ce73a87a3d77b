package block

import (
	"errors"

	"blocpad/pkg/randid"
)

// ErrNotFound is returned when a block id does not exist in the store.
var ErrNotFound = errors.New("block not found")

// Persister receives the full ordered block list after every mutation.
type Persister interface {
	Save(blocks []Block) error
}

// Store owns the ordered block list. New blocks append to the end; display
// order is the reverse, so the most recently added block comes first.
type Store struct {
	blocks    []Block
	persister Persister

	// generate is swappable in tests to force id collisions.
	generate func(length int) string
}

// NewStore creates a store seeded with blocks. persister may be nil, in which
// case mutations are kept in memory only.
func NewStore(blocks []Block, persister Persister) *Store {
	return &Store{
		blocks:    blocks,
		persister: persister,
		generate:  randid.Generate,
	}
}

// Len returns the number of blocks.
func (s *Store) Len() int { return len(s.blocks) }

// Blocks returns the blocks in insertion order.
func (s *Store) Blocks() []Block {
	out := make([]Block, len(s.blocks))
	copy(out, s.blocks)
	return out
}

// Display returns the blocks in display order, newest first.
func (s *Store) Display() []Block {
	out := make([]Block, len(s.blocks))
	for i, b := range s.blocks {
		out[len(s.blocks)-1-i] = b
	}
	return out
}

// Get returns a block by id.
func (s *Store) Get(id string) (Block, bool) {
	for _, b := range s.blocks {
		if b.ID == id {
			return b, true
		}
	}
	return Block{}, false
}

// Add appends a new empty block with a freshly generated id and tag.
func (s *Store) Add() (Block, error) {
	b := Block{
		ID:  s.newID(),
		Tag: s.generate(IDLength),
	}
	s.blocks = append(s.blocks, b)
	return b, s.persist()
}

// SetTitle updates a block's title. Title edits apply immediately, there is
// no buffering step.
func (s *Store) SetTitle(id, title string) error {
	return s.update(id, func(b *Block) { b.Title = title })
}

// SetContent commits content to a block.
func (s *Store) SetContent(id, content string) error {
	return s.update(id, func(b *Block) { b.Content = content })
}

// Delete removes a block by id.
func (s *Store) Delete(id string) error {
	for i, b := range s.blocks {
		if b.ID == id {
			s.blocks = append(s.blocks[:i], s.blocks[i+1:]...)
			return s.persist()
		}
	}
	return ErrNotFound
}

func (s *Store) update(id string, fn func(*Block)) error {
	for i := range s.blocks {
		if s.blocks[i].ID == id {
			fn(&s.blocks[i])
			return s.persist()
		}
	}
	return ErrNotFound
}

// newID generates a block id, regenerating until it does not collide with
// any id currently in the store.
func (s *Store) newID() string {
	existing := make(map[string]struct{}, len(s.blocks))
	for _, b := range s.blocks {
		existing[b.ID] = struct{}{}
	}

	id := s.generate(IDLength)
	for {
		if _, taken := existing[id]; !taken {
			return id
		}
		id = s.generate(IDLength)
	}
}

func (s *Store) persist() error {
	if s.persister == nil {
		return nil
	}
	return s.persister.Save(s.Blocks())
}
