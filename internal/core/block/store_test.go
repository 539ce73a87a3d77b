package block

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memPersister records every Save call.
type memPersister struct {
	saves [][]Block
	err   error
}

func (p *memPersister) Save(blocks []Block) error {
	p.saves = append(p.saves, blocks)
	return p.err
}

func TestStore_Add(t *testing.T) {
	p := &memPersister{}
	s := NewStore(nil, p)

	b, err := s.Add()

	require.NoError(t, err)
	assert.Len(t, b.ID, IDLength)
	assert.Len(t, b.Tag, IDLength)
	assert.Empty(t, b.Title)
	assert.Empty(t, b.Content)
	assert.Equal(t, 1, s.Len())
	require.Len(t, p.saves, 1, "add must persist")
}

func TestStore_Add_regenerates_colliding_ids(t *testing.T) {
	s := NewStore([]Block{{ID: "aaaa"}}, nil)

	// Force the first generated id to collide with the existing block.
	calls := 0
	s.generate = func(length int) string {
		calls++
		if calls == 1 {
			return "aaaa"
		}
		return "bbbb"
	}

	b, err := s.Add()

	require.NoError(t, err)
	assert.Equal(t, "bbbb", b.ID)
}

func TestStore_Display_is_newest_first(t *testing.T) {
	s := NewStore([]Block{{ID: "old1"}, {ID: "mid2"}, {ID: "new3"}}, nil)

	display := s.Display()

	require.Len(t, display, 3)
	assert.Equal(t, "new3", display[0].ID)
	assert.Equal(t, "mid2", display[1].ID)
	assert.Equal(t, "old1", display[2].ID)
}

func TestStore_SetTitle_and_SetContent(t *testing.T) {
	p := &memPersister{}
	s := NewStore([]Block{{ID: "ab12"}}, p)

	require.NoError(t, s.SetTitle("ab12", "Groceries"))
	require.NoError(t, s.SetContent("ab12", "milk\neggs"))

	b, ok := s.Get("ab12")
	require.True(t, ok)
	assert.Equal(t, "Groceries", b.Title)
	assert.Equal(t, "milk\neggs", b.Content)
	assert.Len(t, p.saves, 2, "every mutation persists")
}

func TestStore_mutations_on_unknown_id(t *testing.T) {
	s := NewStore(nil, nil)

	assert.ErrorIs(t, s.SetTitle("none", "x"), ErrNotFound)
	assert.ErrorIs(t, s.SetContent("none", "x"), ErrNotFound)
	assert.ErrorIs(t, s.Delete("none"), ErrNotFound)
}

func TestStore_Delete(t *testing.T) {
	p := &memPersister{}
	s := NewStore([]Block{{ID: "ab12"}, {ID: "cd34"}}, p)

	require.NoError(t, s.Delete("ab12"))

	assert.Equal(t, 1, s.Len())
	_, ok := s.Get("ab12")
	assert.False(t, ok)
	require.Len(t, p.saves, 1)
	assert.Len(t, p.saves[0], 1)
}

func TestStore_persist_error_propagates(t *testing.T) {
	p := &memPersister{err: errors.New("disk full")}
	s := NewStore([]Block{{ID: "ab12"}}, p)

	assert.Error(t, s.SetContent("ab12", "x"))
}

func TestStore_Blocks_returns_a_copy(t *testing.T) {
	s := NewStore([]Block{{ID: "ab12", Title: "orig"}}, nil)

	blocks := s.Blocks()
	blocks[0].Title = "mutated"

	b, _ := s.Get("ab12")
	assert.Equal(t, "orig", b.Title)
}
