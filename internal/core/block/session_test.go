package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionStore() *Store {
	return NewStore([]Block{
		{ID: "ab12", Content: "first"},
		{ID: "cd34", Content: "second"},
	}, nil)
}

func TestController_starts_viewing(t *testing.T) {
	c := NewController(sessionStore())

	_, editing := c.Editing()
	assert.False(t, editing)

	_, _, ok := c.Trigger()
	assert.False(t, ok)
}

func TestController_Begin_loads_content(t *testing.T) {
	c := NewController(sessionStore())

	require.NoError(t, c.Begin("ab12"))

	id, editing := c.Editing()
	assert.True(t, editing)
	assert.Equal(t, "ab12", id)
	assert.Equal(t, "first", c.Buffer())
}

func TestController_Begin_unknown_id(t *testing.T) {
	c := NewController(sessionStore())

	assert.ErrorIs(t, c.Begin("none"), ErrNotFound)
}

func TestController_Begin_same_block_keeps_buffer(t *testing.T) {
	c := NewController(sessionStore())
	require.NoError(t, c.Begin("ab12"))
	c.SetBuffer("typed but uncommitted")

	require.NoError(t, c.Begin("ab12"))

	assert.Equal(t, "typed but uncommitted", c.Buffer())
}

func TestController_Begin_commits_previous_block_first(t *testing.T) {
	s := sessionStore()
	c := NewController(s)
	require.NoError(t, c.Begin("ab12"))
	c.SetBuffer("edited first")

	require.NoError(t, c.Begin("cd34"))

	b, _ := s.Get("ab12")
	assert.Equal(t, "edited first", b.Content, "switching blocks must not lose the buffer")
	assert.Equal(t, "second", c.Buffer())
}

func TestController_Commit_while_viewing_is_noop(t *testing.T) {
	s := sessionStore()
	c := NewController(s)

	require.NoError(t, c.Commit())

	b, _ := s.Get("ab12")
	assert.Equal(t, "first", b.Content)
}

func TestController_End_commits_and_returns_to_viewing(t *testing.T) {
	s := sessionStore()
	c := NewController(s)
	require.NoError(t, c.Begin("ab12"))
	c.SetBuffer("final text")

	require.NoError(t, c.End())

	b, _ := s.Get("ab12")
	assert.Equal(t, "final text", b.Content)
	_, editing := c.Editing()
	assert.False(t, editing)
	assert.Empty(t, c.Buffer())
}

func TestController_trigger_state(t *testing.T) {
	c := NewController(sessionStore())
	require.NoError(t, c.Begin("ab12"))

	c.SetTrigger(6, "sm")

	idx, query, ok := c.Trigger()
	require.True(t, ok)
	assert.Equal(t, 6, idx)
	assert.Equal(t, "sm", query)

	c.ClearTrigger()
	_, _, ok = c.Trigger()
	assert.False(t, ok)
}

func TestController_Begin_clears_trigger(t *testing.T) {
	c := NewController(sessionStore())
	require.NoError(t, c.Begin("ab12"))
	c.SetTrigger(0, "x")

	require.NoError(t, c.Begin("cd34"))

	_, _, ok := c.Trigger()
	assert.False(t, ok, "trigger state belongs to a single edit session")
}

func TestController_End_clears_trigger(t *testing.T) {
	c := NewController(sessionStore())
	require.NoError(t, c.Begin("ab12"))
	c.SetTrigger(0, "x")

	require.NoError(t, c.End())

	_, _, ok := c.Trigger()
	assert.False(t, ok)
}
