package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	if t == tea.KeySpace {
		// bubbletea delivers space keypresses with Runes populated.
		return tea.KeyMsg{Type: t, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: t}
}

func TestEditor_typing_inserts_at_caret(t *testing.T) {
	e := NewEditor()

	changed := e.Update(keyRunes("he"))
	assert.True(t, changed)
	e.Update(keyRunes("y"))
	e.Update(keyMsg(tea.KeySpace))
	e.Update(keyRunes("you"))

	assert.Equal(t, "hey you", e.Value())
	assert.Equal(t, len("hey you"), e.Caret())
}

func TestEditor_insert_mid_buffer(t *testing.T) {
	e := NewEditor()
	e.SetValue("ab")
	e.Update(keyMsg(tea.KeyLeft))

	e.Update(keyRunes("X"))

	assert.Equal(t, "aXb", e.Value())
	assert.Equal(t, 2, e.Caret())
}

func TestEditor_backspace(t *testing.T) {
	e := NewEditor()
	e.SetValue("hi")

	assert.True(t, e.Update(keyMsg(tea.KeyBackspace)))
	assert.Equal(t, "h", e.Value())

	e.Update(keyMsg(tea.KeyBackspace))
	assert.False(t, e.Update(keyMsg(tea.KeyBackspace)), "backspace at start is a no-op")
	assert.Empty(t, e.Value())
}

func TestEditor_backspace_removes_whole_rune(t *testing.T) {
	e := NewEditor()
	e.SetValue("a😄")

	e.Update(keyMsg(tea.KeyBackspace))

	assert.Equal(t, "a", e.Value())
	assert.Equal(t, 1, e.Caret())
}

func TestEditor_delete_forward(t *testing.T) {
	e := NewEditor()
	e.SetValue("abc")
	e.Update(keyMsg(tea.KeyHome))

	assert.True(t, e.Update(keyMsg(tea.KeyDelete)))
	assert.Equal(t, "bc", e.Value())
	assert.Equal(t, 0, e.Caret())

	e.SetValue("x")
	assert.False(t, e.Update(keyMsg(tea.KeyDelete)), "delete at end is a no-op")
}

func TestEditor_arrow_movement_over_multibyte(t *testing.T) {
	e := NewEditor()
	e.SetValue("a日b")

	e.Update(keyMsg(tea.KeyLeft))
	e.Update(keyMsg(tea.KeyLeft))
	assert.Equal(t, 1, e.Caret(), "left steps over the full rune")

	e.Update(keyMsg(tea.KeyRight))
	assert.Equal(t, 1+len("日"), e.Caret())
}

func TestEditor_home_and_end(t *testing.T) {
	e := NewEditor()
	e.SetValue("first\nsecond")

	e.Update(keyMsg(tea.KeyHome))
	assert.Equal(t, len("first\n"), e.Caret())

	e.Update(keyMsg(tea.KeyEnd))
	assert.Equal(t, len("first\nsecond"), e.Caret())
}

func TestEditor_vertical_movement(t *testing.T) {
	e := NewEditor()
	e.SetValue("aaa\nbbbbb")

	e.Update(keyMsg(tea.KeyUp))
	assert.Equal(t, 3, e.Caret(), "up clamps to the shorter row's end")

	e.Update(keyMsg(tea.KeyDown))
	assert.Equal(t, len("aaa\nbbb"), e.Caret(), "down keeps the column")
}

func TestEditor_kill_line(t *testing.T) {
	tests := []struct {
		name  string
		value string
		caret int
		want  string
	}{
		{name: "to end of buffer", value: "hello", caret: 2, want: "he"},
		{name: "keeps trailing lines", value: "one\ntwo", caret: 1, want: "o\ntwo"},
		{name: "empty line removes newline", value: "a\n\nb", caret: 2, want: "a\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEditor()
			e.Splice(tt.value, tt.caret)

			assert.True(t, e.Update(keyMsg(tea.KeyCtrlK)))
			assert.Equal(t, tt.want, e.Value())
		})
	}
}

func TestEditor_newline_keys(t *testing.T) {
	e := NewEditor()
	e.SetValue("a")

	assert.True(t, e.Update(keyMsg(tea.KeyCtrlJ)))

	assert.Equal(t, "a\n", e.Value())
}

func TestEditor_tab_inserts_spaces(t *testing.T) {
	e := NewEditor()
	e.SetValue("a")

	assert.True(t, e.Update(keyMsg(tea.KeyTab)))

	assert.Equal(t, "a"+tabSpaces, e.Value())
	assert.Equal(t, 1+len(tabSpaces), e.Caret())
	assert.Equal(t, 1+len(tabSpaces), e.CaretPosition().Left, "every cell is caret-addressable")
}

func TestEditor_pasted_tabs_are_normalized(t *testing.T) {
	e := NewEditor()

	e.Update(keyRunes("a\tb"))

	assert.Equal(t, "a"+tabSpaces+"b", e.Value())
}

func TestEditor_Splice_clamps_offset(t *testing.T) {
	e := NewEditor()

	e.Splice("short", 99)
	assert.Equal(t, len("short"), e.Caret())

	e.Splice("short", -1)
	assert.Equal(t, 0, e.Caret())
}

func TestEditor_SetValue_moves_caret_to_end(t *testing.T) {
	e := NewEditor()
	e.SetValue("loaded")

	assert.Equal(t, len("loaded"), e.Caret())
}

func TestEditor_scroll_follows_caret(t *testing.T) {
	e := NewEditor()
	e.SetSize(10, 2)
	e.SetValue("a\nb\nc\nd\ne")

	assert.Equal(t, 3, e.Scroll(), "caret on last row, box shows the last two")

	for range 4 {
		e.Update(keyMsg(tea.KeyUp))
	}
	assert.Equal(t, 0, e.Scroll())
}

func TestEditor_View_shows_placeholder_when_empty(t *testing.T) {
	e := NewEditor()
	e.Placeholder = "start typing"

	assert.Contains(t, e.View(), "start typing")
}

func TestEditor_View_renders_visible_rows(t *testing.T) {
	e := NewEditor()
	e.SetSize(10, 2)
	e.SetValue("one\ntwo\nthree")

	view := e.View()

	assert.NotContains(t, view, "one", "scrolled off")
	assert.Contains(t, view, "two")
	assert.Contains(t, view, "three")
}
