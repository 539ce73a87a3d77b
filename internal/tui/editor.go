package tui

import (
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"blocpad/internal/core/caret"
	"blocpad/internal/core/styles"
)

// Editor is the multi-line content editor. bubbles' textarea hides the caret
// character offset that the trigger protocol and the picker anchor need, so
// the editor keeps its own value and byte-offset caret and lays text out
// through the caret package, which is also what anchors the picker overlay.
type Editor struct {
	value  string
	caret  int // byte offset into value
	width  int
	height int
	scroll int // first visible display row

	Placeholder string
}

// tabSpaces replaces inserted tab characters.
const tabSpaces = "    "

// NewEditor creates an editor with default dimensions.
func NewEditor() Editor {
	return Editor{width: 60, height: 6}
}

// SetSize updates the content box dimensions.
func (e *Editor) SetSize(width, height int) {
	if width > 0 {
		e.width = width
	}
	if height > 0 {
		e.height = height
	}
	e.ensureVisible()
}

// Width returns the wrap width in cells.
func (e *Editor) Width() int { return e.width }

// Height returns the visible row count.
func (e *Editor) Height() int { return e.height }

// Value returns the buffer contents.
func (e *Editor) Value() string { return e.value }

// Caret returns the caret byte offset.
func (e *Editor) Caret() int { return e.caret }

// Scroll returns the first visible display row.
func (e *Editor) Scroll() int { return e.scroll }

// SetValue replaces the buffer and moves the caret to the end.
func (e *Editor) SetValue(s string) {
	e.value = s
	e.caret = len(s)
	e.scroll = 0
	e.ensureVisible()
}

// CaretPosition returns the caret's cell position relative to the visible
// content box.
func (e *Editor) CaretPosition() caret.Position {
	return caret.Resolve(e.value, e.width, e.caret, e.scroll)
}

// Update handles a key message, mutating the buffer or moving the caret.
// It returns true when the buffer content changed.
func (e *Editor) Update(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "left":
		e.moveLeft()
	case "right":
		e.moveRight()
	case "up":
		e.moveVertical(-1)
	case "down":
		e.moveVertical(1)
	case "home", "ctrl+a":
		e.moveLineStart()
	case "end", "ctrl+e":
		e.moveLineEnd()
	case "backspace":
		return e.backspace()
	case "delete", "ctrl+d":
		return e.deleteForward()
	case "ctrl+k":
		return e.killLine()
	case "alt+enter", "shift+enter", "ctrl+j":
		e.insert("\n")
		return true
	case "tab":
		e.insert("\t")
		return true
	default:
		if msg.Type == tea.KeyRunes && !msg.Alt {
			e.insert(string(msg.Runes))
			return true
		}
		if msg.Type == tea.KeySpace {
			e.insert(" ")
			return true
		}
	}
	return false
}

// Splice replaces the whole buffer and positions the caret at offset.
func (e *Editor) Splice(value string, offset int) {
	e.value = value
	if offset < 0 {
		offset = 0
	}
	if offset > len(value) {
		offset = len(value)
	}
	e.caret = offset
	e.ensureVisible()
}

func (e *Editor) insert(s string) {
	// Tabs are stored as spaces so a cell is always one byte-measurable
	// rune and the caret layout never disagrees with the rendered text.
	s = strings.ReplaceAll(s, "\t", tabSpaces)
	e.value = e.value[:e.caret] + s + e.value[e.caret:]
	e.caret += len(s)
	e.ensureVisible()
}

func (e *Editor) backspace() bool {
	if e.caret == 0 {
		return false
	}
	_, size := utf8.DecodeLastRuneInString(e.value[:e.caret])
	e.value = e.value[:e.caret-size] + e.value[e.caret:]
	e.caret -= size
	e.ensureVisible()
	return true
}

func (e *Editor) deleteForward() bool {
	if e.caret >= len(e.value) {
		return false
	}
	_, size := utf8.DecodeRuneInString(e.value[e.caret:])
	e.value = e.value[:e.caret] + e.value[e.caret+size:]
	return true
}

// killLine deletes from the caret to the end of the hard line.
func (e *Editor) killLine() bool {
	if e.caret >= len(e.value) {
		return false
	}
	end := strings.IndexByte(e.value[e.caret:], '\n')
	if end < 0 {
		e.value = e.value[:e.caret]
		return true
	}
	if end == 0 {
		end = 1 // caret on an empty line: remove the newline itself
	}
	e.value = e.value[:e.caret] + e.value[e.caret+end:]
	return true
}

func (e *Editor) moveLeft() {
	if e.caret == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(e.value[:e.caret])
	e.caret -= size
	e.ensureVisible()
}

func (e *Editor) moveRight() {
	if e.caret >= len(e.value) {
		return
	}
	_, size := utf8.DecodeRuneInString(e.value[e.caret:])
	e.caret += size
	e.ensureVisible()
}

func (e *Editor) moveVertical(delta int) {
	lines := caret.Wrap(e.value, e.width)
	pos := caret.Resolve(e.value, e.width, e.caret, 0)
	e.caret = caret.OffsetAt(lines, pos.Top+delta, pos.Left)
	e.ensureVisible()
}

func (e *Editor) moveLineStart() {
	lines := caret.Wrap(e.value, e.width)
	pos := caret.Resolve(e.value, e.width, e.caret, 0)
	e.caret = caret.OffsetAt(lines, pos.Top, 0)
}

func (e *Editor) moveLineEnd() {
	lines := caret.Wrap(e.value, e.width)
	pos := caret.Resolve(e.value, e.width, e.caret, 0)
	e.caret = caret.OffsetAt(lines, pos.Top, e.width+1)
	e.ensureVisible()
}

// ensureVisible scrolls so the caret row stays inside the content box.
func (e *Editor) ensureVisible() {
	pos := caret.Resolve(e.value, e.width, e.caret, 0)
	if pos.Top < e.scroll {
		e.scroll = pos.Top
	}
	if pos.Top >= e.scroll+e.height {
		e.scroll = pos.Top - e.height + 1
	}
}

// View renders the visible content rows with the caret cell highlighted.
func (e *Editor) View() string {
	if e.value == "" {
		lines := make([]string, e.height)
		lines[0] = styles.CursorStyle.Render(" ") + styles.PlaceholderStyle.Render(e.Placeholder)
		return strings.Join(lines, "\n")
	}

	wrapped := caret.Wrap(e.value, e.width)
	pos := caret.Resolve(e.value, e.width, e.caret, e.scroll)

	var b strings.Builder
	for row := e.scroll; row < e.scroll+e.height; row++ {
		if row > e.scroll {
			b.WriteByte('\n')
		}
		if row >= len(wrapped) {
			continue
		}

		text := wrapped[row].Text
		if row-e.scroll == pos.Top {
			b.WriteString(renderCursorLine(text, pos.Left))
			continue
		}
		b.WriteString(text)
	}
	return b.String()
}

// renderCursorLine highlights the cell at col, appending a highlighted
// space when the caret sits past the end of the row.
func renderCursorLine(text string, col int) string {
	w := 0
	for i, r := range text {
		rw := runewidth.RuneWidth(r)
		if w >= col {
			_, size := utf8.DecodeRuneInString(text[i:])
			return text[:i] + styles.CursorStyle.Render(text[i:i+size]) + text[i+size:]
		}
		w += rw
	}
	return text + styles.CursorStyle.Render(" ")
}
