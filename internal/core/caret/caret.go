// Package caret computes cell coordinates for character offsets inside a
// soft-wrapped text editor. It lays the full text out the same way the
// editor displays it (a shadow layout, never rendered) and locates the
// offset within that layout, so a floating overlay can be anchored at the
// caret even across wrapped lines, double-width runes, and scrolled content.
package caret

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultLineHeight is the fallback row height in cells.
const DefaultLineHeight = 1

// defaultWidth is used when the caller passes a non-positive wrap width.
const defaultWidth = 80

// Position is the location of a character offset, relative to the editor's
// visible content box.
type Position struct {
	Top        int
	Left       int
	LineHeight int
}

// Line is one display row of the shadow layout. Start is the byte offset of
// the row's first character in the original text.
type Line struct {
	Text  string
	Start int
	// hard marks rows terminated by a newline rather than a soft wrap.
	hard bool
}

// End returns the byte offset just past the row's last character.
func (l Line) End() int { return l.Start + len(l.Text) }

// Width returns the row's display width in cells.
func (l Line) Width() int { return runewidth.StringWidth(l.Text) }

// Wrap lays text out at the given cell width: hard breaks on newlines, soft
// breaks at word boundaries, and mid-word breaks for words wider than a
// whole row. A trailing newline yields a trailing empty row, so a caret on
// an empty last line still has a measurable position.
func Wrap(text string, width int) []Line {
	if width <= 0 {
		width = defaultWidth
	}

	var lines []Line
	start := 0
	for {
		nl := strings.IndexByte(text[start:], '\n')
		if nl < 0 {
			lines = append(lines, wrapParagraph(text[start:], start, width, true)...)
			return lines
		}
		lines = append(lines, wrapParagraph(text[start:start+nl], start, width, false)...)
		start += nl + 1
	}
}

// wrapParagraph soft-wraps a single newline-free paragraph.
func wrapParagraph(par string, start, width int, last bool) []Line {
	hard := !last

	if par == "" {
		return []Line{{Start: start, hard: hard}}
	}

	var (
		lines    []Line
		rowStart = 0
		rowWidth = 0
		// Byte offset just past the last space in the current row, or -1.
		breakAt = -1
	)

	emit := func(end int, h bool) {
		lines = append(lines, Line{Text: par[rowStart:end], Start: start + rowStart, hard: h})
	}

	for i, r := range par {
		w := runewidth.RuneWidth(r)
		if rowWidth+w > width && rowWidth > 0 {
			if breakAt > rowStart {
				// Break after the last space; the word in progress moves
				// down whole.
				emit(breakAt, false)
				rowStart = breakAt
			} else {
				// No space on this row: break mid-word.
				emit(i, false)
				rowStart = i
			}
			rowWidth = runewidth.StringWidth(par[rowStart:i])
			breakAt = -1
		}

		rowWidth += w
		if r == ' ' {
			breakAt = i + 1
		}
	}

	emit(len(par), hard)
	return lines
}

// Resolve returns the position of the byte offset within text laid out at
// the given width, with scrollTop rows scrolled out of view subtracted. The
// result is best-effort: offsets are clamped into the text bounds.
func Resolve(text string, width, offset, scrollTop int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}

	lines := Wrap(text, width)
	row, col := locate(lines, offset)

	return Position{
		Top:        row - scrollTop,
		Left:       col,
		LineHeight: DefaultLineHeight,
	}
}

// locate finds the display row and cell column of a byte offset within a
// shadow layout.
func locate(lines []Line, offset int) (row, col int) {
	for i, l := range lines {
		if offset > l.End() {
			continue
		}
		// An offset at the end of a soft-wrapped row belongs to the start
		// of the next row: the character following it is displayed there.
		if offset == l.End() && !l.hard && i+1 < len(lines) {
			return i + 1, 0
		}
		return i, runewidth.StringWidth(l.Text[:offset-l.Start])
	}

	last := len(lines) - 1
	return last, lines[last].Width()
}

// OffsetAt returns the byte offset of the cell at (row, col) in the layout,
// clamping to the row's last position. It is the inverse of Resolve, used
// for vertical caret movement.
func OffsetAt(lines []Line, row, col int) int {
	if len(lines) == 0 {
		return 0
	}
	if row < 0 {
		row = 0
	}
	if row >= len(lines) {
		row = len(lines) - 1
	}

	l := lines[row]
	w := 0
	for i, r := range l.Text {
		if w >= col {
			return l.Start + i
		}
		w += runewidth.RuneWidth(r)
	}
	return l.End()
}
