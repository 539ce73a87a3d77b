package caret

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineTexts(lines []Line) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.Text)
	}
	return out
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{
			name:  "empty text yields one empty row",
			text:  "",
			width: 10,
			want:  []string{""},
		},
		{
			name:  "short line stays whole",
			text:  "hello",
			width: 10,
			want:  []string{"hello"},
		},
		{
			name:  "hard break on newline",
			text:  "one\ntwo",
			width: 10,
			want:  []string{"one", "two"},
		},
		{
			name:  "trailing newline yields trailing empty row",
			text:  "one\n",
			width: 10,
			want:  []string{"one", ""},
		},
		{
			name:  "blank line between paragraphs",
			text:  "a\n\nb",
			width: 10,
			want:  []string{"a", "", "b"},
		},
		{
			name:  "soft wrap at word boundary",
			text:  "hello world",
			width: 6,
			want:  []string{"hello ", "world"},
		},
		{
			name:  "word wider than a row breaks mid-word",
			text:  "abcdefgh",
			width: 3,
			want:  []string{"abc", "def", "gh"},
		},
		{
			name:  "wrapped word moves down whole",
			text:  "aa bbbb",
			width: 4,
			want:  []string{"aa ", "bbbb"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, tt.width)

			assert.Equal(t, tt.want, lineTexts(got))
		})
	}
}

func TestWrap_line_starts_cover_text(t *testing.T) {
	text := "the quick brown fox\njumps over\n\nthe lazy dog"
	lines := Wrap(text, 8)

	require.NotEmpty(t, lines)
	assert.Equal(t, 0, lines[0].Start)
	for i := 1; i < len(lines); i++ {
		assert.GreaterOrEqual(t, lines[i].Start, lines[i-1].End(),
			"row %d starts before the previous row ended", i)
	}
}

func TestWrap_double_width_runes(t *testing.T) {
	// Each CJK rune occupies two cells, so only two fit a width-5 row.
	lines := Wrap("日本語訳", 5)

	assert.Equal(t, []string{"日本", "語訳"}, lineTexts(lines))
	assert.Equal(t, 4, lines[0].Width())
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		offset   int
		wantTop  int
		wantLeft int
	}{
		{"start of text", "hello", 10, 0, 0, 0},
		{"middle of line", "hello", 10, 3, 0, 3},
		{"end of text", "hello", 10, 5, 0, 5},
		{"after newline", "one\ntwo", 10, 4, 1, 0},
		{"on empty trailing line", "one\n", 10, 4, 1, 0},
		{"wrapped to second row", "hello world", 6, 8, 1, 2},
		{"end of soft-wrapped row belongs to next row", "hello world", 6, 6, 1, 0},
		{"double-width runes count two cells", "日本語", 10, 6, 0, 4},
		{"negative offset clamps to start", "hello", 10, -3, 0, 0},
		{"offset past end clamps to end", "hello", 10, 99, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := Resolve(tt.text, tt.width, tt.offset, 0)

			assert.Equal(t, tt.wantTop, pos.Top, "top")
			assert.Equal(t, tt.wantLeft, pos.Left, "left")
			assert.Equal(t, DefaultLineHeight, pos.LineHeight)
		})
	}
}

func TestResolve_subtracts_scroll(t *testing.T) {
	text := strings.Repeat("line\n", 10)

	pos := Resolve(text, 10, len("line\n")*7, 5)

	assert.Equal(t, 2, pos.Top)
	assert.Equal(t, 0, pos.Left)
}

func TestOffsetAt(t *testing.T) {
	lines := Wrap("hello world\nsecond", 6) // rows: "hello ", "world", "second"

	tests := []struct {
		name string
		row  int
		col  int
		want int
	}{
		{"origin", 0, 0, 0},
		{"middle of first row", 0, 3, 3},
		{"start of wrapped row", 1, 0, 6},
		{"column past row end clamps to row end", 1, 99, 11},
		{"row below layout clamps to last row", 99, 2, 14},
		{"negative row clamps to first row", -1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OffsetAt(lines, tt.row, tt.col))
		})
	}
}

func TestOffsetAt_inverts_Resolve(t *testing.T) {
	text := "the quick brown fox jumps\nover the lazy dog"
	width := 8
	lines := Wrap(text, width)

	for offset := 0; offset <= len(text); offset++ {
		pos := Resolve(text, width, offset, 0)
		back := OffsetAt(lines, pos.Top, pos.Left)

		assert.Equal(t, offset, back, "offset %d did not round-trip", offset)
	}
}

func TestOffsetAt_double_width_runes(t *testing.T) {
	lines := Wrap("日本語", 10)

	assert.Equal(t, 3, OffsetAt(lines, 0, 2))
	// Column 3 falls inside the second rune's cells; snap past it.
	assert.Equal(t, 6, OffsetAt(lines, 0, 3))
	assert.Equal(t, 6, OffsetAt(lines, 0, 4))
}
