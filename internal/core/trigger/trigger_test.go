package trigger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		caret      int
		wantOK     bool
		wantQuery  string
		wantOffset int
	}{
		{
			name:       "colon at start of text",
			text:       ":sm",
			caret:      3,
			wantOK:     true,
			wantQuery:  "sm",
			wantOffset: 0,
		},
		{
			name:       "colon after space",
			text:       "hello :sm",
			caret:      9,
			wantOK:     true,
			wantQuery:  "sm",
			wantOffset: 6,
		},
		{
			name:       "bare colon has empty query",
			text:       "note :",
			caret:      6,
			wantOK:     true,
			wantQuery:  "",
			wantOffset: 5,
		},
		{
			name:       "colon after newline",
			text:       "line\n:fi",
			caret:      8,
			wantOK:     true,
			wantQuery:  "fi",
			wantOffset: 5,
		},
		{
			name:   "colon mid-word does not trigger",
			text:   "12:30",
			caret:  5,
			wantOK: false,
		},
		{
			name:   "space after query closes the trigger",
			text:   ":sm ",
			caret:  4,
			wantOK: false,
		},
		{
			name:       "caret inside the query",
			text:       "hello :smile",
			caret:      9,
			wantOK:     true,
			wantQuery:  "sm",
			wantOffset: 6,
		},
		{
			name:   "caret before the colon",
			text:   "hello :sm",
			caret:  3,
			wantOK: false,
		},
		{
			name:       "query with allowed punctuation",
			text:       ":+1_a-b",
			caret:      7,
			wantOK:     true,
			wantQuery:  "+1_a-b",
			wantOffset: 0,
		},
		{
			name:   "disallowed character closes the trigger",
			text:   ":sm!",
			caret:  4,
			wantOK: false,
		},
		{
			name:   "empty text",
			text:   "",
			caret:  0,
			wantOK: false,
		},
		{
			name:       "caret past end is clamped",
			text:       ":a",
			caret:      99,
			wantOK:     true,
			wantQuery:  "a",
			wantOffset: 0,
		},
		{
			name:       "uppercase query matches case-insensitively",
			text:       ":SM",
			caret:      3,
			wantOK:     true,
			wantQuery:  "SM",
			wantOffset: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := Detect(tt.text, tt.caret)

			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantQuery, m.Query)
			assert.Equal(t, tt.wantOffset, m.Offset)
		})
	}
}

func TestDetect_second_colon_wins(t *testing.T) {
	// The offset tracks the colon nearest the caret, not the first one.
	text := ":a :b"
	m, ok := Detect(text, len(text))

	require.True(t, ok)
	assert.Equal(t, "b", m.Query)
	assert.Equal(t, 3, m.Offset)
}

func TestCommit(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		offset   int
		queryLen int
		symbol   string
		want     string
	}{
		{
			name:     "replaces trigger at start",
			text:     ":sm",
			offset:   0,
			queryLen: 2,
			symbol:   "😄",
			want:     "😄",
		},
		{
			name:     "replaces trigger mid-text",
			text:     "hello :sm world",
			offset:   6,
			queryLen: 2,
			symbol:   "😄",
			want:     "hello 😄 world",
		},
		{
			name:     "bare colon",
			text:     "note :",
			offset:   5,
			queryLen: 0,
			symbol:   "⭐",
			want:     "note ⭐",
		},
		{
			name:     "negative offset is a no-op",
			text:     "hello",
			offset:   -1,
			queryLen: 0,
			symbol:   "x",
			want:     "hello",
		},
		{
			name:     "offset past end is a no-op",
			text:     "hello",
			offset:   10,
			queryLen: 0,
			symbol:   "x",
			want:     "hello",
		},
		{
			name:     "no colon at offset is a no-op",
			text:     "hello",
			offset:   0,
			queryLen: 2,
			symbol:   "x",
			want:     "hello",
		},
		{
			name:     "query length clamped to text end",
			text:     ":ab",
			offset:   0,
			queryLen: 10,
			symbol:   "😄",
			want:     "😄",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Commit(tt.text, tt.offset, tt.queryLen, tt.symbol))
		})
	}
}

func TestDetect_then_Commit_round_trip(t *testing.T) {
	text := "hello :sm"
	m, ok := Detect(text, len(text))
	require.True(t, ok)

	got := Commit(text, m.Offset, len(m.Query), "😄")
	assert.Equal(t, "hello 😄", got)
}
