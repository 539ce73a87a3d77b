// Package trigger detects the inline ":query" pattern that opens the symbol
// picker, and splices a chosen symbol back into the text. Both operations are
// pure functions over the buffer so they can be tested without a UI.
package trigger

import (
	"regexp"
	"strings"
)

// pattern matches a colon at the start of the text or after whitespace,
// followed by query characters, anchored at the caret.
var pattern = regexp.MustCompile(`(?i)(?:^|\s)(:[a-z0-9_+-]*)$`)

// Match is the result of scanning the text before the caret.
type Match struct {
	// Query is the text typed after the trigger colon.
	Query string
	// Offset is the byte index of the trigger colon in the full text.
	Offset int
}

// Detect scans text[:caret] for an open trigger. It returns the match and
// true when the picker should open, or false when it should close. caret is
// clamped to the text bounds.
func Detect(text string, caret int) (Match, bool) {
	if caret < 0 {
		caret = 0
	}
	if caret > len(text) {
		caret = len(text)
	}

	before := text[:caret]
	m := pattern.FindStringSubmatch(before)
	if m == nil {
		return Match{}, false
	}

	return Match{
		Query:  m[1][1:],
		Offset: strings.LastIndex(before, ":"),
	}, true
}

// Commit replaces the trigger span in text with the chosen symbol: everything
// from the trigger colon through the typed query is removed and the symbol
// substituted in place. queryLen is the byte length of the query at the time
// the symbol was chosen.
func Commit(text string, offset int, queryLen int, symbol string) string {
	if offset < 0 || offset >= len(text) {
		return text
	}

	before := text[:offset]

	colon := strings.Index(text[offset:], ":")
	if colon < 0 {
		return text
	}
	end := offset + colon + 1 + queryLen
	if end > len(text) {
		end = len(text)
	}

	return before + symbol + text[end:]
}
