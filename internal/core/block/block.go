// Package block holds the scratchpad block model, the ordered block store,
// and the single-active-edit session controller.
package block

import "regexp"

// IDLength is the length of generated block ids and tags.
const IDLength = 4

// Block is a single persisted note unit.
type Block struct {
	ID      string `json:"id"`
	Tag     string `json:"tag"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// legacyTitleRe matches titles that an old version auto-generated from the
// block id ("Bloque ab12"). Those are cleared on load so the placeholder
// shows instead.
var legacyTitleRe = regexp.MustCompile(`(?i)^Bloque [a-z0-9]{4}$`)

// IsLegacyTitle reports whether title matches the deprecated auto-generated
// title pattern.
func IsLegacyTitle(title string) bool {
	return legacyTitleRe.MatchString(title)
}
