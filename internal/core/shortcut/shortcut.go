// Package shortcut implements the shortcut-launcher widget records.
package shortcut

import (
	"strings"

	"github.com/google/uuid"
)

// Position is the screen side a shortcut docks to.
type Position string

const (
	PositionLeft  Position = "left"
	PositionRight Position = "right"
)

// DefaultIconURL is used when a shortcut is created without an icon.
const DefaultIconURL = "https://cdn-icons-png.flaticon.com/512/1006/1006771.png"

// Shortcut is one launcher entry.
type Shortcut struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	IconURL  string   `json:"iconUrl"`
	URL      string   `json:"url"`
	Position Position `json:"position"`
}

// New creates a shortcut with normalized URLs and a fresh id.
func New(name, iconURL, url string, pos Position) Shortcut {
	if iconURL == "" {
		iconURL = DefaultIconURL
	}
	return Shortcut{
		ID:       uuid.NewString(),
		Name:     name,
		IconURL:  EnsureURL(iconURL),
		URL:      EnsureURL(url),
		Position: pos,
	}
}

// EnsureURL prefixes bare hosts with https://. Empty input stays empty.
func EnsureURL(s string) string {
	if s == "" {
		return ""
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return s
	}
	return "https://" + s
}

// Normalize fills defaults on records loaded from older versions: missing
// positions become right, missing ids are regenerated.
func Normalize(shortcuts []Shortcut) []Shortcut {
	for i := range shortcuts {
		if shortcuts[i].Position == "" {
			shortcuts[i].Position = PositionRight
		}
		if shortcuts[i].ID == "" {
			shortcuts[i].ID = uuid.NewString()
		}
	}
	return shortcuts
}
