// Package catalog provides the read-only symbol catalog used by the inline
// picker. The catalog ships embedded in the binary and is never mutated.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// CategoryEmojis is the category the picker filters on.
const CategoryEmojis = "Emojis"

// MaxResults caps picker results. Matches are returned in catalog order,
// there is no relevance re-ranking.
const MaxResults = 10

//go:embed symbols.yaml
var embedded []byte

// Description is a localized symbol description.
type Description struct {
	Main string `yaml:"main"`
}

// Symbol is one selectable catalog entry.
type Symbol struct {
	Symbol      string                 `yaml:"symbol"`
	Category    string                 `yaml:"category"`
	Description map[string]Description `yaml:"description"`
	Tags        map[string][]string    `yaml:"tags"`
}

// Main returns the main description for locale, falling back to English.
func (s Symbol) Main(locale string) string {
	if d, ok := s.Description[locale]; ok && d.Main != "" {
		return d.Main
	}
	return s.Description["en"].Main
}

// Shortcode returns the ":snake_case:" form of the English description,
// shown as a hint next to picker entries.
func (s Symbol) Shortcode() string {
	main := strings.ToLower(s.Description["en"].Main)
	return ":" + strings.Join(strings.Fields(main), "_") + ":"
}

// Catalog is an ordered collection of symbols.
type Catalog struct {
	symbols []Symbol
}

// Load parses the embedded symbol catalog.
func Load() (*Catalog, error) {
	return Parse(embedded)
}

// Parse builds a catalog from YAML data.
func Parse(data []byte) (*Catalog, error) {
	var doc struct {
		Symbols []Symbol `yaml:"symbols"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse symbol catalog: %w", err)
	}
	return &Catalog{symbols: doc.Symbols}, nil
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int { return len(c.symbols) }

// Filter returns, in catalog order, up to MaxResults symbols in the emoji
// category whose glyph, localized main description, or any localized tag
// contains query as a case-insensitive substring. An empty query matches
// every emoji entry.
func (c *Catalog) Filter(query string) []Symbol {
	query = strings.ToLower(query)

	var out []Symbol
	for _, s := range c.symbols {
		if s.Category != CategoryEmojis {
			continue
		}
		if !matches(s, query) {
			continue
		}
		out = append(out, s)
		if len(out) == MaxResults {
			break
		}
	}
	return out
}

func matches(s Symbol, query string) bool {
	if strings.Contains(s.Symbol, query) {
		return true
	}
	for _, d := range s.Description {
		if strings.Contains(strings.ToLower(d.Main), query) {
			return true
		}
	}
	for _, tags := range s.Tags {
		for _, t := range tags {
			if strings.Contains(strings.ToLower(t), query) {
				return true
			}
		}
	}
	return false
}
