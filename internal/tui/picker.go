package tui

import (
	"fmt"
	"strings"

	"blocpad/internal/core/catalog"
	"blocpad/internal/core/styles"
)

// Picker is the symbol dropdown shown while a trigger is active. It holds the
// filtered result list and the highlighted index; the model owns open/close.
type Picker struct {
	catalog *catalog.Catalog
	locale  string

	query   string
	results []catalog.Symbol
	index   int
}

// NewPicker creates a picker over the given catalog.
func NewPicker(cat *catalog.Catalog, locale string) Picker {
	return Picker{catalog: cat, locale: locale}
}

// SetQuery refilters the result list. The highlight resets to the first
// entry whenever the query changes.
func (p *Picker) SetQuery(query string) {
	if query == p.query && p.results != nil {
		return
	}
	p.query = query
	p.results = p.catalog.Filter(query)
	p.index = 0
}

// Reset drops the result list and query.
func (p *Picker) Reset() {
	p.query = ""
	p.results = nil
	p.index = 0
}

// Empty reports whether the current query matched nothing.
func (p *Picker) Empty() bool { return len(p.results) == 0 }

// Len returns the number of visible results.
func (p *Picker) Len() int { return len(p.results) }

// Index returns the highlighted index.
func (p *Picker) Index() int { return p.index }

// Next advances the highlight, wrapping past the last entry.
func (p *Picker) Next() {
	if len(p.results) == 0 {
		return
	}
	p.index = (p.index + 1) % len(p.results)
}

// Prev moves the highlight back, wrapping before the first entry.
func (p *Picker) Prev() {
	if len(p.results) == 0 {
		return
	}
	p.index = (p.index - 1 + len(p.results)) % len(p.results)
}

// Selected returns the highlighted symbol.
func (p *Picker) Selected() (catalog.Symbol, bool) {
	if len(p.results) == 0 {
		return catalog.Symbol{}, false
	}
	return p.results[p.index], true
}

// View renders the dropdown rows. width bounds the description column so the
// dropdown never overflows the content box it is anchored to. The caller
// never renders an empty result list; a zero-match picker shows nothing.
func (p *Picker) View(width int) string {
	var b strings.Builder
	for i, sym := range p.results {
		if i > 0 {
			b.WriteByte('\n')
		}
		row := fmt.Sprintf("%s %s", sym.Symbol, sym.Main(p.locale))
		hint := styles.PickerHintStyle.Render(sym.Shortcode())
		line := truncate(row, width-lineWidth(hint)-3) + " " + hint
		if i == p.index {
			b.WriteString(styles.PickerSelectedStyle.Render(line))
			continue
		}
		b.WriteString(styles.PickerItemStyle.Render(line))
	}
	return styles.PickerStyle.Render(b.String())
}
