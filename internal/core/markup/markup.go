// Package markup turns raw block text into display-ready markup. Exactly
// three constructs are supported: URLs, *bold* and _italic_. Escaping runs
// before any substitution so user text can never inject markup, and link
// detection runs before emphasis so URLs are never corrupted by emphasis
// markers in or around them.
package markup

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	urlRe    = regexp.MustCompile(`((https?://|www\.)[\w\-.:/?#@!$&'()*+,;=%~]+)`)
	boldRe   = regexp.MustCompile(`\*([^*]+)\*`)
	italicRe = regexp.MustCompile(`_([^_]+)_`)
)

// escaper rewrites the three HTML metacharacters. "&" is listed first so
// entities are not double-escaped.
var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Renderer produces one output flavor of the pipeline. HTML and Term are the
// two built-in renderers.
type Renderer struct {
	escape bool
	link   func(href, text string) string
	bold   func(text string) string
	italic func(text string) string
}

// HTML renders text as sanitized HTML.
func HTML(text string) string {
	return htmlRenderer.Render(text)
}

var htmlRenderer = Renderer{
	escape: true,
	link: func(href, text string) string {
		return fmt.Sprintf(`<a href=%q target="_blank" rel="noopener noreferrer">%s</a>`, href, text)
	},
	bold:   func(text string) string { return "<strong>" + text + "</strong>" },
	italic: func(text string) string { return "<em>" + text + "</em>" },
}

// NewTermRenderer builds a renderer that emits terminal escape sequences via
// the given style functions. Escaping is skipped: the output is not markup.
func NewTermRenderer(link, bold, italic func(string) string) Renderer {
	return Renderer{
		link:   func(_, text string) string { return link(text) },
		bold:   bold,
		italic: italic,
	}
}

// Render runs the pipeline: escape, linkify, bold, italic. Empty input
// renders to empty output.
func (r Renderer) Render(text string) string {
	if text == "" {
		return ""
	}

	out := text
	if r.escape {
		out = escaper.Replace(out)
	}

	// Links are replaced by placeholders while emphasis runs, so emphasis
	// markers inside a rendered link (underscores in attributes or in the
	// URL text) cannot pair with markers in the surrounding text.
	var links []string
	out = urlRe.ReplaceAllStringFunc(out, func(m string) string {
		m, rest := trimTrailingEmphasis(m)

		href := m
		if !strings.HasPrefix(m, "http") {
			href = "https://" + m
		}

		links = append(links, r.link(href, m))
		return placeholder(len(links)-1) + rest
	})

	out = boldRe.ReplaceAllStringFunc(out, func(m string) string {
		return r.bold(m[1 : len(m)-1])
	})
	out = italicRe.ReplaceAllStringFunc(out, func(m string) string {
		return r.italic(m[1 : len(m)-1])
	})

	for i, l := range links {
		out = strings.Replace(out, placeholder(i), l, 1)
	}
	return out
}

// trimTrailingEmphasis splits trailing emphasis markers off a URL match so
// "_see www.example.com_" italicizes instead of linking a trailing
// underscore.
func trimTrailingEmphasis(m string) (url, rest string) {
	cut := len(m)
	for cut > 0 && (m[cut-1] == '_' || m[cut-1] == '*') {
		cut--
	}
	return m[:cut], m[cut:]
}

// placeholder returns a marker that cannot occur in user text and contains
// no emphasis characters.
func placeholder(i int) string {
	return fmt.Sprintf("\x00%d\x00", i)
}
