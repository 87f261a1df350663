package md2wiki

import (
	"regexp"
	"strings"
)

// First ATX H1 heading line.
var titlePattern = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// ExtractTitle returns the text of the first top-level heading in the
// markdown, or fallback when the document has no H1.
func ExtractTitle(markdown, fallback string) string {
	if m := titlePattern.FindStringSubmatch(markdown); m != nil {
		return strings.TrimSpace(m[1])
	}
	return fallback
}

// PageURL builds the canonical wiki display URL for a page title.
//
// The title is percent-encoded for use as a path segment, except that spaces
// are rendered as literal '+' — the display-URL convention of the destination
// wiki, which resolves the address to the live page once it exists. The
// function is pure; no network call is ever made.
func PageURL(cfg Config, title string) string {
	slug := strings.ReplaceAll(escapeTitle(title), " ", "+")
	return cfg.WikiBaseURL + "/wiki/display/" + cfg.WikiSpace + "/" + slug
}

// escapeTitle percent-encodes a title, leaving alphanumerics and "-_.~ "
// unescaped. Spaces are kept literal so the caller can swap them for '+'.
func escapeTitle(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	for i := 0; i < len(title); i++ {
		c := title[i]
		if isUnescapedTitleByte(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0f])
	}
	return b.String()
}

const upperHex = "0123456789ABCDEF"

// isUnescapedTitleByte reports whether c passes through unescaped.
func isUnescapedTitleByte(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '~', ' ':
		return true
	}
	return false
}

// BuildPageURLMap returns the output-page-name to wiki-URL mapping for a
// whole batch of documents. It must be called once, over all documents,
// before any document is converted: cross-document links resolve against the
// entire batch, not just the file being processed.
func BuildPageURLMap(cfg Config, docs []Document) PageURLMap {
	m := make(PageURLMap, len(docs))
	for _, d := range docs {
		m[d.Name+".html"] = PageURL(cfg, d.Title)
	}
	return m
}
