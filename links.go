package md2wiki

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for link rewriting.
var (
	// href pointing at a markdown file, with an optional anchor fragment
	markdownHref = regexp.MustCompile(`href="([^"]+?)\.md(#[^"]*)?"`)

	// Anchor element with href and inner content (may span lines)
	anchorElement = regexp.MustCompile(`(?s)<a\s+href="([^"]*)"[^>]*>(.*?)</a>`)
)

// RewriteMarkdownLinks retargets every href ending in ".md" (optionally
// followed by a fragment) at the ".html" output page instead. Fragments pass
// through NormalizeAnchor so they match the generated heading IDs. Links
// without the markdown extension are left untouched.
func RewriteMarkdownLinks(html string) string {
	return markdownHref.ReplaceAllStringFunc(html, func(match string) string {
		m := markdownHref.FindStringSubmatch(match)
		path, fragment := m[1], m[2]
		if fragment != "" {
			fragment = "#" + NormalizeAnchor(fragment[1:])
		}
		return `href="` + path + `.html` + fragment + `"`
	})
}

// RewriteCrossPageLinks replaces cross-page hrefs with canonical wiki URLs.
//
//   - Same-page anchor links (href starting with "#") pass through unchanged.
//   - External links (href starting with "http") pass through unchanged.
//   - A link whose target resolves in the page URL map is retargeted at the
//     wiki URL; the anchor fragment is dropped, since the destination wiki
//     does not support cross-page deep links.
//   - A link to a page missing from the batch degrades to its visible text
//     as emphasized plain text. A broken reference must stay visible to a
//     reader, never dangle or silently disappear.
func RewriteCrossPageLinks(html string, urlMap PageURLMap) string {
	return anchorElement.ReplaceAllStringFunc(html, func(match string) string {
		m := anchorElement.FindStringSubmatch(match)
		href, inner := m[1], m[2]

		if strings.HasPrefix(href, "#") || strings.HasPrefix(href, "http") {
			return match
		}

		filename, _, _ := strings.Cut(href, "#")
		if url, ok := urlMap[filename]; ok {
			return `<a href="` + url + `">` + inner + `</a>`
		}
		return "<strong>" + inner + "</strong>"
	})
}
