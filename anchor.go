package md2wiki

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for anchor handling.
var (
	// Runs of two or more hyphens in an anchor slug
	multiHyphen = regexp.MustCompile(`-{2,}`)

	// Characters that never appear in a heading slug
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
)

// NormalizeAnchor collapses every run of two or more hyphens in an anchor
// slug to a single hyphen and trims leading and trailing hyphens.
//
// Source documents write table-of-contents links with GitHub-style slugs,
// which encode dashes, arrows, and slashes as multi-hyphen runs. The heading
// IDs generated on the other side of the link (see SlugifyHeading) collapse
// the same punctuation to a single hyphen. Every internal anchor fragment
// must pass through this function or cross-references silently desynchronize.
//
// The function is idempotent.
func NormalizeAnchor(anchor string) string {
	return strings.Trim(multiHyphen.ReplaceAllString(anchor, "-"), "-")
}

// SlugifyHeading converts heading text into its canonical anchor slug:
// lowercase, every run of non-alphanumeric characters replaced by a single
// hyphen, leading and trailing hyphens trimmed.
//
// The output is always in the form NormalizeAnchor produces, so generated
// heading IDs and normalized link fragments agree by construction.
func SlugifyHeading(text string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(text), "-")
	return strings.Trim(slug, "-")
}
