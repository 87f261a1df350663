package md2wiki

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
)

// Fenced mermaid block, matched non-greedily across lines.
var mermaidFence = regexp.MustCompile("(?s)```mermaid\n(.*?)```")

// DiagramPlaceholder pairs a synthetic token with the rendered-image markup
// that replaces it after markdown conversion.
type DiagramPlaceholder struct {
	Token string
	HTML  string
}

// ExtractDiagrams replaces every fenced mermaid block with a unique
// placeholder token and returns the processed markdown together with the
// ordered placeholder table. Extraction must run strictly before the markdown
// parser, so diagram source is never tokenized as code.
//
// Each diagram is rendered as a static image by an external service; the
// trimmed diagram source is base64url-encoded into the image URL. The URL is
// embedded in output only, never fetched.
func ExtractDiagrams(markdown string, cfg Config) (string, []DiagramPlaceholder) {
	var placeholders []DiagramPlaceholder

	processed := mermaidFence.ReplaceAllStringFunc(markdown, func(block string) string {
		source := strings.TrimSpace(mermaidFence.FindStringSubmatch(block)[1])
		token := fmt.Sprintf("MERMAID_PLACEHOLDER_%d_END", len(placeholders))
		img := fmt.Sprintf(`<img class="mermaid-img" src="%s" alt="Mermaid diagram" />`, diagramImageURL(source, cfg))
		placeholders = append(placeholders, DiagramPlaceholder{Token: token, HTML: img})
		return token
	})

	return processed, placeholders
}

// ReinsertDiagrams substitutes placeholder tokens back with their image
// markup. Runs strictly after markdown conversion, so the parser never sees
// raw image markup. The markdown converter may have wrapped a bare token in a
// paragraph; that wrapper is stripped.
func ReinsertDiagrams(html string, placeholders []DiagramPlaceholder) string {
	for _, p := range placeholders {
		html = strings.ReplaceAll(html, "<p>"+p.Token+"</p>", p.HTML)
		html = strings.ReplaceAll(html, p.Token, p.HTML)
	}
	return html
}

// diagramImageURL builds the external rendering service URL for a diagram.
func diagramImageURL(source string, cfg Config) string {
	encoded := base64.URLEncoding.EncodeToString([]byte(source))
	return cfg.DiagramServiceURL + encoded + "?theme=" + cfg.DiagramTheme
}
