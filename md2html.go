package md2wiki

import (
	"bytes"
	"context"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// htmlConverter abstracts Markdown to HTML conversion.
type htmlConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// goldmarkConverter converts Markdown to an HTML body fragment using
// goldmark (pure Go). It holds two configured instances: a primary with the
// full extension set, and a reduced known-safe fallback used when the primary
// fails on a document. If the fallback also fails, the error propagates and
// the batch run aborts.
type goldmarkConverter struct {
	primary  goldmark.Markdown
	fallback goldmark.Markdown
}

// newGoldmarkConverter creates a goldmarkConverter with GFM extensions and
// syntax highlighting in the primary instance.
func newGoldmarkConverter() *goldmarkConverter {
	primary := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,         // Tables, strikethrough, autolinks, task lists
			extension.Footnote,    // [^1] footnotes
			extension.Typographer, // Smart quotes and dashes
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
				highlighting.WithFormatOptions(
					chromahtml.TabWidth(4),
					// Inline styles: pages must survive copy-paste into the
					// wiki without an external stylesheet.
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // Generate IDs for headings (anchor link targets)
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br>
			html.WithXHTML(),     // Self-closing tags
		),
	)

	// Minimal set known to be mutually compatible.
	fallback := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)

	return &goldmarkConverter{primary: primary, fallback: fallback}
}

// ToHTML converts Markdown content to an HTML body fragment, retrying once
// with the safe extension set when the full set fails. Supports context
// cancellation via goroutine + select pattern since goldmark doesn't
// natively support context.
func (c *goldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		out, err := convertWith(c.primary, content)
		if err != nil {
			out, err = convertWith(c.fallback, content)
		}
		if err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: out}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// convertWith runs one conversion attempt with a fresh heading-ID context.
func convertWith(md goldmark.Markdown, content string) (string, error) {
	var buf bytes.Buffer
	pctx := parser.NewContext(parser.WithIDs(newHeadingIDs()))
	if err := md.Convert([]byte(content), &buf, parser.WithContext(pctx)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// headingIDs generates heading IDs already in canonical single-hyphen form
// (see SlugifyHeading), so normalized link fragments and generated anchors
// agree without a separate reconciliation pass. Duplicate slugs within one
// document get numeric suffixes.
type headingIDs struct {
	used map[string]bool
}

// newHeadingIDs returns an empty per-document ID generator.
func newHeadingIDs() parser.IDs {
	return &headingIDs{used: make(map[string]bool)}
}

// Generate returns a unique canonical slug for the heading text.
func (ids *headingIDs) Generate(value []byte, _ ast.NodeKind) []byte {
	slug := SlugifyHeading(string(value))
	if slug == "" {
		slug = "heading"
	}
	if !ids.used[slug] {
		ids.used[slug] = true
		return []byte(slug)
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", slug, i)
		if !ids.used[candidate] {
			ids.used[candidate] = true
			return []byte(candidate)
		}
	}
}

// Put records an explicitly assigned ID so generated ones never collide with it.
func (ids *headingIDs) Put(value []byte) {
	ids.used[string(value)] = true
}
