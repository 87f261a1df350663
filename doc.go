// Package md2wiki converts Markdown documents into standalone HTML pages
// suitable for pasting into a Confluence-style wiki, and validates the
// anchor links of the generated pages.
//
// # Quick Start
//
//	cfg := md2wiki.DefaultConfig()
//	cfg.WikiBaseURL = "https://example.atlassian.net"
//	cfg.WikiSpace = "DOCS"
//
//	svc, err := md2wiki.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	docs := []md2wiki.Document{svc.NewDocument("intro", "# Intro\n\nHello.")}
//	pages, err := svc.ConvertAll(ctx, docs)
//
// # Conversion Pipeline
//
// Each document passes through these stages:
//
//  1. Mermaid diagram blocks are extracted behind placeholder tokens and
//     rewritten as static image URLs on an external rendering service.
//  2. Markdown is converted to HTML via Goldmark (GFM, syntax highlighting),
//     retrying once with a reduced extension set if the full set fails.
//  3. Placeholder tokens are substituted back with image markup.
//  4. Links to .md files are retargeted at .html output pages, with anchor
//     fragments normalized to match generated heading IDs.
//  5. Remaining cross-page links are resolved against the batch-wide page
//     URL map; unresolvable targets degrade to visible emphasized text.
//  6. The body is assembled into a fixed page template with inline styling.
//
// The page URL map is fully built from all documents before any document is
// converted, so cross-document links resolve across the whole batch.
//
// # Link Checking
//
// CheckAnchors scans previously generated pages and reports every cross-page
// anchored link whose anchor is not defined in the target page:
//
//	report, err := md2wiki.CheckAnchors(os.DirFS("summary/html"))
//	report.WriteSummary(os.Stdout)
//
// The checker is a diagnostic aid: broken links are reported, never signaled
// as failures.
package md2wiki
