package md2wiki

import (
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// LinkRecord is one cross-page anchored link extracted from an output page.
// Same-page anchor links are not recorded: they are never rewritten during
// conversion and are assumed correct by construction.
type LinkRecord struct {
	Source string // page the link appears in
	Target string // page the link points at
	Anchor string // fragment after '#'
}

// BrokenLink is a LinkRecord whose anchor does not resolve in the target
// page, with nearby anchor suggestions to aid manual triage.
type BrokenLink struct {
	LinkRecord
	Nearby []string // target's anchors sharing the broken anchor's leading token, max 3
}

// CheckReport summarizes anchored-link validation over a set of pages.
// Broken links are data to report, not failures to signal.
type CheckReport struct {
	Total  int
	OK     []LinkRecord
	Broken []BrokenLink
}

// AnchorIndex maps a page name to the set of anchor IDs it defines.
type AnchorIndex map[string]map[string]struct{}

// maxNearbySuggestions caps the diagnostic listing per broken link.
const maxNearbySuggestions = 3

// CheckAnchors validates every cross-page anchored link in the HTML pages of
// fsys. The anchor index is built from all pages before any link is checked,
// because link targets may be forward references.
func CheckAnchors(fsys fs.FS) (*CheckReport, error) {
	names, err := htmlPageNames(fsys)
	if err != nil {
		return nil, err
	}

	index := make(AnchorIndex, len(names))
	linksBySource := make(map[string][]LinkRecord, len(names))

	for _, name := range names {
		ids, links, err := scanPage(fsys, name)
		if err != nil {
			return nil, err
		}
		index[name] = ids
		linksBySource[name] = links
	}

	report := &CheckReport{}
	for _, name := range names {
		for _, link := range linksBySource[name] {
			report.Total++
			if _, ok := index[link.Target][link.Anchor]; ok {
				report.OK = append(report.OK, link)
				continue
			}
			report.Broken = append(report.Broken, BrokenLink{
				LinkRecord: link,
				Nearby:     nearbyAnchors(index[link.Target], link.Anchor),
			})
		}
	}

	return report, nil
}

// WriteSummary writes the human-readable report.
func (r *CheckReport) WriteSummary(w io.Writer) {
	fmt.Fprintf(w, "Total anchored links checked: %d\n", r.Total)
	fmt.Fprintf(w, "  OK:     %d\n", len(r.OK))
	fmt.Fprintf(w, "  Broken: %d\n", len(r.Broken))

	if len(r.Broken) == 0 {
		fmt.Fprintln(w, "\nAll anchored links resolve correctly.")
		return
	}

	fmt.Fprintln(w, "\nBROKEN links:")
	for _, b := range r.Broken {
		fmt.Fprintf(w, "  [%s] -> %s#%s\n", b.Source, b.Target, b.Anchor)
		if len(b.Nearby) > 0 {
			fmt.Fprintf(w, "    anchors starting with %q: %s\n", leadingToken(b.Anchor), strings.Join(b.Nearby, ", "))
		}
	}
}

// htmlPageNames returns the sorted .html entries at the root of fsys.
func htmlPageNames(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageRead, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".html") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// scanPage parses one page and returns its defined anchor IDs and its
// cross-page anchored links.
func scanPage(fsys fs.FS, name string) (map[string]struct{}, []LinkRecord, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrPageRead, name, err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrPageParse, name, err)
	}

	ids := make(map[string]struct{})
	var links []LinkRecord

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, attr := range n.Attr {
				if attr.Key == "id" && attr.Val != "" {
					ids[attr.Val] = struct{}{}
				}
			}
			if n.Data == "a" {
				if target, anchor, ok := splitAnchoredHref(attrValue(n, "href")); ok {
					links = append(links, LinkRecord{Source: name, Target: target, Anchor: anchor})
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return ids, links, nil
}

// splitAnchoredHref extracts (target page, anchor) from an href of the exact
// shape "page.html#anchor". Same-page fragments, external URLs, and links
// without a fragment don't qualify.
func splitAnchoredHref(href string) (target, anchor string, ok bool) {
	target, anchor, found := strings.Cut(href, "#")
	if !found || target == "" || anchor == "" {
		return "", "", false
	}
	if !strings.HasSuffix(target, ".html") || strings.Contains(target, "://") {
		return "", "", false
	}
	return target, anchor, true
}

// attrValue returns the value of the named attribute, or "".
func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// nearbyAnchors lists the target page's anchors that share the missing
// anchor's leading hyphen-delimited token. Best-effort debugging aid only.
func nearbyAnchors(ids map[string]struct{}, anchor string) []string {
	token := leadingToken(anchor)

	var nearby []string
	for id := range ids {
		if strings.HasPrefix(id, token) {
			nearby = append(nearby, id)
		}
	}
	sort.Strings(nearby)

	if len(nearby) > maxNearbySuggestions {
		nearby = nearby[:maxNearbySuggestions]
	}
	return nearby
}

// leadingToken returns the anchor text before the first hyphen.
func leadingToken(anchor string) string {
	token, _, _ := strings.Cut(anchor, "-")
	return token
}
