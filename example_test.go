package md2wiki_test

import (
	"context"
	"fmt"
	"strings"

	md2wiki "github.com/alnah/go-md2wiki"
)

// Example demonstrates converting a small batch of documents into wiki-ready
// HTML pages with cross-document links resolved.
func Example() {
	cfg := md2wiki.DefaultConfig()
	cfg.WikiBaseURL = "https://example.atlassian.net"
	cfg.WikiSpace = "DOCS"

	svc, err := md2wiki.New(cfg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	docs := []md2wiki.Document{
		svc.NewDocument("intro", "# Introduction\n\nSee [the design](design.md).\n"),
		svc.NewDocument("design", "# Design\n\nBack to [intro](intro.md).\n"),
	}

	pages, err := svc.ConvertAll(context.Background(), docs)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, p := range pages {
		fmt.Println(p.Name, strings.Contains(p.HTML, "/wiki/display/DOCS/"))
	}
	// Output:
	// intro.html true
	// design.html true
}
