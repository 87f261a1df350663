package main

import (
	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the converter.
type cliFlags struct {
	config  string
	input   string
	output  string
	workers int
	quiet   bool
	verbose bool
	version bool

	wikiBaseURL  string
	wikiSpace    string
	diagramURL   string
	diagramTheme string
}

// parseFlags parses command-line arguments into cliFlags.
func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{}

	fs := flag.NewFlagSet("md2wiki", flag.ContinueOnError)
	fs.SortFlags = false

	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.StringVarP(&f.input, "input", "i", "", "input directory with markdown files")
	fs.StringVarP(&f.output, "output", "o", "", "output directory for HTML pages (default: <input>/html)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "number of parallel workers (0 = auto)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show the page URL map and per-file timing")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.StringVar(&f.wikiBaseURL, "wiki-base", "", "wiki base URL, e.g. https://example.atlassian.net")
	fs.StringVar(&f.wikiSpace, "wiki-space", "", "wiki space key, e.g. DOCS")
	fs.StringVar(&f.diagramURL, "diagram-url", "", "diagram rendering service URL prefix")
	fs.StringVar(&f.diagramTheme, "diagram-theme", "", "diagram rendering theme")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}

	return f, nil
}
