package md2wiki

import (
	"fmt"
	"strings"
)

// Default configuration values.
const (
	DefaultDiagramServiceURL = "https://mermaid.ink/img/"
	DefaultDiagramTheme      = "neutral"
	DefaultTitle             = "Document"
)

// Config holds the fixed conversion parameters.
// Wiki base URL and space key have no sensible defaults and must be provided;
// everything else is filled by DefaultConfig.
type Config struct {
	WikiBaseURL       string // e.g. "https://example.atlassian.net"
	WikiSpace         string // wiki space key, e.g. "RAIL"
	DiagramServiceURL string // rendering service prefix, diagram source appended base64url-encoded
	DiagramTheme      string // theme query parameter for rendered diagrams
	DefaultTitle      string // title used when a document has no H1
}

// DefaultConfig returns a Config with service defaults applied.
// WikiBaseURL and WikiSpace are left empty and must be set by the caller.
func DefaultConfig() Config {
	return Config{
		DiagramServiceURL: DefaultDiagramServiceURL,
		DiagramTheme:      DefaultDiagramTheme,
		DefaultTitle:      DefaultTitle,
	}
}

// Validate checks that required configuration is present and well-formed.
func (c Config) Validate() error {
	if c.WikiBaseURL == "" {
		return ErrMissingWikiBaseURL
	}
	if !strings.HasPrefix(c.WikiBaseURL, "http://") && !strings.HasPrefix(c.WikiBaseURL, "https://") {
		return fmt.Errorf("%w: got %q", ErrInvalidWikiBaseURL, c.WikiBaseURL)
	}
	if c.WikiSpace == "" {
		return ErrMissingWikiSpace
	}
	if c.DiagramServiceURL == "" {
		return ErrMissingDiagramURL
	}
	return nil
}

// Document is one unit of input markup, immutable once read.
type Document struct {
	Name     string // filename stem, e.g. "architecture"
	Title    string // first H1 text, or the configured fallback
	Markdown string // raw markdown content
}

// Page is the rendered result for one Document.
type Page struct {
	Name  string // output filename, stem + ".html"
	Title string
	HTML  string // complete standalone page
}

// PageURLMap maps an output page name to its canonical wiki URL.
// It must be fully populated before any cross-document link rewrite runs.
type PageURLMap map[string]string

// Option configures a Service.
type Option func(*Service)

// WithHTMLConverter replaces the markdown-to-HTML converter.
// Used by tests to inject failing or canned converters.
func WithHTMLConverter(c htmlConverter) Option {
	if c == nil {
		panic("md2wiki: WithHTMLConverter requires a non-nil converter")
	}
	return func(s *Service) {
		s.htmlConverter = c
	}
}
