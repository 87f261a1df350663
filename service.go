package md2wiki

import (
	"context"
	"fmt"
)

// Service orchestrates the markdown-to-wiki-page pipeline.
type Service struct {
	cfg           Config
	htmlConverter htmlConverter
}

// New creates a Service for the given configuration.
// Use options to customize behavior (e.g., WithHTMLConverter in tests).
func New(cfg Config, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Service{
		cfg:           cfg,
		htmlConverter: newGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Config returns the configuration the service was created with.
func (s *Service) Config() Config {
	return s.cfg
}

// NewDocument builds a Document from a filename stem and raw markdown,
// extracting the title (or falling back to the configured default).
func (s *Service) NewDocument(name, markdown string) Document {
	return Document{
		Name:     name,
		Title:    ExtractTitle(markdown, s.cfg.DefaultTitle),
		Markdown: markdown,
	}
}

// ConvertDocument runs the full pipeline for one document:
//
//  1. Extract diagram blocks behind placeholder tokens.
//  2. Convert markdown to an HTML body fragment.
//  3. Reinsert rendered diagram image markup.
//  4. Retarget markdown links at output pages, normalizing fragments.
//  5. Resolve remaining cross-page links against the page URL map.
//  6. Assemble the standalone page.
//
// The page URL map must already cover the whole batch (see BuildPageURLMap).
func (s *Service) ConvertDocument(ctx context.Context, doc Document, urlMap PageURLMap) (Page, error) {
	if doc.Markdown == "" {
		return Page{}, ErrEmptyMarkdown
	}

	markdown, placeholders := ExtractDiagrams(doc.Markdown, s.cfg)

	body, err := s.htmlConverter.ToHTML(ctx, markdown)
	if err != nil {
		return Page{}, fmt.Errorf("converting %s: %w", doc.Name, err)
	}

	body = ReinsertDiagrams(body, placeholders)
	body = RewriteMarkdownLinks(body)
	body = RewriteCrossPageLinks(body, urlMap)

	title := doc.Title
	if title == "" {
		title = s.cfg.DefaultTitle
	}

	return Page{
		Name:  doc.Name + ".html",
		Title: title,
		HTML:  RenderPage(title, body),
	}, nil
}

// ConvertAll converts a batch of documents sequentially. The page URL map is
// fully built from all documents before the first conversion starts, so
// cross-document links resolve across the whole batch. A conversion failure
// aborts the run; no partial-failure recovery is attempted.
func (s *Service) ConvertAll(ctx context.Context, docs []Document) ([]Page, error) {
	urlMap := BuildPageURLMap(s.cfg, docs)

	pages := make([]Page, 0, len(docs))
	for _, doc := range docs {
		page, err := s.ConvertDocument(ctx, doc, urlMap)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}
