package md2wiki

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrHTMLConversion = errors.New("HTML conversion failed")

	// Config validation errors.
	ErrMissingWikiBaseURL = errors.New("wiki base URL is required")
	ErrInvalidWikiBaseURL = errors.New("wiki base URL must start with http:// or https://")
	ErrMissingWikiSpace   = errors.New("wiki space key is required")
	ErrMissingDiagramURL  = errors.New("diagram service URL is required")

	// Checker errors.
	ErrPageRead  = errors.New("failed to read HTML page")
	ErrPageParse = errors.New("failed to parse HTML page")
)
