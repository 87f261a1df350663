package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/alnah/go-md2wiki/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrNoMarkdownFiles = errors.New("no markdown files found")
)

// discoverSources lists the markdown files in inputDir, sorted by name.
// Discovery is non-recursive: output pages are named by input stem, so
// nested files would collide anyway.
func discoverSources(inputDir string) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", inputDir, err)
	}

	var sources []string
	for _, e := range entries {
		if e.IsDir() || !fileutil.IsMarkdownFile(e.Name()) {
			continue
		}
		sources = append(sources, filepath.Join(inputDir, e.Name()))
	}

	if len(sources) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoMarkdownFiles, inputDir)
	}

	sort.Strings(sources)
	return sources, nil
}
