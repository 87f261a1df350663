package main

import (
	"errors"
	"path/filepath"
	"runtime"

	md2wiki "github.com/alnah/go-md2wiki"
	"github.com/alnah/go-md2wiki/internal/config"
)

// Sentinel errors for parameter resolution.
var (
	ErrNoInput = errors.New("no input directory specified (use --input or a config file)")
)

// Worker pool bounds for auto-sizing.
const (
	minWorkers = 1
	maxWorkers = 8
)

// runParams is the fully resolved set of conversion parameters.
type runParams struct {
	inputDir  string
	outputDir string
	workers   int
	wiki      md2wiki.Config
}

// resolveParams merges flags and file config into runParams.
// Precedence: flag > config file > default.
func resolveParams(flags *cliFlags, cfg *config.Config) (*runParams, error) {
	p := &runParams{
		inputDir:  firstNonEmpty(flags.input, cfg.Input.Dir),
		outputDir: firstNonEmpty(flags.output, cfg.Output.Dir),
	}

	if p.inputDir == "" {
		return nil, ErrNoInput
	}
	if p.outputDir == "" {
		p.outputDir = filepath.Join(p.inputDir, "html")
	}

	p.workers = resolveWorkers(flags.workers, cfg.Workers)

	wiki := md2wiki.DefaultConfig()
	wiki.WikiBaseURL = firstNonEmpty(flags.wikiBaseURL, cfg.Wiki.BaseURL)
	wiki.WikiSpace = firstNonEmpty(flags.wikiSpace, cfg.Wiki.Space)
	wiki.DiagramServiceURL = firstNonEmpty(flags.diagramURL, cfg.Diagrams.ServiceURL, wiki.DiagramServiceURL)
	wiki.DiagramTheme = firstNonEmpty(flags.diagramTheme, cfg.Diagrams.Theme, wiki.DiagramTheme)
	p.wiki = wiki

	if err := wiki.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// resolveWorkers determines the worker count.
// Priority: explicit flag > config file > GOMAXPROCS-based calculation.
func resolveWorkers(flagWorkers, cfgWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}
	if cfgWorkers > 0 {
		return cfgWorkers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	n := runtime.GOMAXPROCS(0) / 2
	if n < minWorkers {
		return minWorkers
	}
	if n > maxWorkers {
		return maxWorkers
	}
	return n
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
