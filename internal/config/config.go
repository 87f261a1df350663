// Package config loads the YAML configuration file for the md2wiki CLI.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-md2wiki/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// Config holds all file-based configuration for page generation.
// Flags override config values; config values override defaults.
type Config struct {
	Input    InputConfig   `yaml:"input"`
	Output   OutputConfig  `yaml:"output"`
	Wiki     WikiConfig    `yaml:"wiki"`
	Diagrams DiagramConfig `yaml:"diagrams"`
	Workers  int           `yaml:"workers"` // 0 = auto
}

// InputConfig defines input source options.
type InputConfig struct {
	Dir string `yaml:"dir"` // Directory scanned for markdown files (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Directory generated pages are written to (empty = <input>/html)
}

// WikiConfig identifies the destination wiki.
type WikiConfig struct {
	BaseURL string `yaml:"baseURL"` // e.g. "https://example.atlassian.net"
	Space   string `yaml:"space"`   // space key, e.g. "RAIL"
}

// DiagramConfig addresses the external diagram rendering service.
// URLs are embedded in output pages, never fetched.
type DiagramConfig struct {
	ServiceURL string `yaml:"serviceURL"` // empty = mermaid.ink default
	Theme      string `yaml:"theme"`      // empty = "neutral"
}

// Load reads and parses a config file. An empty path returns a zero Config
// (all values come from flags and defaults).
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the --config flag
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}

	return &cfg, nil
}
