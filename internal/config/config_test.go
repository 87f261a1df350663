package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "md2wiki.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("empty path returns zero config", func(t *testing.T) {
		t.Parallel()

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load(\"\") error = %v", err)
		}
		if *cfg != (Config{}) {
			t.Errorf("Load(\"\") = %+v, want zero config", cfg)
		}
	})

	t.Run("full config parsed", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, `
input:
  dir: summary
output:
  dir: summary/html
wiki:
  baseURL: https://example.atlassian.net
  space: RAIL
diagrams:
  serviceURL: https://mermaid.ink/img/
  theme: neutral
workers: 4
`)

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.Input.Dir != "summary" || cfg.Output.Dir != "summary/html" {
			t.Errorf("dirs = %+v, want summary/summary/html", cfg)
		}
		if cfg.Wiki.BaseURL != "https://example.atlassian.net" || cfg.Wiki.Space != "RAIL" {
			t.Errorf("wiki = %+v", cfg.Wiki)
		}
		if cfg.Diagrams.Theme != "neutral" {
			t.Errorf("diagrams = %+v", cfg.Diagrams)
		}
		if cfg.Workers != 4 {
			t.Errorf("workers = %d, want 4", cfg.Workers)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("Load() error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, "bogus: true\n")

		_, err := Load(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("Load() error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("malformed YAML rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, "wiki: [unclosed\n")

		_, err := Load(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("Load() error = %v, want ErrConfigParse", err)
		}
	})
}
