package md2wiki

import (
	"errors"
	"testing"
)

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		markdown string
		expected string
	}{
		{
			name:     "single H1",
			markdown: "# My Title\n\nbody",
			expected: "My Title",
		},
		{
			name:     "first of several H1s",
			markdown: "# First\n\ntext\n\n# Second\n",
			expected: "First",
		},
		{
			name:     "H1 not on first line",
			markdown: "intro paragraph\n\n# Late Title\n",
			expected: "Late Title",
		},
		{
			name:     "surrounding whitespace trimmed",
			markdown: "#   Padded Title   \n",
			expected: "Padded Title",
		},
		{
			name:     "no H1 falls back",
			markdown: "## Only H2\n\nbody",
			expected: "Document",
		},
		{
			name:     "empty input falls back",
			markdown: "",
			expected: "Document",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ExtractTitle(tt.markdown, "Document")
			if got != tt.expected {
				t.Errorf("ExtractTitle() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPageURL(t *testing.T) {
	t.Parallel()

	cfg := Config{WikiBaseURL: "https://host", WikiSpace: "RAIL"}

	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{
			name:     "spaces become plus",
			title:    "My Design Doc",
			expected: "https://host/wiki/display/RAIL/My+Design+Doc",
		},
		{
			name:     "slash percent-encoded, space as plus",
			title:    "A/B Design",
			expected: "https://host/wiki/display/RAIL/A%2FB+Design",
		},
		{
			name:     "safe punctuation unescaped",
			title:    "v1.2_rc-3",
			expected: "https://host/wiki/display/RAIL/v1.2_rc-3",
		},
		{
			name:     "ampersand encoded",
			title:    "Q&A",
			expected: "https://host/wiki/display/RAIL/Q%26A",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := PageURL(cfg, tt.title)
			if got != tt.expected {
				t.Errorf("PageURL(%q) = %q, want %q", tt.title, got, tt.expected)
			}
		})
	}
}

func TestBuildPageURLMap(t *testing.T) {
	t.Parallel()

	cfg := Config{WikiBaseURL: "https://host", WikiSpace: "DOCS"}
	docs := []Document{
		{Name: "overview", Title: "System Overview"},
		{Name: "api", Title: "API Reference"},
	}

	urlMap := BuildPageURLMap(cfg, docs)

	if len(urlMap) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(urlMap))
	}
	if got, want := urlMap["overview.html"], "https://host/wiki/display/DOCS/System+Overview"; got != want {
		t.Errorf("overview.html = %q, want %q", got, want)
	}
	if got, want := urlMap["api.html"], "https://host/wiki/display/DOCS/API+Reference"; got != want {
		t.Errorf("api.html = %q, want %q", got, want)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	valid := DefaultConfig()
	valid.WikiBaseURL = "https://host"
	valid.WikiSpace = "DOCS"

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: nil,
		},
		{
			name:    "missing base URL",
			mutate:  func(c *Config) { c.WikiBaseURL = "" },
			wantErr: ErrMissingWikiBaseURL,
		},
		{
			name:    "base URL without scheme",
			mutate:  func(c *Config) { c.WikiBaseURL = "host.example.com" },
			wantErr: ErrInvalidWikiBaseURL,
		},
		{
			name:    "missing space",
			mutate:  func(c *Config) { c.WikiSpace = "" },
			wantErr: ErrMissingWikiSpace,
		},
		{
			name:    "missing diagram service",
			mutate:  func(c *Config) { c.DiagramServiceURL = "" },
			wantErr: ErrMissingDiagramURL,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
