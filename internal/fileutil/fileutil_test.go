package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "path with extension",
			path:     "summary/overview.md",
			expected: "overview",
		},
		{
			name:     "markdown long extension",
			path:     "notes.markdown",
			expected: "notes",
		},
		{
			name:     "no extension",
			path:     "README",
			expected: "README",
		},
		{
			name:     "dotted stem",
			path:     "v1.2-notes.md",
			expected: "v1.2-notes",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Stem(tt.path); got != tt.expected {
				t.Errorf("Stem(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestIsMarkdownFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		expected bool
	}{
		{"doc.md", true},
		{"doc.markdown", true},
		{"doc.MD", false},
		{"doc.txt", false},
		{"doc", false},
	}

	for _, tt := range tests {
		tt := tt
		if got := IsMarkdownFile(tt.path); got != tt.expected {
			t.Errorf("IsMarkdownFile(%q) = %v, want %v", tt.path, got, tt.expected)
		}
	}
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "present.md")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Error("FileExists() = false for existing file")
	}
	if FileExists(filepath.Join(dir, "absent.md")) {
		t.Error("FileExists() = true for missing file")
	}
	if FileExists(dir) {
		t.Error("FileExists() = true for a directory")
	}
}

func TestDirExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !DirExists(dir) {
		t.Error("DirExists() = false for existing directory")
	}
	if DirExists(file) {
		t.Error("DirExists() = true for a file")
	}
	if DirExists(filepath.Join(dir, "absent")) {
		t.Error("DirExists() = true for missing path")
	}
}
