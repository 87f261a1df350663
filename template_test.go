package md2wiki

import (
	"strings"
	"testing"
)

func TestRenderPage(t *testing.T) {
	t.Parallel()

	t.Run("title and body slots filled", func(t *testing.T) {
		t.Parallel()

		page := RenderPage("My Title", "<p>body</p>")

		if !strings.HasPrefix(page, "<!DOCTYPE html>") {
			t.Error("missing doctype")
		}
		if !strings.Contains(page, "<title>My Title</title>") {
			t.Error("title slot not filled")
		}
		if !strings.Contains(page, "<p>body</p>") {
			t.Error("body slot not filled")
		}
	})

	t.Run("title escaped", func(t *testing.T) {
		t.Parallel()

		page := RenderPage(`<script>"x"</script>`, "")

		if strings.Contains(page, "<script>") {
			t.Error("title not escaped")
		}
		if !strings.Contains(page, "&lt;script&gt;") {
			t.Error("escaped title missing")
		}
	})

	t.Run("styles embedded inline", func(t *testing.T) {
		t.Parallel()

		page := RenderPage("t", "b")

		if !strings.Contains(page, "<style>") {
			t.Error("inline styles missing")
		}
		if !strings.Contains(page, ".mermaid-img") {
			t.Error("diagram image styling missing")
		}
	})
}
