package md2wiki

import (
	"fmt"
	"html"
)

// pageTemplate wraps a converted body fragment in a complete HTML5 document.
// Styling is embedded inline so a page survives copy-paste into the wiki
// editor with no plugin or stylesheet requirement.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%s</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto,
                   "Helvetica Neue", Arial, sans-serif;
      font-size: 14px;
      line-height: 1.6;
      color: #172b4d;
      max-width: 960px;
      margin: 32px auto;
      padding: 0 24px;
    }
    h1 { font-size: 2em;    border-bottom: 2px solid #dfe1e6; padding-bottom: 8px; margin-top: 32px; }
    h2 { font-size: 1.5em;  border-bottom: 1px solid #dfe1e6; padding-bottom: 4px; margin-top: 28px; }
    h3 { font-size: 1.17em; margin-top: 24px; }
    h4 { font-size: 1em;    margin-top: 16px; }
    table {
      border-collapse: collapse;
      width: 100%%;
      margin: 16px 0;
      font-size: 13px;
    }
    th, td {
      border: 1px solid #dfe1e6;
      padding: 8px 12px;
      text-align: left;
      vertical-align: top;
    }
    th {
      background-color: #f4f5f7;
      font-weight: 600;
    }
    tr:nth-child(even) td {
      background-color: #fafbfc;
    }
    code {
      font-family: "SFMono-Regular", Consolas, "Liberation Mono", Menlo, monospace;
      font-size: 12px;
      background: #f4f5f7;
      padding: 2px 5px;
      border-radius: 3px;
    }
    pre {
      background: #f4f5f7;
      border: 1px solid #dfe1e6;
      border-radius: 4px;
      padding: 16px;
      overflow-x: auto;
      margin: 16px 0;
    }
    pre code {
      background: none;
      padding: 0;
      font-size: 12px;
    }
    .mermaid-img {
      display: block;
      max-width: 100%%;
      border: 1px solid #dfe1e6;
      border-radius: 4px;
      margin: 16px 0;
      background: #f9f9fb;
      padding: 8px;
    }
    blockquote {
      border-left: 4px solid #0052cc;
      margin: 16px 0;
      padding: 8px 16px;
      background: #e9f2ff;
      border-radius: 0 4px 4px 0;
    }
    ul, ol { margin: 8px 0 8px 24px; }
    li { margin: 4px 0; }
    hr { border: none; border-top: 1px solid #dfe1e6; margin: 24px 0; }
    strong { font-weight: 600; color: #172b4d; }
    a { color: #0052cc; text-decoration: none; }
    a:hover { text-decoration: underline; }
  </style>
</head>
<body>
%s
</body>
</html>
`

// RenderPage assembles a standalone HTML page from a title and a converted
// body fragment. The title is escaped; the body is trusted converter output.
func RenderPage(title, body string) string {
	return fmt.Sprintf(pageTemplate, html.EscapeString(title), body)
}
