// Package render assembles highlighted lines and section fragments into
// HTML. It trusts its inputs: callers hand it pre-escaped, pre-sanitized
// markup and it only adds structure.
package render

import (
	"fmt"
	"html"
	"strings"
)

// CodeOptions controls code block assembly.
type CodeOptions struct {
	// LineNumbers prepends a 1-based gutter label to every line.
	LineNumbers bool
	// StartLine overrides the first gutter label. Zero means 1.
	StartLine int
}

// CodeBlock wraps annotated lines in a <pre> block. Each line gets its own
// row so empty lines (rendered as &nbsp;) keep their height.
func CodeBlock(lines []string, opts CodeOptions) string {
	start := opts.StartLine
	if start < 1 {
		start = 1
	}

	var b strings.Builder
	b.WriteString(`<pre class="sk-code"><code>`)
	for i, line := range lines {
		b.WriteString(`<div class="sk-line">`)
		if opts.LineNumbers {
			fmt.Fprintf(&b, `<span class="sk-lineno">%d</span>`, start+i)
		}
		b.WriteString(`<span class="sk-linetext">`)
		b.WriteString(line)
		b.WriteString(`</span></div>`)
		b.WriteString("\n")
	}
	b.WriteString(`</code></pre>`)
	return b.String()
}

// PageOptions carries the page-level presentation settings.
type PageOptions struct {
	Title      string
	Background string
	Accent     string
	MaxWidth   int
}

// Page concatenates section fragments into a standalone HTML document with a
// minimal shell. Fragments are trusted markup; the title is escaped.
func Page(fragments []string, opts PageOptions) string {
	background := opts.Background
	if background == "" {
		background = "#ffffff"
	}
	accent := opts.Accent
	if accent == "" {
		accent = "#2563eb"
	}
	maxWidth := opts.MaxWidth
	if maxWidth <= 0 {
		maxWidth = 1200
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(opts.Title))
	fmt.Fprintf(&b, "<style>:root{--sk-accent:%s}body{margin:0;background:%s}main{max-width:%dpx;margin:0 auto}%s</style>\n",
		accent, background, maxWidth, baseCSS)
	b.WriteString("</head>\n<body>\n<main>\n")
	for _, fragment := range fragments {
		b.WriteString(fragment)
		b.WriteString("\n")
	}
	b.WriteString("</main>\n</body>\n</html>\n")
	return b.String()
}

// baseCSS is the shared styling for all section fragments.
const baseCSS = `.sk-section{padding:2rem 1rem}` +
	`.sk-code{background:#282c34;color:#abb2bf;border-radius:8px;padding:1rem;overflow-x:auto;font-family:monospace}` +
	`.sk-line{display:block;min-height:1.4em}` +
	`.sk-lineno{display:inline-block;min-width:2.5em;margin-right:1em;color:#5c6370;text-align:right;user-select:none}` +
	`.sk-gallery{display:grid;gap:1rem}` +
	`.sk-accordion details{border:1px solid #e5e7eb;border-radius:6px;margin-bottom:.5rem;padding:.5rem 1rem}` +
	`.sk-navbar{display:flex;align-items:center;gap:1.5rem;padding:1rem}` +
	`.sk-emailform input[type=email]{padding:.6rem;border:1px solid #d1d5db;border-radius:6px}` +
	`.sk-button{background:var(--sk-accent);color:#fff;border:none;border-radius:6px;padding:.6rem 1.2rem;cursor:pointer}`
