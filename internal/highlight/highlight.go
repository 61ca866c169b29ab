// Package highlight converts plain source lines into color-annotated HTML
// fragments for the code viewer component.
//
// Each line flows through a fixed pipeline: escape, structural passes
// (delimiter pairs, output pairs, tags, comments), then content passes
// (keys, strings, numbers, booleans). Every pass is isolated from the markup
// produced before it by masking: emitted spans are swapped for inert indexed
// placeholders and restored verbatim at the end. This guarantees each
// character is colored by exactly one pass: a numeric literal inside an
// already-wrapped attribute value can never be wrapped a second time.
//
// The highlighter is total: malformed or unbalanced constructs simply fail
// to match and pass through as escaped plain text.
package highlight

import "strings"

// emptyLine keeps empty source lines occupying vertical space.
const emptyLine = "&nbsp;"

// Highlighter annotates source lines using a fixed theme. It holds no
// mutable state, so a single instance is safe for concurrent use and every
// call is a pure function of the input line.
type Highlighter struct {
	theme Theme
}

// New creates a Highlighter. A nil theme selects DefaultTheme.
func New(theme Theme) *Highlighter {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Highlighter{theme: theme}
}

// Line converts one plain-text source line into an annotated line. An empty
// line yields a non-breaking space so it still renders with full height.
func (h *Highlighter) Line(line string) string {
	// NUL bytes would collide with mask placeholders and are not
	// displayable anyway.
	line = strings.ReplaceAll(line, "\x00", "")
	if line == "" {
		return emptyLine
	}

	out := Escape(line)

	var spans []string
	passes := []func(string) string{
		h.delimiterPass,
		h.outputPass,
		h.tagPass,
		h.commentPass,
	}
	for _, pass := range passes {
		out = pass(out)
		out, spans = mask(out, spans)
	}

	out = h.contentPass(out)

	restored, err := unmask(out, spans)
	if err != nil {
		// Restoration failure is a programming bug, not a user error.
		// Never drop content: serve the line escaped but unstyled.
		return Escape(line)
	}
	return restored
}

// Source splits text on newlines and annotates every line. Lines are
// processed independently; a trailing carriage return is stripped so CRLF
// sources render cleanly.
func (h *Highlighter) Source(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, len(raw))
	for i, line := range raw {
		lines[i] = h.Line(strings.TrimSuffix(line, "\r"))
	}
	return lines
}
