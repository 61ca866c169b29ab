package highlight

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Masking temporarily swaps every emitted annotation span for an indexed
// placeholder so that later passes cannot re-match the span's contents. The
// placeholder embeds its index between NUL bytes with no word boundary next
// to the digits, which keeps it inert under every content pass.
const placeholderMark = "\x00mask"

var (
	// spanRe recognizes exactly the markup Theme.wrap produces. Span text
	// never contains a literal '<': input angle brackets are escaped before
	// any pass runs, and nested constructs are masked before being wrapped.
	spanRe        = regexp.MustCompile(`<span style="[^"]*">[^<]*</span>`)
	placeholderRe = regexp.MustCompile("\x00mask(\\d+)\x00")
)

// mask replaces every annotation span in line with a numbered placeholder,
// appending the removed spans to the supplied list. It returns the masked
// line and the grown span list. Pass nil to start a fresh table.
func mask(line string, spans []string) (string, []string) {
	masked := spanRe.ReplaceAllStringFunc(line, func(m string) string {
		spans = append(spans, m)
		return fmt.Sprintf("%s%d\x00", placeholderMark, len(spans)-1)
	})
	return masked, spans
}

// unmask restores every placeholder in line from the span table, keyed by the
// placeholder's embedded index rather than positional order. Spans masked
// late in the pipeline may themselves contain placeholders for spans masked
// earlier, so restoration repeats until the line is clean; the span table
// bounds the rounds because each round resolves at least one nesting level.
//
// A placeholder without a table entry is an invariant violation, not a user
// error, and is reported as such.
func unmask(line string, spans []string) (string, error) {
	var badIndex error

	out := line
	for range len(spans) + 1 {
		if !strings.Contains(out, placeholderMark) {
			break
		}
		out = placeholderRe.ReplaceAllStringFunc(out, func(m string) string {
			idx, err := strconv.Atoi(m[len(placeholderMark) : len(m)-1])
			if err != nil || idx < 0 || idx >= len(spans) {
				badIndex = fmt.Errorf("unmask: no span for placeholder %d (have %d)", idx, len(spans))
				return m
			}
			return spans[idx]
		})
		if badIndex != nil {
			return "", badIndex
		}
	}

	if strings.Contains(out, placeholderMark) {
		return "", fmt.Errorf("unmask: unresolved placeholder after %d rounds", len(spans)+1)
	}
	return out, nil
}
