package highlight

import (
	"regexp"
	"strings"
)

// entityRe matches an ampersand, together with the rest of an entity when the
// ampersand already begins one. Keeping recognized entities intact makes
// escaping idempotent: already-escaped text passes through unchanged.
var entityRe = regexp.MustCompile(`&(amp;|lt;|gt;|quot;|nbsp;)?`)

// Escape canonicalizes the three HTML-significant characters. It runs before
// any annotation pass so every regex in the pipeline operates on the escaped
// form, and it never double-escapes.
func Escape(line string) string {
	out := entityRe.ReplaceAllStringFunc(line, func(m string) string {
		if m == "&" {
			return "&amp;"
		}
		return m
	})
	out = strings.ReplaceAll(out, "<", "&lt;")
	return strings.ReplaceAll(out, ">", "&gt;")
}
