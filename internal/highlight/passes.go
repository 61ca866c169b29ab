package highlight

import (
	"regexp"
	"strings"
)

// Structural pass order is load-bearing: delimiter pairs, output pairs, tag
// constructs, then comments. Each pass is followed by a masking step so no
// pass ever sees a previous pass's markup, even when constructs nest (a tag
// attribute value that itself contains delimiter-pair syntax, a comment that
// wraps a whole tag).
var (
	delimiterPairRe = regexp.MustCompile(`(\{%-?)(.*?)(-?%\})`)
	outputPairRe    = regexp.MustCompile(`(\{\{-?)(.*?)(-?\}\})`)

	// Tag constructs are matched against the escaped form of the line, so
	// the angle brackets appear as &lt; and &gt; sequences.
	tagRe  = regexp.MustCompile(`(&lt;/?)([a-zA-Z][a-zA-Z0-9-]*)(.*?)(/?&gt;)`)
	attrRe = regexp.MustCompile(`([a-zA-Z_:][a-zA-Z0-9_:.-]*)(\s*=\s*)("[^"]*"|'[^']*')`)

	commentRe = regexp.MustCompile(`&lt;!--.*?--&gt;|\{#.*?#\}`)

	// Content passes run against masked text only. The alternatives encode
	// the fixed precedence: quoted key before colon, quoted strings, bare
	// word-boundary numbers, boolean/null keywords.
	contentRe = regexp.MustCompile(`"(?:[^"\\]|\\.)*"\s*:|"(?:[^"\\]|\\.)*"|'(?:[^'\\]|\\.)*'|\b\d+(?:\.\d+)?\b|\b(?:true|false|null|nil)\b`)
)

// delimiterPass wraps {% ... %} pairs, coloring the markers with the
// delimiter style and any control keyword inside with the keyword style.
// Everything else between the markers stays plain.
func (h *Highlighter) delimiterPass(line string) string {
	return delimiterPairRe.ReplaceAllStringFunc(line, func(m string) string {
		g := delimiterPairRe.FindStringSubmatch(m)
		inner := keywordRe.ReplaceAllStringFunc(g[2], func(kw string) string {
			return h.theme.wrap(KindKeyword, kw)
		})
		return h.theme.wrap(KindDelimiter, g[1]) + inner + h.theme.wrap(KindDelimiter, g[3])
	})
}

// outputPass wraps {{ ... }} pairs, coloring the markers with the delimiter
// style and any known filter token inside with the filter style.
func (h *Highlighter) outputPass(line string) string {
	return outputPairRe.ReplaceAllStringFunc(line, func(m string) string {
		g := outputPairRe.FindStringSubmatch(m)
		inner := filterRe.ReplaceAllStringFunc(g[2], func(f string) string {
			return h.theme.wrap(KindFilter, f)
		})
		return h.theme.wrap(KindDelimiter, g[1]) + inner + h.theme.wrap(KindDelimiter, g[3])
	})
}

// tagPass wraps escaped tag constructs: the angle-bracket markers, the tag
// name, and each attribute name and quoted value get their own span.
func (h *Highlighter) tagPass(line string) string {
	return tagRe.ReplaceAllStringFunc(line, func(m string) string {
		g := tagRe.FindStringSubmatch(m)
		attrs := attrRe.ReplaceAllStringFunc(g[3], func(a string) string {
			ag := attrRe.FindStringSubmatch(a)
			return h.theme.wrap(KindAttribute, ag[1]) + ag[2] + h.theme.wrap(KindValue, ag[3])
		})
		return h.theme.wrap(KindBracket, g[1]) + h.theme.wrap(KindTag, g[2]) + attrs + h.theme.wrap(KindBracket, g[4])
	})
}

// commentPass wraps HTML comments and template comments whole.
func (h *Highlighter) commentPass(line string) string {
	return commentRe.ReplaceAllStringFunc(line, func(m string) string {
		return h.theme.wrap(KindComment, m)
	})
}

// contentPass annotates literal values on a fully masked line. A single
// substitution covers all four literal forms so that no literal pass can
// re-match text another one already wrapped; alternation order preserves the
// documented precedence.
func (h *Highlighter) contentPass(line string) string {
	return contentRe.ReplaceAllStringFunc(line, func(m string) string {
		switch {
		case strings.HasSuffix(m, ":"):
			quoted := strings.TrimRight(m[:len(m)-1], " \t")
			return h.theme.wrap(KindKey, quoted) + m[len(quoted):]
		case m[0] == '"' || m[0] == '\'':
			return h.theme.wrap(KindString, m)
		case m == "true" || m == "false" || m == "null" || m == "nil":
			return h.theme.wrap(KindBoolean, m)
		default:
			return h.theme.wrap(KindNumber, m)
		}
	})
}
