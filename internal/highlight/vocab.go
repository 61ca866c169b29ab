package highlight

import (
	"regexp"
	"strings"
)

// Control keywords recognized inside {% ... %} delimiter pairs. These are
// configuration constants, not user input.
var controlKeywords = []string{
	"assign", "break", "capture", "case", "comment", "continue", "cycle",
	"decrement", "echo", "else", "elsif", "endcapture", "endcase",
	"endcomment", "endfor", "endform", "endif", "endraw", "endschema",
	"endtablerow", "endunless", "for", "form", "if", "in", "include",
	"increment", "layout", "liquid", "raw", "render", "schema", "section",
	"tablerow", "unless", "when", "with",
}

// Filter names recognized inside {{ ... }} output pairs.
var filterTokens = []string{
	"abs", "append", "capitalize", "ceil", "date", "default", "divided_by",
	"downcase", "escape", "first", "floor", "img_url", "join", "json",
	"last", "lstrip", "map", "minus", "money", "money_with_currency",
	"newline_to_br", "plus", "prepend", "remove", "replace", "reverse",
	"round", "rstrip", "size", "slice", "sort", "split", "strip",
	"strip_html", "times", "truncate", "truncatewords", "uniq", "upcase",
	"url_encode", "where",
}

var (
	keywordRe = regexp.MustCompile(`\b(?:` + strings.Join(controlKeywords, "|") + `)\b`)
	filterRe  = regexp.MustCompile(`\b(?:` + strings.Join(filterTokens, "|") + `)\b`)
)
