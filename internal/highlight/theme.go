package highlight

import "strings"

// Kind identifies the styling rule that produced an annotation span.
type Kind int

const (
	// KindDelimiter colors paired template markers such as {% and %}.
	KindDelimiter Kind = iota
	// KindKeyword colors control keywords inside delimiter pairs.
	KindKeyword
	// KindFilter colors filter names inside output pairs.
	KindFilter
	// KindBracket colors the angle-bracket markers of a tag.
	KindBracket
	// KindTag colors a tag name.
	KindTag
	// KindAttribute colors an attribute name inside a tag.
	KindAttribute
	// KindValue colors a quoted attribute value inside a tag.
	KindValue
	// KindComment colors comment spans.
	KindComment
	// KindKey colors a quoted key that precedes a colon.
	KindKey
	// KindString colors quoted string literals.
	KindString
	// KindNumber colors bare numeric literals.
	KindNumber
	// KindBoolean colors boolean and null keyword literals.
	KindBoolean
)

// Style describes the inline presentation of one annotation kind.
type Style struct {
	Color  string
	Bold   bool
	Italic bool
}

// Theme maps annotation kinds to inline styles. A kind absent from the theme
// renders as plain text.
type Theme map[Kind]Style

// DefaultTheme returns the stock dark-background palette.
func DefaultTheme() Theme {
	return Theme{
		KindDelimiter: {Color: "#56b6c2", Bold: true},
		KindKeyword:   {Color: "#c678dd", Bold: true},
		KindFilter:    {Color: "#61afef"},
		KindBracket:   {Color: "#abb2bf"},
		KindTag:       {Color: "#e06c75"},
		KindAttribute: {Color: "#d19a66"},
		KindValue:     {Color: "#98c379"},
		KindComment:   {Color: "#5c6370", Italic: true},
		KindKey:       {Color: "#e06c75"},
		KindString:    {Color: "#98c379"},
		KindNumber:    {Color: "#d19a66"},
		KindBoolean:   {Color: "#56b6c2"},
	}
}

// wrap surrounds text with an inline-styled span for the given kind. The
// produced markup is the only markup the highlighter ever emits, so the
// masking pass can recognize it by shape.
func (t Theme) wrap(kind Kind, text string) string {
	style, ok := t[kind]
	if !ok || style.Color == "" {
		return text
	}

	var b strings.Builder
	b.WriteString(`<span style="color:`)
	b.WriteString(style.Color)
	if style.Bold {
		b.WriteString(";font-weight:bold")
	}
	if style.Italic {
		b.WriteString(";font-style:italic")
	}
	b.WriteString(`">`)
	b.WriteString(text)
	b.WriteString(`</span>`)
	return b.String()
}
