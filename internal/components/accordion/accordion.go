// Package accordioncomponent renders collapsible item lists parsed from a
// plain text block.
package accordioncomponent

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/sectionkit/sectionkit/internal/component"
	"github.com/sectionkit/sectionkit/internal/config"
	skerrors "github.com/sectionkit/sectionkit/pkg/errors"
)

type accordionComponent struct{}

// New creates a new accordion component.
func New() component.Component {
	return &accordionComponent{}
}

func init() {
	if err := component.Register("accordion", New()); err != nil {
		panic(err)
	}
}

var _ component.Component = (*accordionComponent)(nil)

func (c *accordionComponent) Metadata() component.Metadata {
	return component.Metadata{
		Name:        "Accordion",
		Type:        "accordion",
		Version:     "1.0.0",
		APIVersion:  "1.x",
		Description: "Collapsible items parsed from a text block, one paragraph per item.",
	}
}

func (c *accordionComponent) Schema() any {
	return config.AccordionSection{}
}

// Item is one parsed accordion entry.
type Item struct {
	Title string
	Body  string
}

func (c *accordionComponent) Render(ctx context.Context, section *config.Section) (string, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return "", err
		}
	}

	if section == nil {
		return "", skerrors.NewValidationError("section", "section is nil", nil)
	}
	cfg := section.Accordion
	if cfg == nil {
		return "", skerrors.NewValidationError(section.ID, "accordion configuration missing", nil)
	}

	items := ParseItems(cfg.Content)
	if len(items) == 0 {
		return "", skerrors.NewRenderError(section.ID, fmt.Errorf("content contains no items"))
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<section class="sk-section sk-accordion" id="%s">`, html.EscapeString(section.ID))
	b.WriteString("\n")
	if section.Title != "" {
		fmt.Fprintf(&b, "<h2>%s</h2>\n", html.EscapeString(section.Title))
	}
	for i, item := range items {
		open := ""
		if i == 0 && cfg.OpenFirst {
			open = " open"
		}
		title := item.Title
		if cfg.TitleSuffix != "" {
			title += " " + cfg.TitleSuffix
		}
		fmt.Fprintf(&b, "<details%s><summary>%s</summary>", open, html.EscapeString(title))
		if item.Body != "" {
			fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(item.Body))
		}
		b.WriteString("</details>\n")
	}
	b.WriteString("</section>")
	return b.String(), nil
}

// ParseItems splits a text block into accordion items. Paragraphs are
// separated by blank lines; within a paragraph, "::" separates the item
// title from its body. A paragraph without a separator becomes a title-only
// item. Whitespace-only paragraphs are dropped.
func ParseItems(content string) []Item {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	paragraphs := strings.Split(normalized, "\n\n")

	items := make([]Item, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		text := strings.TrimSpace(paragraph)
		if text == "" {
			continue
		}

		title, body, found := strings.Cut(text, "::")
		if !found {
			items = append(items, Item{Title: collapseLines(text)})
			continue
		}
		items = append(items, Item{
			Title: collapseLines(strings.TrimSpace(title)),
			Body:  collapseLines(strings.TrimSpace(body)),
		})
	}
	return items
}

// collapseLines joins the interior line breaks of a paragraph into spaces.
func collapseLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, " ")
}
