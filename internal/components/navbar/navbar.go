// Package navbarcomponent renders navigation bars.
package navbarcomponent

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/sectionkit/sectionkit/internal/component"
	"github.com/sectionkit/sectionkit/internal/config"
	skerrors "github.com/sectionkit/sectionkit/pkg/errors"
)

type navbarComponent struct{}

// New creates a new navbar component.
func New() component.Component {
	return &navbarComponent{}
}

func init() {
	if err := component.Register("navbar", New()); err != nil {
		panic(err)
	}
}

var _ component.Component = (*navbarComponent)(nil)

func (c *navbarComponent) Metadata() component.Metadata {
	return component.Metadata{
		Name:        "Navigation Bar",
		Type:        "navbar",
		Version:     "1.0.0",
		APIVersion:  "1.x",
		Description: "Brand, link list, and an optional call-to-action button.",
	}
}

func (c *navbarComponent) Schema() any {
	return config.NavbarSection{}
}

func (c *navbarComponent) Render(ctx context.Context, section *config.Section) (string, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return "", err
		}
	}

	if section == nil {
		return "", skerrors.NewValidationError("section", "section is nil", nil)
	}
	cfg := section.Navbar
	if cfg == nil {
		return "", skerrors.NewValidationError(section.ID, "navbar configuration missing", nil)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<nav class="sk-section sk-navbar" id="%s">`, html.EscapeString(section.ID))
	b.WriteString("\n")
	fmt.Fprintf(&b, `<span class="sk-brand">%s</span>`, html.EscapeString(cfg.Brand))
	b.WriteString("\n")

	if len(cfg.Links) > 0 {
		b.WriteString(`<ul class="sk-links">`)
		for _, link := range cfg.Links {
			fmt.Fprintf(&b, `<li><a href="%s">%s</a></li>`,
				html.EscapeString(link.URL), html.EscapeString(link.Label))
		}
		b.WriteString("</ul>\n")
	}

	if cfg.CTA != nil {
		fmt.Fprintf(&b, `<a class="sk-button" href="%s">%s</a>`,
			html.EscapeString(cfg.CTA.URL), html.EscapeString(cfg.CTA.Label))
		b.WriteString("\n")
	}

	b.WriteString("</nav>")
	return b.String(), nil
}
