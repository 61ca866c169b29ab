// Package emailformcomponent renders email-capture forms.
package emailformcomponent

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/sectionkit/sectionkit/internal/component"
	"github.com/sectionkit/sectionkit/internal/config"
	skerrors "github.com/sectionkit/sectionkit/pkg/errors"
)

const (
	defaultPlaceholder = "you@example.com"
	defaultButtonLabel = "Subscribe"
)

type emailFormComponent struct{}

// New creates a new email form component.
func New() component.Component {
	return &emailFormComponent{}
}

func init() {
	if err := component.Register("emailform", New()); err != nil {
		panic(err)
	}
}

var _ component.Component = (*emailFormComponent)(nil)

func (c *emailFormComponent) Metadata() component.Metadata {
	return component.Metadata{
		Name:        "Email Capture",
		Type:        "emailform",
		Version:     "1.0.0",
		APIVersion:  "1.x",
		Description: "Email signup form with an optional honeypot field.",
	}
}

func (c *emailFormComponent) Schema() any {
	return config.EmailFormSection{}
}

func (c *emailFormComponent) Render(ctx context.Context, section *config.Section) (string, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return "", err
		}
	}

	if section == nil {
		return "", skerrors.NewValidationError("section", "section is nil", nil)
	}
	cfg := section.EmailForm
	if cfg == nil {
		return "", skerrors.NewValidationError(section.ID, "emailform configuration missing", nil)
	}

	placeholder := cfg.Placeholder
	if placeholder == "" {
		placeholder = defaultPlaceholder
	}
	buttonLabel := cfg.ButtonLabel
	if buttonLabel == "" {
		buttonLabel = defaultButtonLabel
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<section class="sk-section sk-emailform" id="%s">`, html.EscapeString(section.ID))
	b.WriteString("\n")
	if cfg.Heading != "" {
		fmt.Fprintf(&b, "<h2>%s</h2>\n", html.EscapeString(cfg.Heading))
	}
	fmt.Fprintf(&b, `<form method="post" action="%s">`, html.EscapeString(cfg.Action))
	b.WriteString("\n")
	fmt.Fprintf(&b, `<input type="email" name="email" required placeholder="%s">`, html.EscapeString(placeholder))
	b.WriteString("\n")
	if cfg.Honeypot {
		// Hidden from humans; bots that fill it are dropped server-side.
		b.WriteString(`<input type="text" name="website" tabindex="-1" autocomplete="off" style="position:absolute;left:-9999px">`)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, `<button class="sk-button" type="submit">%s</button>`, html.EscapeString(buttonLabel))
	b.WriteString("\n</form>\n</section>")
	return b.String(), nil
}
