// Package gallerycomponent renders responsive media grids.
package gallerycomponent

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/sectionkit/sectionkit/internal/component"
	"github.com/sectionkit/sectionkit/internal/config"
	skerrors "github.com/sectionkit/sectionkit/pkg/errors"
)

const defaultColumns = 3

type galleryComponent struct{}

// New creates a new gallery component.
func New() component.Component {
	return &galleryComponent{}
}

func init() {
	if err := component.Register("gallery", New()); err != nil {
		panic(err)
	}
}

var _ component.Component = (*galleryComponent)(nil)

func (c *galleryComponent) Metadata() component.Metadata {
	return component.Metadata{
		Name:        "Media Gallery",
		Type:        "gallery",
		Version:     "1.0.0",
		APIVersion:  "1.x",
		Description: "Grid of image cards with captions and a configurable column count.",
	}
}

func (c *galleryComponent) Schema() any {
	return config.GallerySection{}
}

func (c *galleryComponent) Render(ctx context.Context, section *config.Section) (string, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return "", err
		}
	}

	if section == nil {
		return "", skerrors.NewValidationError("section", "section is nil", nil)
	}
	cfg := section.Gallery
	if cfg == nil {
		return "", skerrors.NewValidationError(section.ID, "gallery configuration missing", nil)
	}
	if len(cfg.Items) == 0 {
		return "", skerrors.NewRenderError(section.ID, fmt.Errorf("gallery has no items"))
	}

	columns := cfg.Columns
	if columns < 1 {
		columns = defaultColumns
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<section class="sk-section sk-gallery" id="%s" style="grid-template-columns:repeat(%d,1fr)">`,
		html.EscapeString(section.ID), columns)
	b.WriteString("\n")
	for _, item := range cfg.Items {
		b.WriteString(`<figure class="sk-card">`)
		alt := item.Alt
		if alt == "" {
			alt = item.Caption
		}
		fmt.Fprintf(&b, `<img src="%s" alt="%s" loading="lazy">`,
			html.EscapeString(item.URL), html.EscapeString(alt))
		if item.Caption != "" {
			fmt.Fprintf(&b, `<figcaption>%s</figcaption>`, html.EscapeString(item.Caption))
		}
		b.WriteString("</figure>\n")
	}
	b.WriteString("</section>")
	return b.String(), nil
}
