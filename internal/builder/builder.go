// Package builder assembles a parsed page document into a full HTML page by
// dispatching each section to its registered component.
package builder

import (
	"context"

	"github.com/sectionkit/sectionkit/internal/component"
	"github.com/sectionkit/sectionkit/internal/config"
	"github.com/sectionkit/sectionkit/internal/logger"
	"github.com/sectionkit/sectionkit/internal/render"
	skerrors "github.com/sectionkit/sectionkit/pkg/errors"
)

// Builder renders pages using the component registry.
type Builder struct {
	log *logger.Logger
}

// New creates a Builder. The logger may be nil.
func New(log *logger.Logger) *Builder {
	return &Builder{log: log}
}

// Build renders every visible section of the page in document order and
// wraps the fragments in the page shell. The first section that fails to
// render aborts the build.
func (b *Builder) Build(ctx context.Context, page *config.Page) (string, error) {
	if page == nil {
		return "", skerrors.NewValidationError("page", "page is nil", nil)
	}

	fragments, err := b.BuildSections(ctx, page)
	if err != nil {
		return "", err
	}

	return render.Page(fragments, render.PageOptions{
		Title:      page.Name,
		Background: page.Theme.Background,
		Accent:     page.Theme.Accent,
		MaxWidth:   page.Theme.MaxWidth,
	}), nil
}

// BuildSections renders the visible sections and returns their fragments in
// document order, without the page shell.
func (b *Builder) BuildSections(ctx context.Context, page *config.Page) ([]string, error) {
	fragments := make([]string, 0, len(page.Sections))

	for i := range page.Sections {
		section := &page.Sections[i]
		if section.Hidden {
			b.log.WithFields(map[string]any{"section": section.ID}).Debug("skipping hidden section")
			continue
		}

		comp, err := component.Get(section.Type)
		if err != nil {
			return nil, err
		}

		fragment, renderErr := comp.Render(ctx, section)
		if renderErr != nil {
			b.log.WithFields(map[string]any{"section": section.ID}).Error(renderErr, "section render failed")
			return nil, skerrors.NewRenderError(section.ID, renderErr)
		}

		fragments = append(fragments, fragment)
	}

	return fragments, nil
}
