// Package codeviewercomponent renders highlighted code snippets.
package codeviewercomponent

import (
	"context"
	"fmt"
	"html"
	"path/filepath"
	"strings"

	"github.com/sectionkit/sectionkit/internal/component"
	"github.com/sectionkit/sectionkit/internal/config"
	"github.com/sectionkit/sectionkit/internal/highlight"
	"github.com/sectionkit/sectionkit/internal/render"
	skerrors "github.com/sectionkit/sectionkit/pkg/errors"
)

type codeViewerComponent struct {
	highlighter *highlight.Highlighter
}

// New creates a new code viewer component.
func New() component.Component {
	return &codeViewerComponent{highlighter: highlight.New(nil)}
}

func init() {
	if err := component.Register("codeviewer", New()); err != nil {
		panic(err)
	}
}

var _ component.Component = (*codeViewerComponent)(nil)

func (c *codeViewerComponent) Metadata() component.Metadata {
	return component.Metadata{
		Name:        "Code Viewer",
		Type:        "codeviewer",
		Version:     "1.0.0",
		APIVersion:  "1.x",
		Description: "Displays a syntax-highlighted code snippet with line numbers and a copy button.",
	}
}

func (c *codeViewerComponent) Schema() any {
	return config.CodeViewerSection{}
}

func (c *codeViewerComponent) Render(ctx context.Context, section *config.Section) (string, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return "", err
		}
	}

	cfg, err := loadConfig(section)
	if err != nil {
		return "", err
	}

	lines := c.highlighter.Source(cfg.Source)
	block := render.CodeBlock(lines, render.CodeOptions{
		LineNumbers: cfg.LineNumbers,
		StartLine:   cfg.StartLine,
	})

	var b strings.Builder
	fmt.Fprintf(&b, `<section class="sk-section sk-codeviewer" id="%s">`, html.EscapeString(section.ID))
	b.WriteString("\n")

	label := languageLabel(cfg)
	if cfg.Filename != "" || label != "" {
		b.WriteString(`<div class="sk-codeheader">`)
		if cfg.Filename != "" {
			fmt.Fprintf(&b, `<span class="sk-filename">%s</span>`, html.EscapeString(cfg.Filename))
		}
		if label != "" {
			fmt.Fprintf(&b, `<span class="sk-lang">%s</span>`, html.EscapeString(label))
		}
		fmt.Fprintf(&b, `<button class="sk-copy" type="button" data-copy-target="%s">Copy</button>`, html.EscapeString(section.ID))
		b.WriteString("</div>\n")
	}

	b.WriteString(block)
	b.WriteString("\n</section>")
	return b.String(), nil
}

func loadConfig(section *config.Section) (*config.CodeViewerSection, error) {
	if section == nil {
		return nil, skerrors.NewValidationError("section", "section is nil", nil)
	}
	if section.CodeViewer == nil {
		return nil, skerrors.NewValidationError(section.ID, "codeviewer configuration missing", nil)
	}
	return section.CodeViewer, nil
}

// extensionLabels maps known snippet file extensions to display labels.
var extensionLabels = map[string]string{
	".liquid": "Liquid",
	".html":   "HTML",
	".htm":    "HTML",
	".css":    "CSS",
	".js":     "JavaScript",
	".json":   "JSON",
	".yaml":   "YAML",
	".yml":    "YAML",
	".md":     "Markdown",
}

// languageLabel resolves the display label: an explicit language wins,
// otherwise the filename extension decides, otherwise no label is shown.
func languageLabel(cfg *config.CodeViewerSection) string {
	if cfg.Language != "" {
		return cfg.Language
	}
	if cfg.Filename == "" {
		return ""
	}
	ext := strings.ToLower(filepath.Ext(cfg.Filename))
	return extensionLabels[ext]
}
