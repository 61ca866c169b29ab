package builder

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sectionkit/sectionkit/internal/config"

	_ "github.com/sectionkit/sectionkit/internal/components/accordion"
	_ "github.com/sectionkit/sectionkit/internal/components/codeviewer"
	_ "github.com/sectionkit/sectionkit/internal/components/emailform"
	_ "github.com/sectionkit/sectionkit/internal/components/gallery"
	_ "github.com/sectionkit/sectionkit/internal/components/navbar"
)

func testPage() *config.Page {
	return &config.Page{
		Version: "1.0",
		Name:    "Launch",
		Theme:   config.Theme{Accent: "#ff6b35"},
		Sections: []config.Section{
			{
				ID:     "header",
				Type:   "navbar",
				Navbar: &config.NavbarSection{Brand: "Acme"},
			},
			{
				ID:         "snippet",
				Type:       "codeviewer",
				CodeViewer: &config.CodeViewerSection{Source: "{% if x %}", LineNumbers: true},
			},
		},
	}
}

func TestBuildFullPage(t *testing.T) {
	t.Parallel()

	out, err := New(nil).Build(context.Background(), testPage())
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	require.Contains(t, out, "<title>Launch</title>")
	require.Contains(t, out, "--sk-accent:#ff6b35")
	require.Contains(t, out, `id="header"`)
	require.Contains(t, out, `id="snippet"`)
	// Sections render in document order.
	require.Less(t, strings.Index(out, `id="header"`), strings.Index(out, `id="snippet"`))
}

func TestBuildSkipsHiddenSections(t *testing.T) {
	t.Parallel()

	page := testPage()
	page.Sections[0].Hidden = true

	fragments, err := New(nil).BuildSections(context.Background(), page)
	require.NoError(t, err)
	require.Len(t, fragments, 1)
	require.Contains(t, fragments[0], `id="snippet"`)
}

func TestBuildUnknownSectionType(t *testing.T) {
	t.Parallel()

	page := testPage()
	page.Sections[0].Type = "carousel"

	_, err := New(nil).Build(context.Background(), page)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no component registered")
}

func TestBuildSectionRenderFailure(t *testing.T) {
	t.Parallel()

	page := testPage()
	page.Sections[1].CodeViewer = nil

	_, err := New(nil).Build(context.Background(), page)
	require.Error(t, err)
	require.Contains(t, err.Error(), "render error on section snippet")
}

func TestBuildNilPage(t *testing.T) {
	t.Parallel()

	_, err := New(nil).Build(context.Background(), nil)
	require.Error(t, err)
}
