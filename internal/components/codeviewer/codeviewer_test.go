package codeviewercomponent

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sectionkit/sectionkit/internal/config"
)

func section(cfg config.CodeViewerSection) *config.Section {
	return &config.Section{ID: "snippet", Type: "codeviewer", CodeViewer: &cfg}
}

func TestRenderHighlightsSource(t *testing.T) {
	t.Parallel()

	out, err := New().Render(context.Background(), section(config.CodeViewerSection{
		Source:      "{% if x %}\n\n\"count\": 5",
		Filename:    "section.liquid",
		LineNumbers: true,
	}))
	require.NoError(t, err)

	require.Contains(t, out, `id="snippet"`)
	require.Contains(t, out, `<span class="sk-filename">section.liquid</span>`)
	require.Contains(t, out, `<span class="sk-lang">Liquid</span>`)
	require.Contains(t, out, `<span style="color:#c678dd;font-weight:bold">if</span>`)
	// The blank middle line keeps its height.
	require.Contains(t, out, `<span class="sk-linetext">&nbsp;</span>`)
	require.Contains(t, out, `<span class="sk-lineno">3</span>`)
	require.Contains(t, out, `data-copy-target="snippet"`)
}

func TestRenderExplicitLanguageWins(t *testing.T) {
	t.Parallel()

	out, err := New().Render(context.Background(), section(config.CodeViewerSection{
		Source:   "true",
		Filename: "snippet.html",
		Language: "Liquid",
	}))
	require.NoError(t, err)
	require.Contains(t, out, `<span class="sk-lang">Liquid</span>`)
	require.NotContains(t, out, `>HTML<`)
}

func TestRenderWithoutHeader(t *testing.T) {
	t.Parallel()

	out, err := New().Render(context.Background(), section(config.CodeViewerSection{Source: "123"}))
	require.NoError(t, err)
	require.NotContains(t, out, "sk-codeheader")
	require.Equal(t, 1, strings.Count(out, `<div class="sk-line">`))
}

func TestRenderStartLine(t *testing.T) {
	t.Parallel()

	out, err := New().Render(context.Background(), section(config.CodeViewerSection{
		Source:      "a\nb",
		LineNumbers: true,
		StartLine:   10,
	}))
	require.NoError(t, err)
	require.Contains(t, out, `<span class="sk-lineno">10</span>`)
	require.Contains(t, out, `<span class="sk-lineno">11</span>`)
}

func TestRenderMissingConfig(t *testing.T) {
	t.Parallel()

	_, err := New().Render(context.Background(), &config.Section{ID: "empty", Type: "codeviewer"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "codeviewer configuration missing")
}

func TestRenderCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Render(ctx, section(config.CodeViewerSection{Source: "x"}))
	require.ErrorIs(t, err, context.Canceled)
}

func TestLanguageLabelFromExtension(t *testing.T) {
	t.Parallel()

	cases := []struct {
		filename string
		want     string
	}{
		{"theme.liquid", "Liquid"},
		{"index.HTML", "HTML"},
		{"styles.css", "CSS"},
		{"data.json", "JSON"},
		{"notes.txt", ""},
		{"", ""},
	}

	for _, tc := range cases {
		got := languageLabel(&config.CodeViewerSection{Filename: tc.filename})
		require.Equal(t, tc.want, got, tc.filename)
	}
}
