package highlight

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaskUnmaskRoundTrip(t *testing.T) {
	t.Parallel()

	h := New(nil)
	annotated := h.delimiterPass(Escape("{% if x %} plain {% endif %}"))

	wantSpans := spanRe.FindAllString(annotated, -1)
	require.Len(t, wantSpans, 6) // two marker pairs plus the if/endif keywords

	masked, spans := mask(annotated, nil)

	// Exactly one placeholder per span, in order, and no span text left.
	require.Equal(t, wantSpans, spans)
	require.Len(t, placeholderRe.FindAllString(masked, -1), len(spans))
	require.NotContains(t, masked, "<span")
	require.NotContains(t, masked, "</span>")

	restored, err := unmask(masked, spans)
	require.NoError(t, err)
	require.Equal(t, annotated, restored)
	require.NotContains(t, restored, placeholderMark)
}

func TestMaskAppendsToExistingTable(t *testing.T) {
	t.Parallel()

	h := New(nil)

	first, spans := mask(h.delimiterPass("{% raw %}"), nil)
	require.Len(t, spans, 3)

	second, spans := mask(h.commentPass("{# note #}"), spans)
	require.Len(t, spans, 4)
	require.Contains(t, second, placeholderMark+"3\x00")

	// Indices from both rounds restore through the same table.
	restoredFirst, err := unmask(first, spans)
	require.NoError(t, err)
	require.Contains(t, restoredFirst, "raw")

	restoredSecond, err := unmask(second, spans)
	require.NoError(t, err)
	require.Contains(t, restoredSecond, "note")
}

func TestUnmaskRestoresByIndexNotPosition(t *testing.T) {
	t.Parallel()

	spans := []string{
		`<span style="color:#111111">first</span>`,
		`<span style="color:#222222">second</span>`,
	}

	// Placeholders deliberately out of positional order.
	line := "\x00mask1\x00 then \x00mask0\x00"

	restored, err := unmask(line, spans)
	require.NoError(t, err)
	require.Equal(t, spans[1]+" then "+spans[0], restored)
}

func TestUnmaskResolvesNestedPlaceholders(t *testing.T) {
	t.Parallel()

	spans := []string{
		`<span style="color:#111111">inner</span>`,
		`<span style="color:#222222">before \x00 after</span>`,
	}
	spans[1] = `<span style="color:#222222">before ` + "\x00mask0\x00" + ` after</span>`

	restored, err := unmask("\x00mask1\x00", spans)
	require.NoError(t, err)
	require.NotContains(t, restored, placeholderMark)
	require.Contains(t, restored, ">inner</span>")
}

func TestUnmaskMissingIndexFailsLoudly(t *testing.T) {
	t.Parallel()

	_, err := unmask("\x00mask5\x00", []string{"only one"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no span for placeholder 5")
}

func TestUnmaskPlaceholderWithEmptyTableFails(t *testing.T) {
	t.Parallel()

	_, err := unmask("\x00mask0\x00", nil)
	require.Error(t, err)
}

func TestMaskedLineHidesSpansFromContentPasses(t *testing.T) {
	t.Parallel()

	h := New(nil)

	// Structural annotation wraps the digits; after masking the content
	// pass has nothing numeric to match.
	annotated := h.tagPass(Escape(`<img width="1200">`))
	masked, spans := mask(annotated, nil)

	require.NotContains(t, masked, "1200")
	require.Equal(t, masked, h.contentPass(masked))

	restored, err := unmask(masked, spans)
	require.NoError(t, err)
	require.Equal(t, annotated, restored)
}

func TestEscapeIdempotent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"ampersand", "a & b", "a &amp; b"},
		{"angle brackets", "<p>", "&lt;p&gt;"},
		{"already escaped amp", "a &amp; b", "a &amp; b"},
		{"already escaped brackets", "&lt;p&gt;", "&lt;p&gt;"},
		{"mixed", "x < &amp; > y", "x &lt; &amp; &gt; y"},
		{"nbsp preserved", "&nbsp;", "&nbsp;"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Escape(tc.in)
			require.Equal(t, tc.want, got)
			require.Equal(t, got, Escape(got))
		})
	}
}
