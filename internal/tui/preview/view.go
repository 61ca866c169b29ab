package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sectionkit/sectionkit/internal/config"
	accordioncomponent "github.com/sectionkit/sectionkit/internal/components/accordion"
)

// View renders the section list next to the detail pane.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.page == nil {
		return titleStyle.Render("No page loaded")
	}
	if !m.ready {
		return titleStyle.Render("Loading preview…")
	}

	title := titleStyle.Render(fmt.Sprintf("Preview: %s", m.page.Name))
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sectionList(), m.viewport.View())
	help := helpStyle.Render("↑/↓ select section · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, body, help)
}

func (m Model) sectionList() string {
	var b strings.Builder
	for i, section := range m.page.Sections {
		label := fmt.Sprintf("%s (%s)", section.ID, section.Type)
		switch {
		case i == m.selected:
			b.WriteString(selectedItemStyle.Width(listWidth).Render(label))
		case section.Hidden:
			b.WriteString(hiddenItemStyle.Width(listWidth).Render(label + " ·hidden"))
		default:
			b.WriteString(itemStyle.Width(listWidth).Render(label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// detailContent builds the terminal rendition of the selected section.
func (m Model) detailContent() string {
	if m.page == nil || m.selected < 0 || m.selected >= len(m.page.Sections) {
		return ""
	}
	section := m.page.Sections[m.selected]

	var b strings.Builder
	b.WriteString(detailTitleStyle.Render(section.ID))
	b.WriteString("\n\n")

	switch {
	case section.CodeViewer != nil:
		b.WriteString(codePreview(section.CodeViewer))
	case section.Gallery != nil:
		b.WriteString(galleryPreview(section.Gallery))
	case section.Accordion != nil:
		b.WriteString(accordionPreview(section.Accordion))
	case section.Navbar != nil:
		b.WriteString(navbarPreview(section.Navbar))
	case section.EmailForm != nil:
		b.WriteString(emailFormPreview(section.EmailForm))
	default:
		b.WriteString(fieldNameStyle.Render("(no configuration)"))
	}

	return b.String()
}

func codePreview(cfg *config.CodeViewerSection) string {
	var b strings.Builder
	if cfg.Filename != "" {
		b.WriteString(fieldNameStyle.Render(cfg.Filename))
		b.WriteString("\n")
	}
	start := cfg.StartLine
	if start < 1 {
		start = 1
	}
	for i, line := range strings.Split(cfg.Source, "\n") {
		if cfg.LineNumbers {
			b.WriteString(lineNumberStyle.Render(fmt.Sprintf("%d", start+i)))
		}
		b.WriteString(codeLineStyle.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func galleryPreview(cfg *config.GallerySection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n\n", fieldNameStyle.Render("columns:"), cfg.Columns)
	for _, item := range cfg.Items {
		caption := item.Caption
		if caption == "" {
			caption = item.Alt
		}
		fmt.Fprintf(&b, "▣ %s %s\n", caption, fieldNameStyle.Render(item.URL))
	}
	return b.String()
}

func accordionPreview(cfg *config.AccordionSection) string {
	var b strings.Builder
	for _, item := range accordioncomponent.ParseItems(cfg.Content) {
		fmt.Fprintf(&b, "▸ %s\n", item.Title)
		if item.Body != "" {
			fmt.Fprintf(&b, "  %s\n", fieldNameStyle.Render(item.Body))
		}
	}
	return b.String()
}

func navbarPreview(cfg *config.NavbarSection) string {
	parts := []string{cfg.Brand}
	for _, link := range cfg.Links {
		parts = append(parts, link.Label)
	}
	if cfg.CTA != nil {
		parts = append(parts, "["+cfg.CTA.Label+"]")
	}
	return strings.Join(parts, "  ")
}

func emailFormPreview(cfg *config.EmailFormSection) string {
	var b strings.Builder
	if cfg.Heading != "" {
		b.WriteString(cfg.Heading)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "[ %s ] (%s)\n", cfg.Placeholder, fieldNameStyle.Render(cfg.Action))
	return b.String()
}
