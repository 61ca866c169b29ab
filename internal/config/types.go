package config

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Page represents a full sectionkit page document.
type Page struct {
	Version     string    `yaml:"version" validate:"required,semver"`
	Name        string    `yaml:"name" validate:"required,min=1,max=100"`
	Description string    `yaml:"description,omitempty"`
	Theme       Theme     `yaml:"theme,omitempty"`
	Sections    []Section `yaml:"sections" validate:"required,min=1,dive"`
}

// Theme holds page-level presentation settings shared by all sections.
type Theme struct {
	Accent     string `yaml:"accent,omitempty" validate:"omitempty,hex_color"`
	Background string `yaml:"background,omitempty" validate:"omitempty,hex_color"`
	MaxWidth   int    `yaml:"max_width,omitempty" validate:"omitempty,min=320,max=3840"`
}

// Section describes one renderable block on the page.
type Section struct {
	ID     string `yaml:"id" validate:"required,section_id"`
	Title  string `yaml:"title,omitempty"`
	Type   string `yaml:"type" validate:"required,oneof=codeviewer gallery accordion navbar emailform"`
	Hidden bool   `yaml:"hidden,omitempty"`

	CodeViewer *CodeViewerSection `yaml:",inline,omitempty"`
	Gallery    *GallerySection    `yaml:",inline,omitempty"`
	Accordion  *AccordionSection  `yaml:",inline,omitempty"`
	Navbar     *NavbarSection     `yaml:",inline,omitempty"`
	EmailForm  *EmailFormSection  `yaml:",inline,omitempty"`
}

// UnmarshalYAML customises section decoding to populate type-specific structures without conflicts.
func (s *Section) UnmarshalYAML(value *yaml.Node) error {
	type baseSection struct {
		ID     string `yaml:"id"`
		Title  string `yaml:"title"`
		Type   string `yaml:"type"`
		Hidden bool   `yaml:"hidden"`
	}

	var base baseSection
	if err := value.Decode(&base); err != nil {
		return err
	}

	s.ID = base.ID
	s.Title = base.Title
	s.Type = base.Type
	s.Hidden = base.Hidden

	s.CodeViewer = nil
	s.Gallery = nil
	s.Accordion = nil
	s.Navbar = nil
	s.EmailForm = nil

	switch base.Type {
	case "codeviewer":
		var cv CodeViewerSection
		if err := value.Decode(&cv); err != nil {
			return err
		}
		s.CodeViewer = &cv
	case "gallery":
		var g GallerySection
		if err := value.Decode(&g); err != nil {
			return err
		}
		s.Gallery = &g
	case "accordion":
		var a AccordionSection
		if err := value.Decode(&a); err != nil {
			return err
		}
		s.Accordion = &a
	case "navbar":
		var n NavbarSection
		if err := value.Decode(&n); err != nil {
			return err
		}
		s.Navbar = &n
	case "emailform":
		var e EmailFormSection
		if err := value.Decode(&e); err != nil {
			return err
		}
		s.EmailForm = &e
	}

	return nil
}

// CodeViewerSection renders a highlighted code snippet.
type CodeViewerSection struct {
	Source         string `yaml:"source" validate:"required,min=1"`
	Filename       string `yaml:"filename,omitempty"`
	Language       string `yaml:"language,omitempty"`
	LineNumbers    bool   `yaml:"line_numbers,omitempty"`
	LineNumbersSet bool   `yaml:"-"`
	StartLine      int    `yaml:"start_line,omitempty" validate:"omitempty,min=1"`
}

// UnmarshalYAML applies defaults for code viewer sections: line numbers are
// on unless the document says otherwise.
func (c *CodeViewerSection) UnmarshalYAML(value *yaml.Node) error {
	type rawCodeViewer CodeViewerSection
	var temp rawCodeViewer
	if err := value.Decode(&temp); err != nil {
		return err
	}
	*c = CodeViewerSection(temp)
	c.LineNumbersSet = hasYAMLKey(value, "line_numbers")
	if !c.LineNumbersSet {
		c.LineNumbers = true
	}
	return nil
}

// GallerySection renders a responsive grid of media cards.
type GallerySection struct {
	Columns int           `yaml:"columns,omitempty" validate:"omitempty,min=1,max=6"`
	Items   []GalleryItem `yaml:"items" validate:"required,min=1,dive"`
}

// GalleryItem is one media card.
type GalleryItem struct {
	URL     string `yaml:"url" validate:"required,url"`
	Alt     string `yaml:"alt,omitempty"`
	Caption string `yaml:"caption,omitempty"`
}

// AccordionSection renders collapsible items parsed from a text block.
// Each paragraph of content becomes one item; a "::" separates the item
// title from its body.
type AccordionSection struct {
	Content     string `yaml:"content" validate:"required,min=1"`
	OpenFirst   bool   `yaml:"open_first,omitempty"`
	TitleSuffix string `yaml:"title_suffix,omitempty"`
}

// NavbarSection renders a navigation bar.
type NavbarSection struct {
	Brand string    `yaml:"brand" validate:"required,min=1,max=60"`
	Links []NavLink `yaml:"links,omitempty" validate:"omitempty,dive"`
	CTA   *NavLink  `yaml:"cta,omitempty"`
}

// NavLink is a single labelled link.
type NavLink struct {
	Label string `yaml:"label" validate:"required,min=1,max=60"`
	URL   string `yaml:"url" validate:"required"`
}

// EmailFormSection renders an email-capture form.
type EmailFormSection struct {
	Heading     string `yaml:"heading,omitempty"`
	Placeholder string `yaml:"placeholder,omitempty"`
	ButtonLabel string `yaml:"button_label,omitempty"`
	Action      string `yaml:"action" validate:"required,url"`
	Honeypot    bool   `yaml:"honeypot,omitempty"`
}

func hasYAMLKey(node *yaml.Node, key string) bool {
	if node == nil || node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i < len(node.Content); i += 2 {
		k := node.Content[i]
		if strings.EqualFold(k.Value, key) {
			return true
		}
	}
	return false
}
