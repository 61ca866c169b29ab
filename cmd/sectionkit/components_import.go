package main

// Blank imports register every built-in component with the registry at
// process start.
import (
	_ "github.com/sectionkit/sectionkit/internal/components/accordion"
	_ "github.com/sectionkit/sectionkit/internal/components/codeviewer"
	_ "github.com/sectionkit/sectionkit/internal/components/emailform"
	_ "github.com/sectionkit/sectionkit/internal/components/gallery"
	_ "github.com/sectionkit/sectionkit/internal/components/navbar"
)
