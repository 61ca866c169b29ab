package component

import (
	"context"

	"github.com/sectionkit/sectionkit/internal/config"
)

// Metadata describes a component's identity for discovery and the list command.
type Metadata struct {
	// Name is the human-facing component name.
	Name string
	// Type is the section type the component renders; it keys the registry.
	Type string
	// Version identifies the component implementation.
	Version string
	// APIVersion pins compatibility with the component contract.
	APIVersion string
	// Description is a one-line summary for catalogs and help output.
	Description string
}

// Component defines the contract all sectionkit section renderers satisfy.
//
// Implementations should:
//   - Return identity via Metadata()
//   - Provide their configuration schema via Schema()
//   - Implement Render() as a pure function of the section configuration
type Component interface {
	// Metadata returns the component's identity and description.
	Metadata() Metadata

	// Schema returns a struct that defines the YAML configuration schema
	// for this component's sections.
	Schema() any

	// Render converts a validated section configuration into an HTML
	// fragment. It must not mutate any shared state: the same section must
	// always produce the same fragment.
	Render(ctx context.Context, section *config.Section) (string, error)
}
