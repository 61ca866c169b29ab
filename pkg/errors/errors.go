package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures page configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RenderError represents a runtime failure while rendering a section.
type RenderError struct {
	SectionID string
	Err       error
}

// NewRenderError constructs a RenderError.
func NewRenderError(sectionID string, err error) error {
	return &RenderError{SectionID: sectionID, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.SectionID != "" {
		return fmt.Sprintf("render error on section %s: %v", e.SectionID, e.Err)
	}
	return fmt.Sprintf("render error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ComponentError indicates issues within component registration or lookup.
type ComponentError struct {
	Component string
	Message   string
	Err       error
}

// NewComponentError constructs a ComponentError for the given component type.
func NewComponentError(component string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ComponentError{Component: component, Message: message, Err: err}
}

func (e *ComponentError) Error() string {
	if e == nil {
		return ""
	}
	if e.Component != "" {
		return fmt.Sprintf("component error [%s]: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("component error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ComponentError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
