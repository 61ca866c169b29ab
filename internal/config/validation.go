package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	skerrors "github.com/sectionkit/sectionkit/pkg/errors"
)

// ValidatePage performs structural and cross-field validation on an entire page document.
func ValidatePage(page *Page) error {
	if page == nil {
		return skerrors.NewValidationError("page", "page is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(page); err != nil {
		return convertValidationError(err)
	}

	sectionIndex := make(map[string]int, len(page.Sections))

	for i, section := range page.Sections {
		if _, exists := sectionIndex[section.ID]; exists {
			return skerrors.NewValidationError(fieldForSection(i, "id"), fmt.Sprintf("duplicate section id %q", section.ID), nil)
		}

		if err := ValidateSection(section); err != nil {
			return err
		}

		sectionIndex[section.ID] = i
	}

	return nil
}

// ValidateSection inspects a single section for structural correctness independent of the page.
func ValidateSection(section Section) error {
	v := validatorInstance()
	if err := v.Struct(section); err != nil {
		return convertValidationError(err)
	}

	switch section.Type {
	case "codeviewer":
		if section.CodeViewer == nil {
			return skerrors.NewValidationError(section.ID, "codeviewer configuration is required", nil)
		}
		if err := v.Struct(section.CodeViewer); err != nil {
			return convertValidationError(err)
		}
	case "gallery":
		if section.Gallery == nil {
			return skerrors.NewValidationError(section.ID, "gallery configuration is required", nil)
		}
		if err := v.Struct(section.Gallery); err != nil {
			return convertValidationError(err)
		}
	case "accordion":
		if section.Accordion == nil {
			return skerrors.NewValidationError(section.ID, "accordion configuration is required", nil)
		}
		if err := v.Struct(section.Accordion); err != nil {
			return convertValidationError(err)
		}
	case "navbar":
		if section.Navbar == nil {
			return skerrors.NewValidationError(section.ID, "navbar configuration is required", nil)
		}
		if err := v.Struct(section.Navbar); err != nil {
			return convertValidationError(err)
		}
	case "emailform":
		if section.EmailForm == nil {
			return skerrors.NewValidationError(section.ID, "emailform configuration is required", nil)
		}
		if err := v.Struct(section.EmailForm); err != nil {
			return convertValidationError(err)
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into sectionkit validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return skerrors.NewValidationError(field, msg, err)
	}

	return skerrors.NewValidationError("page", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForSection(index int, field string) string {
	return fmt.Sprintf("sections[%d].%s", index, field)
}
