package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	skerrors "github.com/sectionkit/sectionkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParsePage loads a page document from disk, validates it, and returns the resulting model.
func ParsePage(path string) (*Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, skerrors.NewParseError(path, 0, err)
	}

	var page Page
	if err := yaml.Unmarshal(data, &page); err != nil {
		return nil, skerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidatePage(&page); err != nil {
		return nil, err
	}

	return &page, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
