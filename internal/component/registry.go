package component

import (
	"fmt"
	"sort"
	"sync"

	skerrors "github.com/sectionkit/sectionkit/pkg/errors"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Component)
)

// Register adds a component implementation for the provided section type.
func Register(sectionType string, c Component) error {
	if c == nil {
		return skerrors.NewComponentError(sectionType, fmt.Errorf("component is nil"))
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[sectionType]; exists {
		return skerrors.NewComponentError(sectionType, fmt.Errorf("component already registered"))
	}

	registry[sectionType] = c
	return nil
}

// Get retrieves a component by section type.
func Get(sectionType string) (Component, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	c, ok := registry[sectionType]
	if !ok {
		return nil, skerrors.NewComponentError(sectionType, fmt.Errorf("no component registered"))
	}

	return c, nil
}

// List returns all registered components sorted by section type.
func List() []Component {
	registryMu.RLock()
	defer registryMu.RUnlock()

	types := make([]string, 0, len(registry))
	for sectionType := range registry {
		types = append(types, sectionType)
	}
	sort.Strings(types)

	out := make([]Component, 0, len(types))
	for _, sectionType := range types {
		out = append(out, registry[sectionType])
	}
	return out
}

// Reset clears component registrations (for tests).
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]Component)
}
