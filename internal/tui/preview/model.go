// Package preview implements the interactive section preview TUI.
package preview

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sectionkit/sectionkit/internal/config"
)

type keyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous section"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next section"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model contains the Bubbletea state for the section preview.
type Model struct {
	page     *config.Page
	selected int
	viewport viewport.Model
	keys     keyMap
	width    int
	height   int
	ready    bool
	quitting bool
}

// NewModel constructs a preview model for the given page document.
func NewModel(page *config.Page) Model {
	return Model{
		page: page,
		keys: defaultKeyMap(),
	}
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the index of the currently selected section.
func (m Model) Selected() int {
	return m.selected
}
