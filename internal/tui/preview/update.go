package preview

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const listWidth = 32

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		detailWidth := m.width - listWidth - 2
		if detailWidth < 20 {
			detailWidth = 20
		}
		detailHeight := m.height - 6
		if detailHeight < 5 {
			detailHeight = 5
		}

		if !m.ready {
			m.viewport = viewport.New(detailWidth, detailHeight)
			m.ready = true
		} else {
			m.viewport.Width = detailWidth
			m.viewport.Height = detailHeight
		}
		m.viewport.SetContent(m.detailContent())
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.selected > 0 {
				m.selected--
				m.viewport.SetContent(m.detailContent())
				m.viewport.GotoTop()
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.page != nil && m.selected < len(m.page.Sections)-1 {
				m.selected++
				m.viewport.SetContent(m.detailContent())
				m.viewport.GotoTop()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}
