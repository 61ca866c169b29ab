package preview

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.Color("99")  // Purple
	accentColor  = lipgloss.Color("212") // Pink
	mutedColor   = lipgloss.Color("245") // Gray
	codeColor    = lipgloss.Color("114") // Green
	hiddenColor  = lipgloss.Color("240") // Dim gray

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(2).
			PaddingRight(2).
			MarginBottom(1)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			PaddingRight(2)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				PaddingRight(2).
				Foreground(accentColor).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true).
				BorderForeground(primaryColor)

	hiddenItemStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			PaddingRight(2).
			Foreground(hiddenColor)

	detailTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor)

	fieldNameStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	codeLineStyle = lipgloss.NewStyle().
			Foreground(codeColor)

	lineNumberStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(5).
			Align(lipgloss.Right).
			MarginRight(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingLeft(2).
			MarginTop(1)
)
