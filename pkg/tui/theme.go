package tui

import "github.com/charmbracelet/lipgloss"

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted      lipgloss.TerminalColor = ac("240", "243")
	colorAccent     lipgloss.TerminalColor = ac("27", "62")
	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")

	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1)
	styleHead     = lipgloss.NewStyle().Bold(true)
	styleSelected = lipgloss.NewStyle().Bold(true).Foreground(colorSelectedFg).Background(colorSelectedBg)
	styleDisabled = lipgloss.NewStyle().Foreground(colorMuted)
	styleBody     = lipgloss.NewStyle().PaddingLeft(bodyIndent)
	styleHelp     = lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1)
)

// bodyIndent is the left padding of item bodies in columns.
const bodyIndent = 4
