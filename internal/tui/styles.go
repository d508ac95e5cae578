package tui

import (
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Button style for the select control
	ButtonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4F4FB7")).
			Padding(0, 3)

	// Title style for the dialog
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4F4FB7")).
			Padding(0, 1)

	// Status style for info messages
	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#959595"))

	// Error style for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000"))

	// Help line under the dialog
	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5A9"))

	// Dialog frame
	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1)

	// File picker styles
	FilePickerSelected = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.Color("#4F4FB7"))

	FilePickerFile = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCCCCC"))

	FilePickerDirectory = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#81A1C1")).
				Bold(true)

	FilePickerDisabled = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666"))
)

func filePickerStyles() filepicker.Styles {
	s := filepicker.DefaultStyles()
	s.Cursor = FilePickerSelected
	s.Selected = FilePickerSelected
	s.File = FilePickerFile
	s.Directory = FilePickerDirectory
	s.DisabledFile = FilePickerDisabled
	return s
}
