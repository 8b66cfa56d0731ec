package report

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kamilmatejuk/ascfmt/internal/color"
)

// Icon and style definitions for terminal output.
// Colors are handled by the global lipgloss color profile, which
// color.Mode.ConfigureColorProfile sets from the --color flag.
var (
	successIcon = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).SetString("✓")
	errorIcon   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).SetString("✗")
	skipIcon    = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).SetString("☐")
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	insertStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	deleteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// applyColorToIcon drops the icon's color when colors are off.
func applyColorToIcon(icon lipgloss.Style, mode color.Mode) lipgloss.Style {
	if mode.ShouldUseColors() {
		return icon
	}
	return lipgloss.NewStyle().SetString(icon.Value())
}

// applyColorToStyle returns a blank style when colors are off.
func applyColorToStyle(style lipgloss.Style, mode color.Mode) lipgloss.Style {
	if mode.ShouldUseColors() {
		return style
	}
	return lipgloss.NewStyle()
}
