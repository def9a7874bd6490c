package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGreen    = lipgloss.Color("#00FF00")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorMagenta  = lipgloss.Color("#FF00FF")
	ColorPurple   = lipgloss.Color("#AA55FF")
	ColorOrange   = lipgloss.Color("#FFA500")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorDarkGray = lipgloss.Color("8")
)

// BranchColor picks a color by branch role: release branches are orange,
// staging branches yellow, long-lived mainline branches red
func BranchColor(branch string) lipgloss.Color {
	switch {
	case branch == "main" || branch == "master":
		return ColorRed
	case strings.HasPrefix(branch, "releases/"):
		return ColorYellow
	case strings.HasPrefix(branch, "release/"):
		return ColorOrange
	case branch == "dev" || branch == "develop":
		return ColorGreen
	default:
		return ColorWhite
	}
}
