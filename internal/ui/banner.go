package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Banner is the ASCII art shown at the top of the preview
var Banner = []string{
	" ____  _____ _     ____    _  _____ _____ ",
	"|  _ \\| ____| |   / ___|  / \\|_   _| ____|",
	"| |_) |  _| | |  | |  _  / _ \\ | | |  _|  ",
	"|  _ <| |___| |__| |_| |/ ___ \\| | | |___ ",
	"|_| \\_\\_____|_____\\____/_/   \\_\\_| |_____|",
}

// RenderBanner returns the styled banner as a string
func RenderBanner() string {
	bannerStyle := lipgloss.NewStyle().
		Foreground(ColorCyan).
		Align(lipgloss.Center)

	var lines []string
	for _, line := range Banner {
		lines = append(lines, bannerStyle.Render(line))
	}
	return strings.Join(lines, "\n")
}
