package ui

import (
	"fmt"
	"strings"

	"github.com/wahlandcase/relgate/internal/models"

	"github.com/charmbracelet/lipgloss"
)

// SectionHeader creates a styled section header with a title and color
// Example: "─── TITLE ───────────"
func SectionHeader(title string, color lipgloss.Color) string {
	dashes := strings.Repeat("─", max(25-len(title), 0))
	headerStyle := lipgloss.NewStyle().Foreground(color)
	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return fmt.Sprintf("%s%s%s",
		headerStyle.Render("  ─── "),
		titleStyle.Render(title),
		headerStyle.Render(" "+dashes),
	)
}

// BranchFlow renders a one-line "staging ====> destination" arrow
func BranchFlow(from, to string) string {
	fromStyle := lipgloss.NewStyle().Foreground(BranchColor(from)).Bold(true)
	toStyle := lipgloss.NewStyle().Foreground(BranchColor(to)).Bold(true)
	arrowStyle := lipgloss.NewStyle().Foreground(ColorCyan)

	return fromStyle.Render(from) + arrowStyle.Render(" ====> ") + toStyle.Render(to)
}

// RenderVerdict renders the gate outcome; the blocked reason keeps its line breaks
func RenderVerdict(v models.Verdict) string {
	if models.IsProceed(v) {
		return lipgloss.NewStyle().Foreground(ColorGreen).Bold(true).Render("✓ Release can proceed")
	}

	head := lipgloss.NewStyle().Foreground(ColorRed).Bold(true).Render("✗ Release blocked")
	reason := lipgloss.NewStyle().Foreground(ColorYellow).Render(models.VerdictReason(v))
	return head + "\n" + reason
}

// RenderStrategy lists every configured base branch and where its releases go
func RenderStrategy(s models.MergeStrategy) string {
	dim := lipgloss.NewStyle().Foreground(ColorDarkGray)

	var lines []string
	lines = append(lines, SectionHeader("SAME BRANCH", ColorGreen))
	if len(s.ToSameBranch) == 0 {
		lines = append(lines, dim.Render("    (none)"))
	}
	for _, b := range s.ToSameBranch {
		lines = append(lines, "    "+BranchFlow(b, b))
	}

	lines = append(lines, "")
	lines = append(lines, SectionHeader("RELEASE BRANCH", ColorOrange))
	if len(s.ToReleaseBranch) == 0 {
		lines = append(lines, dim.Render("    (none)"))
	}
	for _, m := range s.ToReleaseBranch {
		lines = append(lines, "    "+BranchFlow(m.Base, m.Destination))
	}

	return strings.Join(lines, "\n")
}

// KeyHints renders "key action" pairs for the status bar
func KeyHints(pairs ...string) string {
	keyStyle := lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(ColorDarkGray)

	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, keyStyle.Render(pairs[i])+" "+descStyle.Render(pairs[i+1]))
	}
	return strings.Join(parts, descStyle.Render(" │ "))
}
