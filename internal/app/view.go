package app

import (
	"fmt"
	"strings"

	"github.com/wahlandcase/relgate/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

// contentWidth returns the usable content width, adapting to terminal size
func (m Model) contentWidth() int {
	return max(m.width-8, 40)
}

// visibleLines is how many pane lines fit between the banner and the status bar
func (m Model) visibleLines() int {
	// banner + gap + tabs + gap + box border/padding + gap + status bar
	chrome := len(ui.Banner) + 1 + 1 + 1 + 4 + 1 + 1
	return max(m.height-chrome, 5)
}

// View renders the application
func (m Model) View() string {
	if m.shouldQuit {
		return ""
	}

	sections := []string{
		ui.RenderBanner(),
		"",
		m.renderTabs(),
		"",
	}

	outerBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorPurple).
		Width(m.contentWidth()).
		Padding(1, 2)
	sections = append(sections, outerBox.Render(m.renderPane()))

	sections = append(sections, "")
	sections = append(sections, ui.KeyHints("tab", "next pane", "j/k", "scroll", "q", "quit"))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, content)
}

func (m Model) renderTabs() string {
	active := lipgloss.NewStyle().Foreground(ui.ColorCyan).Bold(true).Underline(true)
	inactive := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)

	var tabs []string
	for i := range paneNames {
		p := Pane(i)
		if p == m.pane {
			tabs = append(tabs, active.Render(p.String()))
		} else {
			tabs = append(tabs, inactive.Render(p.String()))
		}
	}
	return strings.Join(tabs, "   ")
}

func (m Model) renderPane() string {
	return applyScroll(m.paneLines(), m.scroll, m.visibleLines())
}

func (m Model) paneLines() []string {
	switch m.pane {
	case PaneSummary:
		return strings.Split(m.renderSummary(), "\n")
	case PaneCommitMessage:
		return strings.Split(m.preview.CommitMessage, "\n")
	case PanePullRequest:
		if m.preview.PullRequestErr != nil {
			errStyle := lipgloss.NewStyle().Foreground(ui.ColorRed)
			return []string{errStyle.Render("No pull request: " + m.preview.PullRequestErr.Error())}
		}
		return strings.Split(m.preview.PullRequest, "\n")
	default:
		return nil
	}
}

func (m Model) renderSummary() string {
	p := m.preview
	label := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
	value := lipgloss.NewStyle().Foreground(ui.ColorWhite).Bold(true)

	lines := []string{
		ui.SectionHeader("REPOSITORY", ui.ColorCyan),
		fmt.Sprintf("    %s %s", label.Render("Branch: "), value.Render(p.Facts.CurrentBranch)),
		fmt.Sprintf("    %s %s", label.Render("Version:"), value.Render(versionChange(p.CurrentVersion, p.NextVersion))),
	}
	if p.Facts.RepoURL != "" {
		lines = append(lines, fmt.Sprintf("    %s %s", label.Render("Remote: "), value.Render(p.Facts.RepoURL)))
	}

	lines = append(lines, "", ui.SectionHeader("GATE", ui.ColorMagenta))
	for _, l := range strings.Split(ui.RenderVerdict(p.Verdict), "\n") {
		lines = append(lines, "    "+l)
	}

	lines = append(lines, "", ui.RenderStrategy(p.Strategy))
	return strings.Join(lines, "\n")
}

func versionChange(current, next string) string {
	if next == "" || next == current {
		return "v" + current
	}
	return "v" + current + " → v" + next
}

// applyScroll windows lines starting at offset, marking hidden content
func applyScroll(lines []string, offset, visible int) string {
	if len(lines) <= visible {
		return strings.Join(lines, "\n")
	}

	offset = min(max(offset, 0), len(lines)-visible)
	end := offset + visible

	// Copy to avoid mutating the caller's slice
	window := make([]string, end-offset)
	copy(window, lines[offset:end])

	dimStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
	if offset > 0 {
		window[0] = dimStyle.Render("  ▲ more above")
	}
	if end < len(lines) {
		window[len(window)-1] = dimStyle.Render("  ▼ more below")
	}
	return strings.Join(window, "\n")
}
