package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.shouldQuit = true
		return m, tea.Quit
	}

	switch msg.String() {
	case "q", "esc":
		m.shouldQuit = true
		return m, tea.Quit
	case "tab", "right", "l":
		m.pane = m.pane.next()
		m.scroll = 0
	case "shift+tab", "left", "h":
		m.pane = m.pane.prev()
		m.scroll = 0
	case "down", "j":
		m.scroll++
		m.clampScroll()
	case "up", "k":
		if m.scroll > 0 {
			m.scroll--
		}
	case "g":
		m.scroll = 0
	case "G":
		m.scroll = m.maxScroll()
	}

	return m, nil
}

func (m *Model) clampScroll() {
	if limit := m.maxScroll(); m.scroll > limit {
		m.scroll = limit
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func (m Model) maxScroll() int {
	return max(len(m.paneLines())-m.visibleLines(), 0)
}
