package app

import (
	"errors"
	"strings"
	"testing"

	"github.com/wahlandcase/relgate/internal/models"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func testPreview() Preview {
	return Preview{
		Facts: models.RepoFacts{
			CurrentBranch: "master",
			RepoURL:       "https://github.com/algolia/shipjs",
		},
		Strategy:       models.MergeStrategy{ToSameBranch: []string{"master"}},
		Verdict:        models.Proceed,
		CommitMessage:  "chore: release v0.1.1",
		PullRequest:    "chore: release v0.1.1\n\n## Release Summary",
		CurrentVersion: "0.1.0",
		NextVersion:    "0.1.1",
	}
}

func press(t *testing.T, m Model, key tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(key)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func TestModel_PaneCycling(t *testing.T) {
	tab := tea.KeyMsg{Type: tea.KeyTab}
	shiftTab := tea.KeyMsg{Type: tea.KeyShiftTab}

	m := New(testPreview())
	if m.Pane() != PaneSummary {
		t.Fatalf("initial pane = %v, want Summary", m.Pane())
	}

	m = press(t, m, tab)
	if m.Pane() != PaneCommitMessage {
		t.Errorf("after tab pane = %v, want Commit Message", m.Pane())
	}
	m = press(t, m, tab)
	m = press(t, m, tab)
	if m.Pane() != PaneSummary {
		t.Errorf("tab should wrap around, got %v", m.Pane())
	}

	m = press(t, m, shiftTab)
	if m.Pane() != PanePullRequest {
		t.Errorf("shift+tab should wrap backwards, got %v", m.Pane())
	}
}

func TestModel_Quit(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune("q")},
	} {
		t.Run(key.String(), func(t *testing.T) {
			next, cmd := New(testPreview()).Update(key)
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("expected tea.QuitMsg")
			}
			if next.View() != "" {
				t.Errorf("View() after quit should be empty")
			}
		})
	}
}

func TestModel_ScrollClamps(t *testing.T) {
	p := testPreview()
	p.CommitMessage = strings.Repeat("line\n", 100)

	m := New(p)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})

	up := tea.KeyMsg{Type: tea.KeyUp}
	m = press(t, m, up)
	if m.scroll != 0 {
		t.Errorf("scroll = %d, want 0", m.scroll)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	if m.scroll != m.maxScroll() || m.scroll == 0 {
		t.Errorf("G should jump to bottom, scroll = %d max = %d", m.scroll, m.maxScroll())
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.scroll != m.maxScroll() {
		t.Errorf("scroll past bottom = %d, want %d", m.scroll, m.maxScroll())
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	if m.scroll != 0 {
		t.Errorf("g should jump to top, scroll = %d", m.scroll)
	}
}

func TestModel_View(t *testing.T) {
	m := New(testPreview())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	m = next.(Model)

	view := m.View()
	for _, want := range []string{"Summary", "Release can proceed", "master"} {
		if !strings.Contains(view, want) {
			t.Errorf("summary view missing %q", want)
		}
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if view := m.View(); !strings.Contains(view, "## Release Summary") {
		t.Errorf("pull request view missing body:\n%s", view)
	}
}

func TestModel_PullRequestError(t *testing.T) {
	p := testPreview()
	p.PullRequest = ""
	p.PullRequestErr = errors.New(`no merge strategy configured for branch "develop"`)

	m := New(p)
	m.pane = PanePullRequest
	lines := m.paneLines()
	if len(lines) != 1 || !strings.Contains(lines[0], "develop") {
		t.Errorf("paneLines() = %v", lines)
	}
}

func TestApplyScroll(t *testing.T) {
	lines := []string{"a", "b", "c", "d", "e"}

	if got := applyScroll(lines, 0, 10); got != "a\nb\nc\nd\ne" {
		t.Errorf("no scroll needed: got %q", got)
	}
	if got := applyScroll(lines, 0, 3); got != "a\nb\n  ▼ more below" {
		t.Errorf("top window: got %q", got)
	}
	if got := applyScroll(lines, 99, 3); got != "  ▲ more above\nd\ne" {
		t.Errorf("bottom window: got %q", got)
	}
	if lines[0] != "a" {
		t.Errorf("applyScroll mutated input")
	}
}

func TestVersionChange(t *testing.T) {
	if got := versionChange("0.1.0", "0.1.1"); got != "v0.1.0 → v0.1.1" {
		t.Errorf("versionChange() = %q", got)
	}
	if got := versionChange("0.1.0", ""); got != "v0.1.0" {
		t.Errorf("versionChange() = %q", got)
	}
}
