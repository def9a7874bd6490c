package app

import (
	"github.com/wahlandcase/relgate/internal/models"

	tea "github.com/charmbracelet/bubbletea"
)

// Preview is everything the TUI displays. It's computed up front; the model
// never calls back into git or the engine.
type Preview struct {
	Facts         models.RepoFacts
	Strategy      models.MergeStrategy
	Verdict       models.Verdict
	CommitMessage string
	// PullRequest is the rendered PR body; empty when PullRequestErr is set
	PullRequest    string
	PullRequestErr error
	CurrentVersion string
	NextVersion    string
}

// Model is the preview application state
type Model struct {
	preview Preview

	pane       Pane
	scroll     int
	shouldQuit bool

	width  int
	height int
}

// New creates a new preview model
func New(p Preview) Model {
	return Model{
		preview: p,
		pane:    PaneSummary,
		width:   80,
		height:  24,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Pane returns the pane currently shown
func (m Model) Pane() Pane {
	return m.pane
}
