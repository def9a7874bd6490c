package app

// Pane represents which rendered text the preview is showing
type Pane int

const (
	PaneSummary Pane = iota
	PaneCommitMessage
	PanePullRequest
)

var paneNames = []string{
	"Summary",
	"Commit Message",
	"Pull Request",
}

func (p Pane) String() string {
	if int(p) < len(paneNames) {
		return paneNames[p]
	}
	return "Unknown"
}

// next cycles through panes in order, wrapping around
func (p Pane) next() Pane {
	return Pane((int(p) + 1) % len(paneNames))
}

func (p Pane) prev() Pane {
	return Pane((int(p) + len(paneNames) - 1) % len(paneNames))
}
