package models

// ReleaseContext holds the facts the release gate evaluates
type ReleaseContext struct {
	// CommitMessage is the message of the commit being released
	CommitMessage string
	// CurrentVersion is the version the commit was tagged with (e.g., "0.1.2")
	CurrentVersion string
	// CurrentBranch is the branch the commit lives on
	CurrentBranch string
	MergeStrategy MergeStrategy
}

// PullRequestContext holds everything needed to render a release PR body
type PullRequestContext struct {
	// RepoURL is the browsable repository URL (e.g., "https://github.com/org/repo")
	RepoURL           string
	BaseBranch        string
	StagingBranch     string
	DestinationBranch string
	MergeStrategy     MergeStrategy
	CurrentVersion    string
	NextVersion       string
}
