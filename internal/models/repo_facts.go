package models

// RepoFacts holds what was read from the local git repository
type RepoFacts struct {
	// Path to the repository root
	Path string
	// CurrentBranch is the short name of the checked out branch
	CurrentBranch string
	// CommitMessage is the full message of the HEAD commit
	CommitMessage string
	// RepoURL is the origin remote as a browsable https URL (empty if no origin)
	RepoURL string
}
