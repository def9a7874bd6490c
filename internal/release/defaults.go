package release

import "github.com/wahlandcase/relgate/internal/models"

// Defaults is the fallback used when the user config doesn't override a field
type Defaults struct {
	MergeStrategy            models.MergeStrategy
	FormatCommitMessage      func(nextVersion string) string
	FormatPullRequestMessage func(models.PullRequestContext) string
	ShouldRelease            func(models.ReleaseContext) models.Verdict
}

// DefaultConfig returns a fresh Defaults value on every call
func DefaultConfig() Defaults {
	return Defaults{
		MergeStrategy: models.MergeStrategy{
			ToSameBranch:    []string{"master"},
			ToReleaseBranch: []models.BranchMapping{},
		},
		FormatCommitMessage:      FormatCommitMessage,
		FormatPullRequestMessage: FormatPullRequestMessage,
		ShouldRelease:            ShouldRelease,
	}
}
