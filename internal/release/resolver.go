package release

import (
	"fmt"

	"github.com/wahlandcase/relgate/internal/models"
)

// ResolveStrategy returns which strategy covers base and the branch its
// release PR targets. Same-branch membership wins over a release-branch
// mapping for the same base.
func ResolveStrategy(strategy models.MergeStrategy, base string) (models.StrategyKind, string) {
	if strategy.HasSameBranch(base) {
		return models.StrategySameBranch, base
	}
	if dest, ok := strategy.Destination(base); ok {
		return models.StrategyReleaseBranch, dest
	}
	return models.StrategyNone, ""
}

// ResolveDestination returns the destination branch for base, or false if
// no strategy applies
func ResolveDestination(strategy models.MergeStrategy, base string) (string, bool) {
	kind, dest := ResolveStrategy(strategy, base)
	return dest, kind != models.StrategyNone
}

// NoStrategyError is returned when a base branch isn't covered by the merge strategy
type NoStrategyError struct {
	Base string
}

func (e *NoStrategyError) Error() string {
	return fmt.Sprintf("no merge strategy configured for branch %q", e.Base)
}

// StagingBranchName returns the working branch a release is prepared on
func StagingBranchName(nextVersion string) string {
	return "releases/v" + nextVersion
}

// ComposePullRequest resolves the destination for base and assembles the
// context needed to render the release PR
func ComposePullRequest(repoURL, base, currentVersion, nextVersion string, strategy models.MergeStrategy) (models.PullRequestContext, error) {
	dest, ok := ResolveDestination(strategy, base)
	if !ok {
		return models.PullRequestContext{}, &NoStrategyError{Base: base}
	}
	return models.PullRequestContext{
		RepoURL:           repoURL,
		BaseBranch:        base,
		StagingBranch:     StagingBranchName(nextVersion),
		DestinationBranch: dest,
		MergeStrategy:     strategy.Clone(),
		CurrentVersion:    currentVersion,
		NextVersion:       nextVersion,
	}, nil
}
