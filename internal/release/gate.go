package release

import (
	"strings"

	"github.com/wahlandcase/relgate/internal/models"
)

// ShouldRelease checks the commit message first, then the branch. The
// expected message uses the current version because the commit being
// evaluated already carries the version it releases.
func ShouldRelease(ctx models.ReleaseContext) models.Verdict {
	expected := FormatCommitMessage(ctx.CurrentVersion)
	if !strings.HasPrefix(ctx.CommitMessage, expected) {
		return models.Blocked("The commit message should have started with the following:\n" + expected)
	}

	acceptable := ctx.MergeStrategy.AcceptableBranches()
	for _, b := range acceptable {
		if b == ctx.CurrentBranch {
			return models.Proceed
		}
	}
	return models.Blocked("The current branch needs to be one of [" + strings.Join(acceptable, ", ") + "]")
}

// ShouldReleaseResult is ShouldRelease flattened to an (ok, reason) pair
func ShouldReleaseResult(ctx models.ReleaseContext) (bool, string) {
	return models.VerdictResult(ShouldRelease(ctx))
}
