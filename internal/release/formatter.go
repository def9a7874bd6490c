package release

import (
	"fmt"
	"strings"

	"github.com/wahlandcase/relgate/internal/models"
)

// FormatCommitMessage returns the release commit message for nextVersion
func FormatCommitMessage(nextVersion string) string {
	return "chore: release v" + nextVersion
}

// FormatPullRequestMessage renders the release PR body. The compare link is
// only added for the same-branch strategy; otherwise the body ends with a
// newline after the merge line.
func FormatPullRequestMessage(ctx models.PullRequestContext) string {
	var b strings.Builder
	b.WriteString(FormatCommitMessage(ctx.NextVersion))
	b.WriteString("\n\n## Release Summary\n")
	fmt.Fprintf(&b, "- Version change: `v%s` → `v%s`\n", ctx.CurrentVersion, ctx.NextVersion)
	fmt.Fprintf(&b, "- Merge: `%s` → `%s`\n", ctx.StagingBranch, ctx.DestinationBranch)

	if kind, _ := ResolveStrategy(ctx.MergeStrategy, ctx.BaseBranch); kind == models.StrategySameBranch {
		fmt.Fprintf(&b, "- [Compare the changes between the versions](%s/compare/v%s...%s)",
			ctx.RepoURL, ctx.CurrentVersion, ctx.StagingBranch)
	}
	return b.String()
}
