package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wahlandcase/relgate/internal/git"
	"github.com/wahlandcase/relgate/internal/models"
	"github.com/wahlandcase/relgate/internal/release"

	"github.com/spf13/cobra"
)

func newMessageCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "message",
		Short: "Render release commit and pull request messages",
	}
	cmd.AddCommand(newCommitMessageCommand(), newPullRequestMessageCommand(opts))
	return cmd
}

func newCommitMessageCommand() *cobra.Command {
	var nextVersion string

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Print the release commit message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateVersion("next-version", nextVersion); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), release.FormatCommitMessage(nextVersion))
			return nil
		},
	}
	cmd.Flags().StringVar(&nextVersion, "next-version", "", "Version being released (e.g. 0.1.2)")
	return cmd
}

type pullRequestFlags struct {
	currentVersion string
	nextVersion    string
	base           string
	staging        string
	repoURL        string
}

func newPullRequestMessageCommand(opts *options) *cobra.Command {
	var f pullRequestFlags

	cmd := &cobra.Command{
		Use:   "pr",
		Short: "Print the release pull request body",
		Long: `Resolves the destination branch for --base (the current branch by default)
and prints the release pull request body. The staging branch defaults to
releases/v<next-version>.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := opts.composePullRequest(f)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), release.FormatPullRequestMessage(ctx))
			return nil
		},
	}

	cmd.Flags().StringVar(&f.currentVersion, "current-version", "", "Version currently released (e.g. 0.1.0)")
	cmd.Flags().StringVar(&f.nextVersion, "next-version", "", "Version being released (e.g. 0.1.1)")
	cmd.Flags().StringVar(&f.base, "base", "", "Base branch (defaults to the current branch)")
	cmd.Flags().StringVar(&f.staging, "staging", "", "Staging branch (defaults to releases/v<next-version>)")
	cmd.Flags().StringVar(&f.repoURL, "repo-url", "", "Repository URL for compare links (defaults to config, then origin)")
	return cmd
}

// composePullRequest fills in defaults from the repository and config, then
// resolves the destination branch
func (o *options) composePullRequest(f pullRequestFlags) (models.PullRequestContext, error) {
	if err := validateVersion("current-version", f.currentVersion); err != nil {
		return models.PullRequestContext{}, err
	}
	if err := validateVersion("next-version", f.nextVersion); err != nil {
		return models.PullRequestContext{}, err
	}

	base, repoURL := f.base, strings.TrimSuffix(f.repoURL, "/")
	if repoURL == "" {
		repoURL = o.cfg.RepoURL("")
	}
	if base == "" || repoURL == "" {
		read := git.ReadFacts
		if base != "" {
			read = git.ReadHeadFacts
		}
		facts, err := read(o.repoPath)
		switch {
		case err != nil && base == "":
			return models.PullRequestContext{}, fmt.Errorf("reading repository: %w", err)
		case err != nil:
			o.logger.Debug("repository unavailable, no remote URL", "error", err)
		default:
			if base == "" {
				base = facts.CurrentBranch
			}
			if repoURL == "" {
				repoURL = facts.RepoURL
			}
		}
	}

	ctx, err := release.ComposePullRequest(repoURL, base, f.currentVersion, f.nextVersion, o.cfg.MergeStrategy)
	if err != nil {
		return models.PullRequestContext{}, err
	}
	if f.staging != "" {
		ctx.StagingBranch = f.staging
	}

	kind, _ := release.ResolveStrategy(ctx.MergeStrategy, ctx.BaseBranch)
	o.logger.Debug("composed pull request", "base", base, "destination", ctx.DestinationBranch, "strategy", kind.String())
	if kind == models.StrategySameBranch && ctx.RepoURL == "" {
		return models.PullRequestContext{}, errors.New("repository URL unknown; pass --repo-url or set [repository] url in the config")
	}
	return ctx, nil
}
