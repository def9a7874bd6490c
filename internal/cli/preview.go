package cli

import (
	"fmt"

	"github.com/wahlandcase/relgate/internal/app"
	"github.com/wahlandcase/relgate/internal/models"
	"github.com/wahlandcase/relgate/internal/release"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newPreviewCommand(opts *options) *cobra.Command {
	var f pullRequestFlags

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse the gate verdict and release messages in a TUI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			preview, err := opts.buildPreview(f)
			if err != nil {
				return err
			}

			p := tea.NewProgram(app.New(preview), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running program: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&f.currentVersion, "current-version", "", "Version currently released (e.g. 0.1.0)")
	cmd.Flags().StringVar(&f.nextVersion, "next-version", "", "Version to prepare (defaults to --current-version)")
	cmd.Flags().StringVar(&f.repoURL, "repo-url", "", "Repository URL for compare links (defaults to config, then origin)")
	return cmd
}

// buildPreview evaluates the gate and renders both messages for the current
// repository. A missing merge strategy is shown in the PR pane rather than
// aborting the preview.
func (o *options) buildPreview(f pullRequestFlags) (app.Preview, error) {
	if f.nextVersion == "" {
		f.nextVersion = f.currentVersion
	}
	if err := validateVersion("current-version", f.currentVersion); err != nil {
		return app.Preview{}, err
	}

	facts, err := o.gatherFacts(factsOverride{})
	if err != nil {
		return app.Preview{}, err
	}
	f.base = facts.CurrentBranch
	if f.repoURL == "" {
		f.repoURL = o.cfg.RepoURL(facts.RepoURL)
	}

	preview := app.Preview{
		Facts:    facts,
		Strategy: o.cfg.MergeStrategy,
		Verdict: release.ShouldRelease(models.ReleaseContext{
			CommitMessage:  facts.CommitMessage,
			CurrentVersion: f.currentVersion,
			CurrentBranch:  facts.CurrentBranch,
			MergeStrategy:  o.cfg.MergeStrategy,
		}),
		CommitMessage:  release.FormatCommitMessage(f.nextVersion),
		CurrentVersion: f.currentVersion,
		NextVersion:    f.nextVersion,
	}

	if ctx, err := o.composePullRequest(f); err != nil {
		preview.PullRequestErr = err
	} else {
		preview.PullRequest = release.FormatPullRequestMessage(ctx)
	}
	return preview, nil
}
