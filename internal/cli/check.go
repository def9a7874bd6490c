package cli

import (
	"fmt"

	"github.com/wahlandcase/relgate/internal/models"
	"github.com/wahlandcase/relgate/internal/release"
	"github.com/wahlandcase/relgate/internal/ui"

	"github.com/spf13/cobra"
)

func newCheckCommand(opts *options) *cobra.Command {
	var (
		currentVersion string
		override       factsOverride
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Decide whether the HEAD commit should be released",
		Long: `Checks that the HEAD commit message starts with the release commit message for
--current-version and that the current branch is a same-branch target or a
release-branch destination. Exits non-zero when the release is blocked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateVersion("current-version", currentVersion); err != nil {
				return err
			}
			override.messageSet = cmd.Flags().Changed("message")

			facts, err := opts.gatherFacts(override)
			if err != nil {
				return err
			}

			verdict := release.ShouldRelease(models.ReleaseContext{
				CommitMessage:  facts.CommitMessage,
				CurrentVersion: currentVersion,
				CurrentBranch:  facts.CurrentBranch,
				MergeStrategy:  opts.cfg.MergeStrategy,
			})
			ok, reason := models.VerdictResult(verdict)
			opts.logger.Debug("gate evaluated", "branch", facts.CurrentBranch, "proceed", ok, "reason", reason)

			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderVerdict(verdict))
			if !ok {
				return ErrBlocked
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&currentVersion, "current-version", "", "Version the HEAD commit releases (e.g. 0.1.2)")
	cmd.Flags().StringVar(&override.branch, "branch", "", "Override the current branch")
	cmd.Flags().StringVar(&override.message, "message", "", "Override the HEAD commit message")

	return cmd
}
