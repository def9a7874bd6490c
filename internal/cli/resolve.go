package cli

import (
	"fmt"

	"github.com/wahlandcase/relgate/internal/models"
	"github.com/wahlandcase/relgate/internal/release"

	"github.com/spf13/cobra"
)

func newResolveCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <base-branch>",
		Short: "Print the branch a release PR from base-branch would target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := args[0]
			kind, dest := release.ResolveStrategy(opts.cfg.MergeStrategy, base)
			opts.logger.Debug("resolved strategy", "base", base, "kind", kind.String(), "destination", dest)

			if kind == models.StrategyNone {
				return &release.NoStrategyError{Base: base}
			}
			fmt.Fprintln(cmd.OutOrStdout(), dest)
			return nil
		},
	}
}
