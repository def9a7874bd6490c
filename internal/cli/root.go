// Package cli wires the release engine to git facts, configuration and the
// terminal. Commands print to cmd.OutOrStdout so they can be exercised in tests.
package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/wahlandcase/relgate/internal/config"
	"github.com/wahlandcase/relgate/internal/ui"

	"github.com/spf13/cobra"
)

// ErrBlocked is returned by check when the gate refuses the release. The
// reason has already been printed.
var ErrBlocked = errors.New("release blocked")

type options struct {
	configPath string
	repoPath   string
	verbose    bool
	noColor    bool

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand builds the relgate command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "relgate",
		Short:         "Decide whether a commit should be released and render release messages",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to a relgate TOML config (defaults apply when unset)")
	flags.StringVar(&opts.repoPath, "repo", ".", "Path inside the git repository to inspect")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log decisions to stderr")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newCheckCommand(opts),
		newResolveCommand(opts),
		newMessageCommand(opts),
		newConfigCommand(opts),
		newPreviewCommand(opts),
	)

	return rootCmd
}

func (o *options) setup(cmd *cobra.Command) error {
	ui.ConfigureColor(o.noColor)

	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	o.cfg = cfg
	o.logger.Debug("config loaded",
		"path", o.configPath,
		"to_same_branch", cfg.MergeStrategy.ToSameBranch,
		"to_release_branch", cfg.MergeStrategy.Destinations(),
	)
	return nil
}
