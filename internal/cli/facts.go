package cli

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/wahlandcase/relgate/internal/git"
	"github.com/wahlandcase/relgate/internal/models"
)

// validateVersion rejects anything that isn't a bare semver (no "v" prefix,
// since the messages add their own)
func validateVersion(flag, v string) error {
	if v == "" {
		return fmt.Errorf("--%s is required", flag)
	}
	if _, err := semver.StrictNewVersion(v); err != nil {
		return fmt.Errorf("--%s %q is not a semantic version: %w", flag, v, err)
	}
	return nil
}

// factsOverride holds flag values that take precedence over the repository
type factsOverride struct {
	branch  string
	message string
	// messageSet distinguishes an explicit empty message from an unset flag
	messageSet bool
}

// gatherFacts reads the repository only when the overrides don't already
// cover everything needed
func (o *options) gatherFacts(override factsOverride) (models.RepoFacts, error) {
	if override.branch != "" && override.messageSet {
		o.logger.Debug("using facts from flags", "branch", override.branch)
		return models.RepoFacts{
			Path:          o.repoPath,
			CurrentBranch: override.branch,
			CommitMessage: override.message,
		}, nil
	}

	read := git.ReadFacts
	if override.branch != "" {
		// HEAD may be detached, as in most CI checkouts
		read = git.ReadHeadFacts
	}
	facts, err := read(o.repoPath)
	if err != nil {
		return models.RepoFacts{}, fmt.Errorf("reading repository: %w", err)
	}
	o.logger.Debug("read repository facts", "path", facts.Path, "branch", facts.CurrentBranch, "remote", facts.RepoURL)

	if override.branch != "" {
		facts.CurrentBranch = override.branch
	}
	if override.messageSet {
		facts.CommitMessage = override.message
	}
	return *facts, nil
}
