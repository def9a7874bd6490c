package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/wahlandcase/relgate/internal/models"
	"github.com/wahlandcase/relgate/internal/release"
)

type Config struct {
	Repository    RepositoryConfig     `toml:"repository"`
	MergeStrategy models.MergeStrategy `toml:"merge_strategy"`
}

type RepositoryConfig struct {
	// URL overrides the origin remote when rendering compare links
	URL string `toml:"url,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		MergeStrategy: release.DefaultConfig().MergeStrategy,
	}
}

// Load reads the config at path over the defaults. An empty path means
// defaults only; nothing is searched for.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// fileConfig mirrors Config with a pointer strategy so a [merge_strategy]
// table replaces the default as a whole instead of merging field by field
type fileConfig struct {
	Repository    RepositoryConfig      `toml:"repository"`
	MergeStrategy *models.MergeStrategy `toml:"merge_strategy"`
}

// Parse decodes TOML over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	var file fileConfig

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("unknown keys:\n%s", strict.String())
		}
		return nil, err
	}

	cfg := DefaultConfig()
	cfg.Repository = file.Repository
	if file.MergeStrategy != nil {
		cfg.MergeStrategy = *file.MergeStrategy
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConflictError reports a base branch that resolves ambiguously
type ConflictError struct {
	Branch string
	Reason string
}

func (e *ConflictError) Error() string {
	return "merge_strategy: branch " + e.Branch + " " + e.Reason
}

// InvalidBranchError reports a blank branch name in the merge strategy.
// Field names the TOML key and Index the entry within its list.
type InvalidBranchError struct {
	Field string
	Index int
}

func (e *InvalidBranchError) Error() string {
	return fmt.Sprintf("merge_strategy: %s entry %d has an empty branch name", e.Field, e.Index)
}

// Validate rejects merge strategies the resolver can't treat deterministically
func (c *Config) Validate() error {
	for i, b := range c.MergeStrategy.ToSameBranch {
		if strings.TrimSpace(b) == "" {
			return &InvalidBranchError{Field: "to_same_branch", Index: i}
		}
	}
	for i, m := range c.MergeStrategy.ToReleaseBranch {
		if strings.TrimSpace(m.Base) == "" {
			return &InvalidBranchError{Field: "to_release_branch.base", Index: i}
		}
		if strings.TrimSpace(m.Destination) == "" {
			return &InvalidBranchError{Field: "to_release_branch.destination", Index: i}
		}
	}

	seen := make(map[string]bool)
	for _, m := range c.MergeStrategy.ToReleaseBranch {
		if seen[m.Base] {
			return &ConflictError{Branch: m.Base, Reason: "is mapped more than once in to_release_branch"}
		}
		seen[m.Base] = true

		if c.MergeStrategy.HasSameBranch(m.Base) {
			return &ConflictError{Branch: m.Base, Reason: "is in both to_same_branch and to_release_branch"}
		}
	}
	return nil
}

// Encode renders the effective config as TOML
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RepoURL returns the configured URL, falling back to the detected one
func (c *Config) RepoURL(detected string) string {
	if c.Repository.URL != "" {
		return strings.TrimSuffix(c.Repository.URL, "/")
	}
	return detected
}
