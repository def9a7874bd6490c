package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/wahlandcase/relgate/internal/models"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(cfg.MergeStrategy.ToSameBranch, []string{"master"}) {
		t.Errorf("ToSameBranch = %v, want [master]", cfg.MergeStrategy.ToSameBranch)
	}
	if len(cfg.MergeStrategy.ToReleaseBranch) != 0 {
		t.Errorf("ToReleaseBranch = %v, want empty", cfg.MergeStrategy.ToReleaseBranch)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relgate.toml")
	data := `
[repository]
url = "https://github.com/org/repo/"

[merge_strategy]
to_same_branch = ["main"]

[[merge_strategy.to_release_branch]]
base = "dev"
destination = "release/dev"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cfg.RepoURL("https://detected"); got != "https://github.com/org/repo" {
		t.Errorf("RepoURL() = %q", got)
	}
	if !slices.Equal(cfg.MergeStrategy.ToSameBranch, []string{"main"}) {
		t.Errorf("ToSameBranch = %v, want [main]", cfg.MergeStrategy.ToSameBranch)
	}
	want := []models.BranchMapping{{Base: "dev", Destination: "release/dev"}}
	if !slices.Equal(cfg.MergeStrategy.ToReleaseBranch, want) {
		t.Errorf("ToReleaseBranch = %v, want %v", cfg.MergeStrategy.ToReleaseBranch, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		data         string
		wantSame     []string
		wantDests    []string
		wantConflict bool
		wantInvalid  string
		wantErr      bool
	}{
		{
			name:     "empty document keeps defaults",
			data:     "",
			wantSame: []string{"master"},
		},
		{
			name: "repository only keeps default strategy",
			data: `[repository]
url = "https://example.com/r"`,
			wantSame: []string{"master"},
		},
		{
			name: "strategy table replaces default as a whole",
			data: `[[merge_strategy.to_release_branch]]
base = "master"
destination = "release/stable"`,
			wantSame:  nil,
			wantDests: []string{"release/stable"},
		},
		{
			name: "destinations keep file order",
			data: `[merge_strategy]
to_same_branch = []
[[merge_strategy.to_release_branch]]
base = "z"
destination = "release/z"
[[merge_strategy.to_release_branch]]
base = "a"
destination = "release/a"`,
			wantSame:  []string{},
			wantDests: []string{"release/z", "release/a"},
		},
		{
			name: "base in both collections",
			data: `[merge_strategy]
to_same_branch = ["master"]
[[merge_strategy.to_release_branch]]
base = "master"
destination = "release/stable"`,
			wantConflict: true,
		},
		{
			name: "duplicate mapping base",
			data: `[[merge_strategy.to_release_branch]]
base = "dev"
destination = "release/a"
[[merge_strategy.to_release_branch]]
base = "dev"
destination = "release/b"`,
			wantConflict: true,
		},
		{
			name: "mapping missing destination",
			data: `[[merge_strategy.to_release_branch]]
base = "dev"`,
			wantInvalid: "to_release_branch.destination",
		},
		{
			name: "mapping with blank base",
			data: `[[merge_strategy.to_release_branch]]
base = " "
destination = "release/dev"`,
			wantInvalid: "to_release_branch.base",
		},
		{
			name: "blank same-branch entry",
			data: `[merge_strategy]
to_same_branch = ["master", ""]`,
			wantInvalid: "to_same_branch",
		},
		{
			name: "unknown key",
			data: `[merge_strategy]
to_same_brnch = ["master"]`,
			wantErr: true,
		},
		{
			name:    "invalid toml",
			data:    `[merge_strategy`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.data))

			if tt.wantConflict {
				var conflict *ConflictError
				if !errors.As(err, &conflict) {
					t.Fatalf("expected ConflictError, got %v", err)
				}
				return
			}
			if tt.wantInvalid != "" {
				var invalid *InvalidBranchError
				if !errors.As(err, &invalid) {
					t.Fatalf("expected InvalidBranchError, got %v", err)
				}
				if invalid.Field != tt.wantInvalid {
					t.Errorf("Field = %q, want %q", invalid.Field, tt.wantInvalid)
				}
				var conflict *ConflictError
				if errors.As(err, &conflict) {
					t.Errorf("blank branch reported as a conflict: %v", err)
				}
				return
			}
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !slices.Equal(cfg.MergeStrategy.ToSameBranch, tt.wantSame) {
				t.Errorf("ToSameBranch = %v, want %v", cfg.MergeStrategy.ToSameBranch, tt.wantSame)
			}
			if got := cfg.MergeStrategy.Destinations(); !slices.Equal(got, tt.wantDests) {
				t.Errorf("Destinations() = %v, want %v", got, tt.wantDests)
			}
		})
	}
}

func TestConfig_Encode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MergeStrategy.ToReleaseBranch = []models.BranchMapping{{Base: "dev", Destination: "release/dev"}}

	data, err := cfg.Encode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := string(data)
	for _, want := range []string{"to_same_branch", "master", "to_release_branch", "release/dev"} {
		if !strings.Contains(out, want) {
			t.Errorf("Encode() missing %q:\n%s", want, out)
		}
	}
}

func TestConfig_RepoURL(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.RepoURL("https://github.com/org/repo"); got != "https://github.com/org/repo" {
		t.Errorf("RepoURL() = %q, want detected URL", got)
	}
}
