package models

// StrategyKind identifies which merge strategy applies to a base branch
type StrategyKind int

const (
	// StrategyNone means no configured strategy covers the branch
	StrategyNone StrategyKind = iota
	// StrategySameBranch merges the release back into the branch it came from
	StrategySameBranch
	// StrategyReleaseBranch proposes the release into a separate destination branch
	StrategyReleaseBranch
)

func (k StrategyKind) String() string {
	switch k {
	case StrategySameBranch:
		return "same-branch"
	case StrategyReleaseBranch:
		return "release-branch"
	default:
		return "none"
	}
}

// BranchMapping maps a base branch to the branch its release PR targets
type BranchMapping struct {
	Base        string `toml:"base"`
	Destination string `toml:"destination"`
}

// MergeStrategy describes where releases from each base branch end up.
// ToReleaseBranch is a slice rather than a map so destination order is stable.
type MergeStrategy struct {
	ToSameBranch    []string        `toml:"to_same_branch"`
	ToReleaseBranch []BranchMapping `toml:"to_release_branch"`
}

// HasSameBranch reports whether branch is a same-branch target
func (s MergeStrategy) HasSameBranch(branch string) bool {
	for _, b := range s.ToSameBranch {
		if b == branch {
			return true
		}
	}
	return false
}

// Destination returns the release-branch destination configured for base
func (s MergeStrategy) Destination(base string) (string, bool) {
	for _, m := range s.ToReleaseBranch {
		if m.Base == base {
			return m.Destination, true
		}
	}
	return "", false
}

// Destinations returns the mapped destination branches in insertion order
func (s MergeStrategy) Destinations() []string {
	dests := make([]string, 0, len(s.ToReleaseBranch))
	for _, m := range s.ToReleaseBranch {
		dests = append(dests, m.Destination)
	}
	return dests
}

// AcceptableBranches returns the branches a release may be published from:
// same-branch targets first, then release-branch destinations.
func (s MergeStrategy) AcceptableBranches() []string {
	branches := make([]string, 0, len(s.ToSameBranch)+len(s.ToReleaseBranch))
	branches = append(branches, s.ToSameBranch...)
	return append(branches, s.Destinations()...)
}

// Clone returns a deep copy so callers can't alias the receiver's slices
func (s MergeStrategy) Clone() MergeStrategy {
	out := MergeStrategy{
		ToSameBranch:    make([]string, len(s.ToSameBranch)),
		ToReleaseBranch: make([]BranchMapping, len(s.ToReleaseBranch)),
	}
	copy(out.ToSameBranch, s.ToSameBranch)
	copy(out.ToReleaseBranch, s.ToReleaseBranch)
	return out
}
