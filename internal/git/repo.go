package git

import (
	"errors"

	"github.com/wahlandcase/relgate/internal/models"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// DetachedHeadError indicates HEAD points at a commit rather than a branch
type DetachedHeadError struct {
	Hash string
}

func (e *DetachedHeadError) Error() string {
	return "HEAD is detached at " + e.Hash + "; check out a branch first"
}

// GitError provides context for a failed repository read
type GitError struct {
	Op  string
	Err error
}

func (e *GitError) Error() string {
	return "git " + e.Op + ": " + e.Err.Error()
}

func (e *GitError) Unwrap() error {
	return e.Err
}

// Open opens the repository containing path, walking up to find .git
func Open(path string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, &GitError{Op: "open " + path, Err: err}
	}
	return repo, nil
}

// ReadFacts gathers the branch, HEAD commit message and origin URL for the
// repository containing path
func ReadFacts(path string) (*models.RepoFacts, error) {
	return readFacts(path, true)
}

// ReadHeadFacts is ReadFacts without the branch lookup, for callers that
// already know the branch. It works on a detached HEAD.
func ReadHeadFacts(path string) (*models.RepoFacts, error) {
	return readFacts(path, false)
}

func readFacts(path string, withBranch bool) (*models.RepoFacts, error) {
	repo, err := Open(path)
	if err != nil {
		return nil, err
	}

	facts := &models.RepoFacts{Path: path}
	if wt, err := repo.Worktree(); err == nil {
		facts.Path = wt.Filesystem.Root()
	}

	head, err := repo.Head()
	if err != nil {
		return nil, &GitError{Op: "resolve HEAD", Err: err}
	}

	if withBranch {
		branch, err := CurrentBranch(head)
		if err != nil {
			return nil, err
		}
		facts.CurrentBranch = branch
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, &GitError{Op: "read commit " + head.Hash().String()[:7], Err: err}
	}
	facts.CommitMessage = commit.Message

	url, err := OriginURL(repo)
	if err != nil {
		return nil, err
	}
	facts.RepoURL = url

	return facts, nil
}

// CurrentBranch returns the short branch name HEAD points at
func CurrentBranch(head *plumbing.Reference) (string, error) {
	if !head.Name().IsBranch() {
		return "", &DetachedHeadError{Hash: head.Hash().String()[:7]}
	}
	return head.Name().Short(), nil
}

// OriginURL returns the origin remote as a browsable URL, empty if there's no origin
func OriginURL(repo *git.Repository) (string, error) {
	remote, err := repo.Remote("origin")
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return "", nil
		}
		return "", &GitError{Op: "read remote origin", Err: err}
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", nil
	}

	// Local and file:// remotes have nothing to link to
	normalized, err := NormalizeRemoteURL(urls[0])
	if err != nil {
		return "", nil
	}
	return normalized, nil
}
