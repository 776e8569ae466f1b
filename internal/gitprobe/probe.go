// Package gitprobe extracts read-only Git repository status directly from
// the repository object store via go-git, with no subprocess involved.
package gitprobe

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Kind classifies a probe failure.
type Kind string

const (
	KindNotARepo    Kind = "not_a_repo"
	KindCorrupt     Kind = "corrupt"
	KindTransientIO Kind = "transient_io"
)

// Error wraps a probe failure with its Kind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %v", e.Kind, e.Err) }
func (e *Error) Unwrap() error { return e.Err }

// Commit summarizes a single commit's user-facing fields.
type Commit struct {
	Hash      string
	Message   string // first line, truncated to 120 characters
	Author    string
	Timestamp time.Time
}

// Status is the result of probing a single repository.
type Status struct {
	Branch         string // short hash when detached
	IsDetached     bool
	HasUncommitted bool
	Ahead          int
	Behind         int
	LastCommit     Commit
	HasUpstream    bool
}

var log = slog.Default().With("component", "gitprobe")

// Probe extracts read-only status for the repository rooted at repoPath.
// It never mutates the repository and never shells out; all access goes
// through go-git's object-store API.
func Probe(repoPath string) (Status, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return Status{}, &Error{Kind: KindNotARepo, Err: err}
		}
		return Status{}, &Error{Kind: KindCorrupt, Err: err}
	}

	var status Status

	head, err := repo.Head()
	if err != nil {
		return Status{}, &Error{Kind: KindCorrupt, Err: fmt.Errorf("resolving HEAD: %w", err)}
	}

	if head.Name().IsBranch() {
		status.Branch = head.Name().Short()
	} else {
		status.IsDetached = true
		status.Branch = head.Hash().String()[:7]
	}

	headCommit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return Status{}, &Error{Kind: KindCorrupt, Err: fmt.Errorf("reading HEAD commit: %w", err)}
	}
	status.LastCommit = commitSummary(headCommit)

	if remoteRef, err := repo.Reference(plumbing.NewRemoteReferenceName("origin", status.Branch), false); err == nil {
		status.HasUpstream = true
		if remoteCommit, err := repo.CommitObject(remoteRef.Hash()); err == nil {
			ahead, err := countCommitsBetween(repo, headCommit, remoteCommit)
			if err != nil {
				log.Debug("ahead count failed", "repo", repoPath, "error", err)
			} else {
				status.Ahead = ahead
			}
			behind, err := countCommitsBetween(repo, remoteCommit, headCommit)
			if err != nil {
				log.Debug("behind count failed", "repo", repoPath, "error", err)
			} else {
				status.Behind = behind
			}
		}
	}

	worktree, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no worktree; has_uncommitted is simply
		// false rather than an error.
		if !errors.Is(err, git.ErrIsBareRepository) {
			log.Debug("worktree unavailable", "repo", repoPath, "error", err)
		}
		return status, nil
	}

	wtStatus, err := worktree.Status()
	if err != nil {
		return Status{}, &Error{Kind: KindTransientIO, Err: fmt.Errorf("reading worktree status: %w", err)}
	}
	status.HasUncommitted = !wtStatus.IsClean()

	return status, nil
}

func commitSummary(c *object.Commit) Commit {
	msg := c.Message
	if idx := indexOfNewline(msg); idx >= 0 {
		msg = msg[:idx]
	}
	if r := []rune(msg); len(r) > 120 {
		msg = string(r[:120])
	}
	return Commit{
		Hash:      c.Hash.String(),
		Message:   msg,
		Author:    c.Author.Name,
		Timestamp: c.Author.When,
	}
}

func indexOfNewline(s string) int {
	for i, r := range s {
		if r == '\n' {
			return i
		}
	}
	return -1
}

// countCommitsBetween counts commits reachable from "from" that are not
// reachable from "to": a two-pass reachable-set diff, following the
// pack's ahead/behind approach.
func countCommitsBetween(repo *git.Repository, from, to *object.Commit) (int, error) {
	toCommits := make(map[plumbing.Hash]bool)
	iter, err := repo.Log(&git.LogOptions{From: to.Hash})
	if err != nil {
		return 0, err
	}
	err = iter.ForEach(func(c *object.Commit) error {
		toCommits[c.Hash] = true
		return nil
	})
	iter.Close()
	if err != nil {
		return 0, fmt.Errorf("iterating commits: %w", err)
	}

	count := 0
	iter, err = repo.Log(&git.LogOptions{From: from.Hash})
	if err != nil {
		return 0, err
	}
	err = iter.ForEach(func(c *object.Commit) error {
		if !toCommits[c.Hash] {
			count++
		}
		return nil
	})
	iter.Close()
	if err != nil {
		return 0, err
	}

	return count, nil
}
