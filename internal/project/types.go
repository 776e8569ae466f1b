// Package project implements the persistent project index (C6): discovery
// of Git repositories under configured scan roots, frecency-aware access
// tracking, and an atomically-written on-disk cache.
package project

import "time"

const cacheVersion = 1

// GitStatus mirrors gitprobe.Status in a JSON-serializable shape decoupled
// from the probe package's own types.
type GitStatus struct {
	Branch         string    `json:"branch"`
	IsDetached     bool      `json:"is_detached"`
	HasUncommitted bool      `json:"has_uncommitted"`
	Ahead          int       `json:"ahead"`
	Behind         int       `json:"behind"`
	HasUpstream    bool      `json:"has_upstream"`
	LastCommitHash string    `json:"last_commit_hash"`
	LastCommitMsg  string    `json:"last_commit_message"`
	LastCommitAuth string    `json:"last_commit_author"`
	LastCommitTime time.Time `json:"last_commit_time"`

	// Unknown is set when the probe failed (corrupt repo, transient I/O);
	// the project is retained in "git-unknown" state rather than dropped.
	Unknown bool `json:"git_unknown,omitempty"`
}

// Project is one discovered repository and its access history.
type Project struct {
	Path          string    `json:"path"`
	Name          string     `json:"name"`
	Git           GitStatus  `json:"git"`
	ReadmeExcerpt string     `json:"readme_excerpt,omitempty"`
	AccessCount   int        `json:"access_count"`
	LastAccessed  *time.Time `json:"last_accessed,omitempty"`
	FrecencyScore float64    `json:"frecency_score"`

	// Checksum is an XXH3 fingerprint over the fields that matter for
	// change detection, not authoritative state; see computeChecksum.
	Checksum uint64 `json:"checksum"`
}

// Index is the persistent, serialized state of the whole project set.
type Index struct {
	Version  int                `json:"version"`
	LastSync time.Time          `json:"last_sync"`
	Projects map[string]Project `json:"projects"`
}

// newEmptyIndex returns a freshly version-stamped, empty index.
func newEmptyIndex() *Index {
	return &Index{Version: cacheVersion, Projects: make(map[string]Project)}
}

// Filter selects a subset of projects from List.
type Filter string

const (
	// FilterNone admits every project.
	FilterNone Filter = ""
	// FilterHasChanges admits projects with an uncommitted worktree.
	FilterHasChanges Filter = "has-changes"
	// FilterInactive30d admits projects untouched for 30+ days, or never accessed.
	FilterInactive30d Filter = "inactive-30d"
	// FilterInactive90d admits projects untouched for 90+ days, or never accessed.
	FilterInactive90d Filter = "inactive-90d"
)

func (f Filter) admits(p Project, now time.Time) bool {
	switch f {
	case FilterNone:
		return true
	case FilterHasChanges:
		return p.Git.HasUncommitted
	case FilterInactive30d:
		return inactiveSince(p, now, 30*24*time.Hour)
	case FilterInactive90d:
		return inactiveSince(p, now, 90*24*time.Hour)
	default:
		return true
	}
}

func inactiveSince(p Project, now time.Time, cutoff time.Duration) bool {
	if p.LastAccessed == nil {
		return true
	}
	return now.Sub(*p.LastAccessed) >= cutoff
}
