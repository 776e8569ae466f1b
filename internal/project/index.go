package project

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/devkit-go/devkit/internal/frecency"
	"github.com/devkit-go/devkit/internal/gitprobe"
	"github.com/devkit-go/devkit/internal/metadata"
	"github.com/devkit-go/devkit/internal/walk"
	"golang.org/x/sync/errgroup"
)

var log = slog.Default().With("component", "project")

// SyncConfig parameterizes a Sync pass.
type SyncConfig struct {
	// ScanDirs are the roots walked for candidate repositories.
	ScanDirs []string

	// MaxDepth bounds the walk below each root; Open Question resolved as
	// 3 by default, not configurable per-root.
	MaxDepth int

	// ProbeWorkers bounds the concurrent gitprobe.Probe calls; <= 0
	// defaults to min(runtime.NumCPU(), 4).
	ProbeWorkers int
}

// SyncSummary reports the outcome of a Sync pass.
type SyncSummary struct {
	ProjectCount int
	Duration     time.Duration
}

// Store owns the on-disk project index cache and serializes access to it.
// A single Store should be shared by all callers within one process;
// cross-process serialization is handled by an advisory file lock around
// each read-modify-write cycle.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a Store backed by the cache file at path (typically
// <cache-dir>/px/projects.json).
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the current index from disk without mutating it.
func (s *Store) Load() (*Index, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load(s.path)
}

// Sync walks cfg.ScanDirs for Git repositories, probes each one, merges the
// result with any prior access history at the same canonical path, and
// writes the updated index atomically. The write is skipped when the
// project set and every project's checksum, git status fields, README
// excerpt, and frecency score match the prior index.
func (s *Store) Sync(ctx context.Context, cfg SyncConfig) (SyncSummary, error) {
	start := time.Now()

	candidates, err := discoverRepos(ctx, cfg)
	if err != nil {
		return SyncSummary{}, err
	}

	probed := probeAll(ctx, candidates, cfg.ProbeWorkers)

	var summary SyncSummary
	err = withFileLock(s.path, func() error {
		s.mu.Lock()
		defer s.mu.Unlock()

		idx, err := load(s.path)
		if err != nil {
			return err
		}

		next := make(map[string]Project, len(probed))
		changed := len(probed) != len(idx.Projects)
		for _, p := range probed {
			prior, hadPrior := idx.Projects[p.Path]
			if hadPrior {
				p.AccessCount = prior.AccessCount
				p.LastAccessed = prior.LastAccessed
				p.FrecencyScore = frecency.Score(p.AccessCount, p.LastAccessed, time.Now())
			}
			p.Checksum = computeChecksum(p)
			if !hadPrior || p.Checksum != prior.Checksum ||
				p.Git.Branch != prior.Git.Branch || p.Git.IsDetached != prior.Git.IsDetached ||
				p.Git.Ahead != prior.Git.Ahead || p.Git.Behind != prior.Git.Behind ||
				p.Git.HasUpstream != prior.Git.HasUpstream || p.Git.Unknown != prior.Git.Unknown ||
				p.ReadmeExcerpt != prior.ReadmeExcerpt || p.FrecencyScore != prior.FrecencyScore {
				changed = true
			}
			next[p.Path] = p
		}

		idx.Projects = next
		summary = SyncSummary{ProjectCount: len(next), Duration: time.Since(start)}

		if !changed {
			return nil
		}

		idx.LastSync = time.Now()
		return save(s.path, idx)
	})
	if err != nil {
		return SyncSummary{}, err
	}
	return summary, nil
}

// RecordAccess increments access_count and refreshes last_accessed and
// frecency_score for the project at path, then writes atomically. If path
// is not yet a known project but is a valid repository, a new entry is
// created. Any other path is a silent no-op.
func (s *Store) RecordAccess(path string) error {
	canonical, err := canonicalize(path)
	if err != nil {
		return nil
	}

	return withFileLock(s.path, func() error {
		s.mu.Lock()
		defer s.mu.Unlock()

		idx, err := load(s.path)
		if err != nil {
			return err
		}

		now := time.Now()
		p, ok := idx.Projects[canonical]
		if !ok {
			status, err := gitprobe.Probe(canonical)
			if err != nil {
				return nil // not a valid repo; no-op per contract
			}
			p = newProjectFromProbe(canonical, status)
		}

		prevChecksum := p.Checksum
		p.AccessCount++
		p.LastAccessed = &now
		p.FrecencyScore = frecency.Score(p.AccessCount, p.LastAccessed, now)
		p.Checksum = computeChecksum(p)

		if ok && p.Checksum == prevChecksum {
			return nil
		}

		idx.Projects[canonical] = p
		return save(s.path, idx)
	})
}

// List returns every project admitted by filter, sorted by frecency_score
// descending with ties broken by name ascending.
func (s *Store) List(filter Filter) ([]Project, error) {
	s.mu.Lock()
	idx, err := load(s.path)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out := make([]Project, 0, len(idx.Projects))
	for _, p := range idx.Projects {
		if filter.admits(p, now) {
			out = append(out, p)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].FrecencyScore != out[j].FrecencyScore {
			return out[i].FrecencyScore > out[j].FrecencyScore
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// discoverRepos walks cfg.ScanDirs via the traversal engine and collects
// the parent directory of every ".git" directory entry encountered.
func discoverRepos(ctx context.Context, cfg SyncConfig) ([]string, error) {
	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 3
	}

	w := walk.New()
	tcfg := walk.TraverseConfig{
		Roots:            cfg.ScanDirs,
		MaxDepth:         maxDepth,
		RespectGitignore: false,
		IncludeHidden:    true,
	}

	entries, diags := w.Walk(ctx, tcfg, nil)

	var candidates []string
	done := make(chan struct{})
	go func() {
		defer close(done)
		for d := range diags {
			log.Debug("sync diagnostic", "path", d.Path, "reason", d.Reason, "error", d.Err)
		}
	}()

	for e := range entries {
		if e.Kind == metadata.KindDirectory && e.Name == ".git" {
			repoPath := filepath.Dir(e.Path)
			canonical, err := canonicalize(repoPath)
			if err != nil {
				log.Debug("sync canonicalize failed", "path", repoPath, "error", err)
				continue
			}
			candidates = append(candidates, canonical)
		}
	}
	<-done

	return candidates, nil
}

// probeAll runs gitprobe.Probe over candidates with a bounded worker pool,
// funneling results into a single slice. Probe failures demote a candidate
// to a "git-unknown" Project rather than dropping it.
func probeAll(ctx context.Context, candidates []string, workers int) []Project {
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers > 4 {
			workers = 4
		}
	}
	if workers > len(candidates) && len(candidates) > 0 {
		workers = len(candidates)
	}

	results := make([]Project, len(candidates))

	g, _ := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, path := range candidates {
		i, path := i, path
		g.Go(func() error {
			status, err := gitprobe.Probe(path)
			if err != nil {
				log.Warn("probe failed, retaining as git-unknown", "path", path, "error", err)
				results[i] = unknownProject(path)
				return nil
			}
			results[i] = newProjectFromProbe(path, status)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func newProjectFromProbe(path string, status gitprobe.Status) Project {
	return Project{
		Path:          path,
		Name:          filepath.Base(path),
		Git:           gitStatusFromProbe(status),
		ReadmeExcerpt: readReadmeExcerpt(path),
	}
}

func unknownProject(path string) Project {
	return Project{
		Path: path,
		Name: filepath.Base(path),
		Git:  GitStatus{Unknown: true},
	}
}

func gitStatusFromProbe(s gitprobe.Status) GitStatus {
	return GitStatus{
		Branch:         s.Branch,
		IsDetached:     s.IsDetached,
		HasUncommitted: s.HasUncommitted,
		Ahead:          s.Ahead,
		Behind:         s.Behind,
		HasUpstream:    s.HasUpstream,
		LastCommitHash: s.LastCommit.Hash,
		LastCommitMsg:  s.LastCommit.Message,
		LastCommitAuth: s.LastCommit.Author,
		LastCommitTime: s.LastCommit.Timestamp,
	}
}

// readReadmeExcerpt returns the first non-empty line of README.md or README
// under dir, with leading '#' heading markers removed, truncated to 200
// characters; empty if neither exists or both are empty.
func readReadmeExcerpt(dir string) string {
	for _, name := range []string{"README.md", "README"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			line = strings.TrimLeft(line, "#")
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if r := []rune(line); len(r) > 200 {
				line = string(r[:200])
			}
			return line
		}
	}
	return ""
}

// canonicalize resolves path to an absolute, symlink-free form so that two
// different paths reaching the same repository via a symlink collapse to
// one ProjectIndex key.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolve symlinks: %w", err)
	}
	return resolved, nil
}
