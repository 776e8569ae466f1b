// Package walk implements the parallel, gitignore-aware directory
// traversal engine. A bounded pool of workers pulls directory jobs from a
// queue, lists each directory once, applies ignore policy and symlink-cycle
// detection, and streams typed entries to the caller over a channel.
package walk

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/devkit-go/devkit/internal/ignore"
	"github.com/devkit-go/devkit/internal/metadata"
)

// TraverseConfig parameterizes a walk.
type TraverseConfig struct {
	// Roots is the ordered sequence of paths to scan. At least one is
	// required.
	Roots []string

	// MaxDepth is the maximum depth below each root to descend. Roots
	// themselves are depth 0; their direct children are depth 1. A
	// negative value means unbounded. 0 means the roots are not read at
	// all, so no entries are produced — only the roots themselves are
	// considered.
	MaxDepth int

	// FollowSymlinks, when true, follows symlinked directories. The walker
	// tracks visited (device, inode) pairs and refuses to re-enter a
	// directory it has already visited; on re-entry the symlink is still
	// reported as an entry, but its target is not expanded again.
	FollowSymlinks bool

	// RespectGitignore toggles .gitignore handling. Hidden-file handling
	// is independent of this flag.
	RespectGitignore bool

	// IncludeHidden, when false, excludes dot-prefixed path components
	// regardless of gitignore content.
	IncludeHidden bool

	// Threads is the size of the worker pool. A value <= 0 defaults to
	// min(runtime.NumCPU(), 8).
	Threads int
}

// Diagnostic is a non-fatal issue encountered during a walk: a directory
// that could not be listed, or an entry whose metadata could not be read.
type Diagnostic struct {
	Path   string
	Reason string
	Err    error
}

// exceedsMaxDepth reports whether depth is at or beyond cfg's configured
// bound. A negative MaxDepth means unbounded, so it never exceeds.
func exceedsMaxDepth(cfg TraverseConfig, depth int) bool {
	return cfg.MaxDepth >= 0 && depth >= cfg.MaxDepth
}

// dirJob is one directory queued for listing, grounded on the pack's
// scanJob/in-flight-counter quiescence pattern for a parallel-by-directory
// pool.
type dirJob struct {
	path  string
	root  string
	depth int
}

// Walker is the traversal engine. It holds no state between calls; each
// Walk call is independent.
type Walker struct {
	logger *slog.Logger
}

// New creates a Walker.
func New() *Walker {
	return &Walker{logger: slog.Default().With("component", "walk")}
}

// Walk traverses cfg.Roots and streams Entry values to the returned
// channel. A second channel carries Diagnostics for skipped directories and
// entries. Both channels are closed when the walk finishes or ctx is
// cancelled.
//
// The walker does not read cfg.RespectGitignore itself; callers build ign
// to match it. ign is consulted for every child when non-nil and may be nil
// for no ignore policy. Dot-prefixed names are skipped by the walker itself
// whenever cfg.IncludeHidden is false, whatever ign is.
func (w *Walker) Walk(ctx context.Context, cfg TraverseConfig, ign ignore.Ignorer) (<-chan metadata.Entry, <-chan Diagnostic) {
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
		if threads > 8 {
			threads = 8
		}
	}

	entries := make(chan metadata.Entry, 256)
	diags := make(chan Diagnostic, 64)

	go func() {
		defer close(entries)
		defer close(diags)

		queue := make(chan dirJob, 4096)
		var inFlight int64
		var wg sync.WaitGroup

		visited := newVisitedSet()

		emitDiag := func(path, reason string, err error) {
			select {
			case diags <- Diagnostic{Path: path, Reason: reason, Err: err}:
			case <-ctx.Done():
			}
		}

		process := func(job dirJob) {
			defer atomic.AddInt64(&inFlight, -1)

			select {
			case <-ctx.Done():
				return
			default:
			}

			if exceedsMaxDepth(cfg, job.depth) {
				return
			}

			dirEntries, err := os.ReadDir(job.path)
			if err != nil {
				w.logger.Debug("readdir error", "path", job.path, "error", err)
				emitDiag(job.path, "readdir_error", err)
				return
			}

			for _, de := range dirEntries {
				select {
				case <-ctx.Done():
					return
				default:
				}

				childPath := filepath.Join(job.path, de.Name())
				isDir := de.IsDir()
				isSymlink := de.Type()&os.ModeSymlink != 0

				if !cfg.IncludeHidden && len(de.Name()) > 0 && de.Name()[0] == '.' {
					continue
				}

				relForIgnore := childPath
				if rel, err := filepath.Rel(job.root, childPath); err == nil {
					relForIgnore = rel
				}
				if ign != nil && ign.IsIgnored(relForIgnore, isDir) {
					if isDir {
						continue // excluded directory: do not descend
					}
					continue
				}

				ent, err := metadata.Stat(childPath)
				if err != nil {
					w.logger.Debug("metadata error", "path", childPath, "error", err)
					emitDiag(childPath, "metadata_error", err)
					continue
				}
				ent.Depth = job.depth + 1

				if isSymlink && ent.Kind == metadata.KindSymlink {
					select {
					case entries <- ent:
					case <-ctx.Done():
						return
					}

					if !cfg.FollowSymlinks || !isDir {
						continue
					}

					// Directory symlink with follow enabled: only descend
					// if we have not visited this (device, inode) before.
					key, ok := inodeKey(childPath)
					if ok && !visited.markVisited(key) {
						continue
					}
					if exceedsMaxDepth(cfg, job.depth+1) {
						continue
					}
					atomic.AddInt64(&inFlight, 1)
					select {
					case queue <- dirJob{path: childPath, root: job.root, depth: job.depth + 1}:
					case <-ctx.Done():
						atomic.AddInt64(&inFlight, -1)
					}
					continue
				}

				select {
				case entries <- ent:
				case <-ctx.Done():
					return
				}

				if isDir {
					if exceedsMaxDepth(cfg, job.depth+1) {
						continue
					}
					atomic.AddInt64(&inFlight, 1)
					select {
					case queue <- dirJob{path: childPath, root: job.root, depth: job.depth + 1}:
					case <-ctx.Done():
						atomic.AddInt64(&inFlight, -1)
					}
				}
			}
		}

		for i := 0; i < threads; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for job := range queue {
					process(job)
				}
			}()
		}

		seeded := false
		for _, root := range cfg.Roots {
			info, err := os.Stat(root)
			if err != nil || !info.IsDir() {
				emitDiag(root, "root_unreadable", err)
				continue
			}
			seeded = true
			atomic.AddInt64(&inFlight, 1)
			queue <- dirJob{path: root, root: root, depth: 0}
		}

		if !seeded {
			close(queue)
			wg.Wait()
			return
		}

		// Quiescence: close the queue once no jobs remain queued or in
		// flight, mirroring the pack's atomic-counter closer goroutine and
		// its poll interval.
		for {
			select {
			case <-ctx.Done():
				close(queue)
				wg.Wait()
				return
			default:
			}
			if len(queue) == 0 && atomic.LoadInt64(&inFlight) == 0 {
				close(queue)
				wg.Wait()
				return
			}
			time.Sleep(50 * time.Millisecond)
		}
	}()

	return entries, diags
}
