// Package metadata extracts cross-platform file metadata using lstat
// semantics: symlinks are described by their own size and mtime, never the
// target's.
package metadata

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"runtime"
	"time"
)

// Kind classifies an Entry's filesystem type.
type Kind string

const (
	KindFile      Kind = "file"
	KindDirectory Kind = "directory"
	KindSymlink   Kind = "symlink"
	KindOther     Kind = "other"
)

// Entry is a single filesystem observation, produced by Stat or by the
// traversal engine. Depth is left at the zero value here; the walker fills
// it in relative to the scan root.
type Entry struct {
	// Path is the entry's path. The walker joins each name onto its scan
	// root as given, so paths are absolute exactly when that root is.
	Path string

	// Name is the final path component.
	Name string

	// Kind is derived from lstat; symlinks are never followed here.
	Kind Kind

	// Size is in bytes. For symlinks, this is the size of the link itself,
	// not the target.
	Size int64

	// MTime is the modification time, timezone-aware.
	MTime time.Time

	// Depth is the entry's distance from its scan root (root = 0). Stat
	// alone cannot know this; callers that need it set it explicitly.
	Depth int
}

// Sentinel errors classify why Stat failed, matched with errors.Is against
// the wrapped cause.
var (
	// ErrNotFound indicates the path does not exist.
	ErrNotFound = errors.New("metadata: not found")
	// ErrPermissionDenied indicates the path could not be read due to
	// filesystem permissions.
	ErrPermissionDenied = errors.New("metadata: permission denied")
	// ErrLoop indicates too many levels of symbolic links were encountered
	// resolving a path component.
	ErrLoop = errors.New("metadata: too many levels of symbolic links")
)

var log = slog.Default().With("component", "metadata")

// Stat extracts an Entry for path using lstat semantics (symlinks are
// described, not followed). The returned Entry's Depth is always 0; callers
// that track depth during traversal set it themselves.
func Stat(path string) (Entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return Entry{}, classify(path, err)
	}

	kind := KindOther
	switch {
	case info.Mode()&os.ModeSymlink != 0:
		kind = KindSymlink
	case info.IsDir():
		kind = KindDirectory
	case info.Mode().IsRegular():
		kind = KindFile
	}

	return Entry{
		Path:  path,
		Name:  info.Name(),
		Kind:  kind,
		Size:  info.Size(),
		MTime: info.ModTime(),
	}, nil
}

func classify(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Debug("stat: not found", "path", path)
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	case errors.Is(err, fs.ErrPermission):
		log.Debug("stat: permission denied", "path", path)
		return fmt.Errorf("%s: %w", path, ErrPermissionDenied)
	case isLoopError(err):
		log.Debug("stat: symlink loop", "path", path)
		return fmt.Errorf("%s: %w", path, ErrLoop)
	default:
		return fmt.Errorf("%s: %w", path, err)
	}
}

// isLoopError reports whether err represents ELOOP (too many symlinks).
// ELOOP is POSIX-only; on other platforms this never matches, mirroring
// Entry.Kind's dependence on the host's symlink semantics.
func isLoopError(err error) bool {
	if runtime.GOOS == "windows" {
		return false
	}
	return errors.Is(err, errLoop)
}
