// Package ignore implements gitignore-aware and hidden-file exclusion
// policy for the traversal engine, plus a fixed set of default ignore
// patterns.
package ignore

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	gitignore "github.com/sabhiram/go-gitignore"
)

// Ignorer decides whether a candidate path should be excluded from
// traversal. isDir distinguishes directory-only patterns.
type Ignorer interface {
	IsIgnored(path string, isDir bool) bool
}

// GitignoreMatcher loads and evaluates .gitignore patterns hierarchically.
// Nested .gitignore files add patterns that apply only within their
// subtree; deeper directories' rules are evaluated last, so a deeper
// .gitignore can re-include (via `!`) what an outer one excludes.
//
// Paths passed to IsIgnored must be relative to the root directory used to
// construct the matcher.
type GitignoreMatcher struct {
	root string
	// lines holds each directory's raw, unscoped .gitignore lines in file
	// order, keyed by its path relative to root ("." for the root itself).
	lines map[string][]string
	// dirs stores the sorted list of directory keys, root ("." ) first,
	// so a given path's applicable directories are visited root-to-leaf.
	dirs   []string
	logger *slog.Logger

	mu    sync.Mutex
	cache map[string]*gitignore.GitIgnore
}

// NewGitignoreMatcher creates a matcher rooted at rootDir, discovering
// every .gitignore file under it. Missing or unreadable .gitignore files
// at individual directory levels are logged and skipped, not treated as
// fatal.
func NewGitignoreMatcher(rootDir string) (*GitignoreMatcher, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("resolving root path %s: %w", rootDir, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("stat root path %s: %w", absRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root path %s is not a directory", absRoot)
	}

	logger := slog.Default().With("component", "gitignore")

	m := &GitignoreMatcher{
		root:   absRoot,
		lines:  make(map[string][]string),
		logger: logger,
		cache:  make(map[string]*gitignore.GitIgnore),
	}

	if err := m.discoverGitignoreFiles(); err != nil {
		return nil, fmt.Errorf("discovering .gitignore files in %s: %w", absRoot, err)
	}

	logger.Debug("gitignore matcher initialized",
		"root", absRoot,
		"gitignore_count", len(m.lines),
	)

	return m, nil
}

func (m *GitignoreMatcher) discoverGitignoreFiles() error {
	err := filepath.WalkDir(m.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			m.logger.Debug("skipping unreadable path", "path", path, "error", err)
			return filepath.SkipDir
		}

		if d.IsDir() && d.Name() == ".git" {
			return filepath.SkipDir
		}

		if d.IsDir() || d.Name() != ".gitignore" {
			return nil
		}

		dirPath := filepath.Dir(path)
		relDir, err := filepath.Rel(m.root, dirPath)
		if err != nil {
			m.logger.Debug("skipping .gitignore, cannot compute relative path",
				"path", path, "error", err)
			return nil
		}
		if relDir == "" {
			relDir = "."
		}
		relDir = filepath.ToSlash(relDir)

		data, err := os.ReadFile(path)
		if err != nil {
			m.logger.Debug("skipping unreadable .gitignore", "path", path, "error", err)
			return nil
		}

		m.lines[relDir] = strings.Split(string(data), "\n")
		m.logger.Debug("loaded .gitignore", "dir", relDir, "path", path)

		return nil
	})
	if err != nil {
		return fmt.Errorf("walking directory tree: %w", err)
	}

	m.dirs = make([]string, 0, len(m.lines))
	for dir := range m.lines {
		m.dirs = append(m.dirs, dir)
	}
	sort.Slice(m.dirs, func(i, j int) bool {
		if m.dirs[i] == "." || m.dirs[j] == "." {
			return m.dirs[i] == "." && m.dirs[j] != "."
		}
		return m.dirs[i] < m.dirs[j]
	})

	return nil
}

// IsIgnored reports whether path should be ignored per the loaded
// .gitignore rules. path must be relative to the matcher's root. Every
// applicable directory's patterns (root down to path's own parent) are
// combined into a single ordered pattern list, root first, so the last
// matching line across the whole stack decides the outcome — exactly as
// git itself resolves nested .gitignore files, and unlike evaluating each
// directory's file in isolation, which cannot let a nested `!pattern`
// override an ancestor's exclusion.
func (m *GitignoreMatcher) IsIgnored(path string, isDir bool) bool {
	normalizedPath := filepath.ToSlash(path)
	normalizedPath = strings.TrimPrefix(normalizedPath, "./")

	if normalizedPath == "" || normalizedPath == "." {
		return false
	}

	matchPath := normalizedPath
	if isDir && !strings.HasSuffix(matchPath, "/") {
		matchPath += "/"
	}

	parent := filepath.ToSlash(filepath.Dir(normalizedPath))
	matcher := m.combinedMatcher(parent)
	if matcher == nil {
		return false
	}

	ignored := matcher.MatchesPath(matchPath)
	if ignored {
		m.logger.Debug("path matched gitignore", "path", normalizedPath, "scope_dir", parent)
	}
	return ignored
}

// combinedMatcher builds (and memoizes per parent directory) the single
// GitIgnore compiled from every directory that is parent or an ancestor of
// it, root to leaf. Patterns from a nested directory are scoped with that
// directory's prefix so they only apply within its own subtree.
func (m *GitignoreMatcher) combinedMatcher(parent string) *gitignore.GitIgnore {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cached, ok := m.cache[parent]; ok {
		return cached
	}

	var combined []string
	for _, dir := range m.dirs {
		if dir != "." && parent != dir && !strings.HasPrefix(parent, dir+"/") {
			continue
		}
		for _, line := range m.lines[dir] {
			combined = append(combined, scopeLine(dir, line)...)
		}
	}

	var matcher *gitignore.GitIgnore
	if len(combined) > 0 {
		matcher = gitignore.CompileIgnoreLines(combined...)
	}
	m.cache[parent] = matcher
	return matcher
}

// scopeLine rewrites a raw .gitignore line from dir into one or more lines
// so that, once combined with every other applicable directory's lines, it
// only matches within dir's own subtree. Root lines ("."), blanks, and
// comments pass through unchanged.
//
// An anchored pattern (leading "/") only ever meant dir's own top level, so
// it rewrites to a single anchored line. An unanchored pattern is valid at
// any depth under dir, so it rewrites to both the direct-child form and a
// "**"-recursive form, rather than relying on this library's "**" matching
// zero path segments to cover the direct-child case.
func scopeLine(dir, line string) []string {
	trimmed := strings.TrimSpace(line)
	if dir == "." || trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return []string{line}
	}

	negate := strings.HasPrefix(trimmed, "!")
	pattern := strings.TrimPrefix(trimmed, "!")

	anchored := strings.HasPrefix(pattern, "/")
	pattern = strings.TrimPrefix(pattern, "/")

	prefix := ""
	if negate {
		prefix = "!"
	}

	if anchored {
		return []string{prefix + "/" + dir + "/" + pattern}
	}
	return []string{
		prefix + "/" + dir + "/" + pattern,
		prefix + "/" + dir + "/**/" + pattern,
	}
}

// PatternCount returns the number of .gitignore files that were loaded.
func (m *GitignoreMatcher) PatternCount() int {
	return len(m.lines)
}

var _ Ignorer = (*GitignoreMatcher)(nil)
