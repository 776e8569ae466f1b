package ignore

import (
	"log/slog"
	"path/filepath"
	"strings"
)

// CompositeIgnorer chains multiple Ignorer implementations and reports a
// path ignored if ANY source matches it.
type CompositeIgnorer struct {
	ignorers []Ignorer
	logger   *slog.Logger
}

// NewCompositeIgnorer chains the given ignorers in evaluation order. Nil
// ignorers are silently skipped, so callers can pass an optional
// GitignoreMatcher unconditionally.
func NewCompositeIgnorer(ignorers ...Ignorer) *CompositeIgnorer {
	filtered := make([]Ignorer, 0, len(ignorers))
	for _, ig := range ignorers {
		if ig != nil {
			filtered = append(filtered, ig)
		}
	}

	return &CompositeIgnorer{
		ignorers: filtered,
		logger:   slog.Default().With("component", "composite-ignorer"),
	}
}

// IsIgnored reports whether path should be ignored by any chained source.
func (c *CompositeIgnorer) IsIgnored(path string, isDir bool) bool {
	for _, ig := range c.ignorers {
		if ig.IsIgnored(path, isDir) {
			return true
		}
	}
	return false
}

// IgnorerCount returns the number of active ignorers in the chain.
func (c *CompositeIgnorer) IgnorerCount() int {
	return len(c.ignorers)
}

var _ Ignorer = (*CompositeIgnorer)(nil)

// HiddenFilter excludes dot-prefixed path components independent of
// gitignore content, implementing the `include_hidden=false` policy. It is
// evaluated ahead of gitignore so hidden-file rejection holds even for a
// tree with no .gitignore at all.
type HiddenFilter struct{}

// NewHiddenFilter returns a HiddenFilter.
func NewHiddenFilter() HiddenFilter {
	return HiddenFilter{}
}

// IsIgnored reports whether any component of path begins with a dot.
func (HiddenFilter) IsIgnored(path string, _ bool) bool {
	normalized := filepath.ToSlash(path)
	for _, part := range strings.Split(normalized, "/") {
		if strings.HasPrefix(part, ".") && part != "." && part != ".." {
			return true
		}
	}
	return false
}

var _ Ignorer = HiddenFilter{}
