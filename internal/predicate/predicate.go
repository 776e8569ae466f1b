// Package predicate implements the composable predicate pipeline (C4):
// pure, thread-safe Entry -> bool functions combined by ordered conjunction
// with short-circuit evaluation.
package predicate

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/devkit-go/devkit/internal/metadata"
)

// Predicate is a pure function from Entry to boolean. Implementations must
// be safe for concurrent use across entries.
type Predicate func(metadata.Entry) bool

var log = slog.Default().With("component", "predicate")

// And composes preds into a single Predicate that is the conjunction of
// all of them, evaluated in order with short-circuit on the first
// rejection. An empty list accepts everything.
func And(preds ...Predicate) Predicate {
	return func(e metadata.Entry) bool {
		for _, p := range preds {
			if !p(e) {
				return false
			}
		}
		return true
	}
}

// Glob accepts entries whose Name matches any of the given doublestar
// glob patterns. An invalid pattern never matches; its error is logged at
// debug level each time it is evaluated, rather than panicking.
func Glob(patterns ...string) Predicate {
	return func(e metadata.Entry) bool {
		for _, pattern := range patterns {
			matched, err := doublestar.Match(pattern, e.Name)
			if err != nil {
				log.Debug("invalid glob pattern", "pattern", pattern, "error", err)
				continue
			}
			if matched {
				return true
			}
		}
		return false
	}
}

// Regex accepts entries whose Name matches expr. A compile failure yields
// a predicate that rejects everything and logs once.
func Regex(expr string) Predicate {
	re, err := regexp.Compile(expr)
	if err != nil {
		log.Debug("invalid regex pattern", "pattern", expr, "error", err)
		return func(metadata.Entry) bool { return false }
	}
	return func(e metadata.Entry) bool {
		return re.MatchString(e.Name)
	}
}

// Extension accepts entries whose lowercase extension (without the dot) is
// one of exts.
func Extension(exts ...string) Predicate {
	normalized := make(map[string]bool, len(exts))
	for _, ext := range exts {
		normalized[strings.ToLower(strings.TrimPrefix(ext, "."))] = true
	}
	return func(e metadata.Entry) bool {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(e.Name), "."))
		return normalized[ext]
	}
}

// SizeRange accepts entries whose Size falls within [min, max], inclusive.
// A negative bound disables that side of the range.
func SizeRange(min, max int64) Predicate {
	return func(e metadata.Entry) bool {
		if min >= 0 && e.Size < min {
			return false
		}
		if max >= 0 && e.Size > max {
			return false
		}
		return true
	}
}

// Kind accepts entries whose Kind is one of kinds.
func Kind(kinds ...metadata.Kind) Predicate {
	set := make(map[metadata.Kind]bool, len(kinds))
	for _, k := range kinds {
		set[k] = true
	}
	return func(e metadata.Entry) bool {
		return set[e.Kind]
	}
}

// Category accepts entries whose extension maps to one of the given
// categories via the fixed category table (see categories.go).
func Category(categories ...string) Predicate {
	set := make(map[string]bool, len(categories))
	for _, c := range categories {
		set[strings.ToLower(c)] = true
	}
	return func(e metadata.Entry) bool {
		cat, ok := CategoryOf(e.Name)
		if !ok {
			return false
		}
		return set[cat]
	}
}

// ParseError is returned by the predicate-expression parsers (dates,
// sizes) on malformed input.
type ParseError struct {
	What  string
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.What, e.Input)
}
