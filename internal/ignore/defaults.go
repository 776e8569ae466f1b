package ignore

import (
	"log/slog"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

// DefaultIgnorePatterns are built-in ignore patterns applied regardless of
// any project .gitignore, covering the usual VCS/build/dependency noise.
var DefaultIgnorePatterns = []string{
	".git/",
	"node_modules/",
	"dist/",
	"build/",
	"coverage/",
	"__pycache__/",
	".next/",
	"target/",
	"vendor/",

	"*.pyc",
	"*.pyo",
	"*.class",
	"*.o",
	"*.obj",

	".DS_Store",
	"Thumbs.db",
}

// DefaultIgnoreMatcher compiles DefaultIgnorePatterns into a matcher
// implementing Ignorer, using the same library as GitignoreMatcher for
// consistent pattern evaluation.
type DefaultIgnoreMatcher struct {
	matcher *gitignore.GitIgnore
	logger  *slog.Logger
}

// NewDefaultIgnoreMatcher compiles DefaultIgnorePatterns. It never returns
// an error: the patterns are compile-time constants and always valid.
func NewDefaultIgnoreMatcher() *DefaultIgnoreMatcher {
	compiled := gitignore.CompileIgnoreLines(DefaultIgnorePatterns...)

	logger := slog.Default().With("component", "default-ignore")
	logger.Debug("default ignore matcher initialized",
		"pattern_count", len(DefaultIgnorePatterns),
	)

	return &DefaultIgnoreMatcher{matcher: compiled, logger: logger}
}

// IsIgnored reports whether path matches any default ignore pattern.
func (d *DefaultIgnoreMatcher) IsIgnored(path string, isDir bool) bool {
	normalizedPath := filepath.ToSlash(path)
	normalizedPath = strings.TrimPrefix(normalizedPath, "./")

	if normalizedPath == "" || normalizedPath == "." {
		return false
	}

	matchPath := normalizedPath
	if isDir && !strings.HasSuffix(matchPath, "/") {
		matchPath += "/"
	}

	if d.matcher.MatchesPath(matchPath) {
		d.logger.Debug("path matched default ignore", "path", normalizedPath)
		return true
	}

	return false
}

// PatternCount returns the number of default ignore patterns.
func (d *DefaultIgnoreMatcher) PatternCount() int {
	return len(DefaultIgnorePatterns)
}

var _ Ignorer = (*DefaultIgnoreMatcher)(nil)
