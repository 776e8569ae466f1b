package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitignoreMatcher_RootPattern(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("*.log\nbuild/\n"), 0o644))

	m, err := NewGitignoreMatcher(dir)
	require.NoError(t, err)

	assert.True(t, m.IsIgnored("debug.log", false))
	assert.True(t, m.IsIgnored("build", true))
	assert.False(t, m.IsIgnored("main.go", false))
}

func TestGitignoreMatcher_NestedOverridesParent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("*.log\n"), 0o644))
	sub := filepath.Join(dir, "keep")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, ".gitignore"), []byte("!important.log\n"), 0o644))

	m, err := NewGitignoreMatcher(dir)
	require.NoError(t, err)

	assert.True(t, m.IsIgnored("other.log", false))
	assert.True(t, m.IsIgnored("keep/other.log", false))
	assert.False(t, m.IsIgnored("keep/important.log", false),
		"nested .gitignore negation should re-include the file")
}

func TestGitignoreMatcher_NoGitignoreFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	m, err := NewGitignoreMatcher(dir)
	require.NoError(t, err)
	assert.Equal(t, 0, m.PatternCount())
	assert.False(t, m.IsIgnored("anything.go", false))
}

func TestDefaultIgnoreMatcher_KnownPatterns(t *testing.T) {
	t.Parallel()

	m := NewDefaultIgnoreMatcher()
	assert.True(t, m.IsIgnored("node_modules", true))
	assert.True(t, m.IsIgnored(".git", true))
	assert.True(t, m.IsIgnored("main.pyc", false))
	assert.False(t, m.IsIgnored("main.go", false))
}

func TestHiddenFilter(t *testing.T) {
	t.Parallel()

	h := NewHiddenFilter()
	assert.True(t, h.IsIgnored(".env", false))
	assert.True(t, h.IsIgnored("src/.hidden/file.go", false))
	assert.False(t, h.IsIgnored("src/main.go", false))
	assert.False(t, h.IsIgnored(".", true))
}

func TestCompositeIgnorer_AnyMatch(t *testing.T) {
	t.Parallel()

	c := NewCompositeIgnorer(NewDefaultIgnoreMatcher(), NewHiddenFilter())
	assert.True(t, c.IsIgnored(".git", true))
	assert.True(t, c.IsIgnored(".env", false))
	assert.False(t, c.IsIgnored("main.go", false))
	assert.Equal(t, 2, c.IgnorerCount())
}

func TestCompositeIgnorer_SkipsNilIgnorers(t *testing.T) {
	t.Parallel()

	c := NewCompositeIgnorer(nil, NewHiddenFilter(), nil)
	assert.Equal(t, 1, c.IgnorerCount())
}
