package project

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepo(t *testing.T, parentDir, name string) string {
	t.Helper()
	dir := filepath.Join(parentDir, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# "+name+"\nhello\n"), 0o644))
	_, err = wt.Add("README.md")
	require.NoError(t, err)

	sig := &object.Signature{Name: "tester", Email: "tester@example.com", When: time.Now()}
	_, err = wt.Commit("initial commit", &git.CommitOptions{Author: sig})
	require.NoError(t, err)

	return dir
}

func TestStore_LoadMissingReturnsEmptyIndex(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := NewStore(filepath.Join(dir, "projects.json"))

	idx, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, cacheVersion, idx.Version)
	assert.Empty(t, idx.Projects)
}

func TestStore_SyncDiscoversRepos(t *testing.T) {
	t.Parallel()

	scanRoot := t.TempDir()
	initRepo(t, scanRoot, "alpha")
	initRepo(t, scanRoot, "beta")

	cacheDir := t.TempDir()
	s := NewStore(filepath.Join(cacheDir, "projects.json"))

	summary, err := s.Sync(context.Background(), SyncConfig{ScanDirs: []string{scanRoot}, MaxDepth: 3})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.ProjectCount)

	idx, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, idx.Projects, 2)

	for _, p := range idx.Projects {
		assert.NotEmpty(t, p.Git.LastCommitHash)
		assert.Equal(t, "initial commit", p.Git.LastCommitMsg)
		assert.NotZero(t, p.Checksum)
	}
}

func TestStore_SyncPreservesAccessHistory(t *testing.T) {
	t.Parallel()

	scanRoot := t.TempDir()
	repoPath := initRepo(t, scanRoot, "alpha")
	canonical, err := canonicalize(repoPath)
	require.NoError(t, err)

	cacheDir := t.TempDir()
	s := NewStore(filepath.Join(cacheDir, "projects.json"))

	_, err = s.Sync(context.Background(), SyncConfig{ScanDirs: []string{scanRoot}})
	require.NoError(t, err)

	require.NoError(t, s.RecordAccess(repoPath))
	require.NoError(t, s.RecordAccess(repoPath))

	idx, err := s.Load()
	require.NoError(t, err)
	require.Contains(t, idx.Projects, canonical)
	assert.Equal(t, 2, idx.Projects[canonical].AccessCount)

	// Re-sync must preserve the accumulated access_count/last_accessed.
	_, err = s.Sync(context.Background(), SyncConfig{ScanDirs: []string{scanRoot}})
	require.NoError(t, err)

	idx, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Projects[canonical].AccessCount)
	assert.NotNil(t, idx.Projects[canonical].LastAccessed)
}

func TestStore_RecordAccessOnUnknownPathIsNoOp(t *testing.T) {
	t.Parallel()

	cacheDir := t.TempDir()
	s := NewStore(filepath.Join(cacheDir, "projects.json"))

	err := s.RecordAccess(filepath.Join(t.TempDir(), "not-a-repo"))
	require.NoError(t, err)

	idx, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, idx.Projects)
}

func TestStore_ListSortsByFrecencyDescending(t *testing.T) {
	t.Parallel()

	scanRoot := t.TempDir()
	pathA := initRepo(t, scanRoot, "a-project")
	pathB := initRepo(t, scanRoot, "b-project")

	cacheDir := t.TempDir()
	s := NewStore(filepath.Join(cacheDir, "projects.json"))

	_, err := s.Sync(context.Background(), SyncConfig{ScanDirs: []string{scanRoot}})
	require.NoError(t, err)

	require.NoError(t, s.RecordAccess(pathB))
	for i := 0; i < 5; i++ {
		require.NoError(t, s.RecordAccess(pathB))
	}
	_ = pathA

	projects, err := s.List(FilterNone)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "b-project", projects[0].Name)
}

func TestStore_ListFilterHasChanges(t *testing.T) {
	t.Parallel()

	scanRoot := t.TempDir()
	cleanPath := initRepo(t, scanRoot, "clean")
	dirtyPath := initRepo(t, scanRoot, "dirty")
	require.NoError(t, os.WriteFile(filepath.Join(dirtyPath, "README.md"), []byte("changed\n"), 0o644))

	cacheDir := t.TempDir()
	s := NewStore(filepath.Join(cacheDir, "projects.json"))

	_, err := s.Sync(context.Background(), SyncConfig{ScanDirs: []string{scanRoot}})
	require.NoError(t, err)
	_ = cleanPath

	projects, err := s.List(FilterHasChanges)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "dirty", projects[0].Name)
}

func TestStore_ReadmeExcerptCaptured(t *testing.T) {
	t.Parallel()

	scanRoot := t.TempDir()
	initRepo(t, scanRoot, "alpha")

	cacheDir := t.TempDir()
	s := NewStore(filepath.Join(cacheDir, "projects.json"))

	_, err := s.Sync(context.Background(), SyncConfig{ScanDirs: []string{scanRoot}})
	require.NoError(t, err)

	projects, err := s.List(FilterNone)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "alpha", projects[0].ReadmeExcerpt)
}

func TestFilter_Inactive30d(t *testing.T) {
	t.Parallel()

	now := time.Now()
	old := now.Add(-40 * 24 * time.Hour)
	recent := now.Add(-1 * time.Hour)

	stale := Project{LastAccessed: &old}
	fresh := Project{LastAccessed: &recent}
	never := Project{}

	assert.True(t, FilterInactive30d.admits(stale, now))
	assert.False(t, FilterInactive30d.admits(fresh, now))
	assert.True(t, FilterInactive30d.admits(never, now))
}
