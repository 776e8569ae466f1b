package devkitd

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

	"github.com/devkit-go/devkit/internal/project"
)

func initRepo(t *testing.T, parentDir, name string) string {
	t.Helper()
	dir := filepath.Join(parentDir, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# "+name), 0o644))
	_, err = wt.Add("README.md")
	require.NoError(t, err)

	sig := &object.Signature{Name: "tester", Email: "tester@example.com", When: time.Now()}
	_, err = wt.Commit("initial commit", &git.CommitOptions{Author: sig})
	require.NoError(t, err)

	return dir
}

func TestHandleProjects_ListsSyncedProjects(t *testing.T) {
	scanRoot := t.TempDir()
	initRepo(t, scanRoot, "alpha")

	store := project.NewStore(filepath.Join(t.TempDir(), "projects.json"))
	_, err := store.Sync(context.Background(), project.SyncConfig{ScanDirs: []string{scanRoot}})
	require.NoError(t, err)

	deps := Deps{Store: store}
	_, out, err := deps.handleProjects(context.Background(), nil, ProjectsInput{})
	require.NoError(t, err)
	require.Len(t, out.Projects, 1)
	assert.Equal(t, "alpha", out.Projects[0].Name)
}

func TestHandleProjects_UnknownFilterReturnsError(t *testing.T) {
	store := project.NewStore(filepath.Join(t.TempDir(), "projects.json"))
	deps := Deps{Store: store}

	_, _, err := deps.handleProjects(context.Background(), nil, ProjectsInput{Filter: "bogus"})
	assert.Error(t, err)
}
