package devkitd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleExplore_FiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.go"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), nil, 0o644))

	_, out, err := handleExplore(context.Background(), nil, ExploreInput{
		Roots: []string{dir},
		Ext:   []string{"go"},
	})
	require.NoError(t, err)
	require.Len(t, out.Entries, 1)
	assert.Equal(t, "a.go", out.Entries[0].Name)
}

func TestHandleExplore_InvalidSizeReturnsError(t *testing.T) {
	dir := t.TempDir()

	_, _, err := handleExplore(context.Background(), nil, ExploreInput{
		Roots:   []string{dir},
		MinSize: "not-a-size",
	})
	assert.Error(t, err)
}

func TestHandleExplore_DefaultsToCurrentDirWhenNoRoots(t *testing.T) {
	_, _, err := handleExplore(context.Background(), nil, ExploreInput{})
	require.NoError(t, err)
}
