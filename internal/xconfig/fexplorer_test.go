package xconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFExplorerProfiles_MissingFileReturnsEmpty(t *testing.T) {
	t.Parallel()

	profiles, err := LoadFExplorerProfiles(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestLoadFExplorerProfiles_ParsesOpaqueDicts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := `
[profiles.go-sources]
category = "source"
max_depth = 5

[profiles.big-media]
category = "media"
min_size = "10MB"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	profiles, err := LoadFExplorerProfiles(path)
	require.NoError(t, err)
	require.Contains(t, profiles, "go-sources")
	assert.Equal(t, "source", profiles["go-sources"]["category"])
	assert.Contains(t, profiles, "big-media")
	assert.Equal(t, "10MB", profiles["big-media"]["min_size"])
}
