package xconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FExplorerProfile is one saved query under a `[profiles.<name>]` section.
// Its contents are opaque to the core per §6: fexplorer's front-end decides
// how to interpret keys like "glob", "category", or "max_depth".
type FExplorerProfile map[string]any

// FExplorerConfigPath returns the canonical location of fexplorer's config
// file.
func FExplorerConfigPath() string {
	return filepath.Join(ConfigDir("fexplorer"), "config.toml")
}

// fexplorerFile mirrors the on-disk `[profiles.<name>]` shape for decoding.
type fexplorerFile struct {
	Profiles map[string]FExplorerProfile `toml:"profiles"`
}

// LoadFExplorerProfiles reads path and returns the saved profile dictionary,
// keyed by profile name. A missing file returns an empty, non-nil map.
func LoadFExplorerProfiles(path string) (map[string]FExplorerProfile, error) {
	if path == "" {
		path = FExplorerConfigPath()
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return map[string]FExplorerProfile{}, nil
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	var f fexplorerFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if f.Profiles == nil {
		f.Profiles = make(map[string]FExplorerProfile)
	}
	return f.Profiles, nil
}
