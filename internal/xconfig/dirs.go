// Package xconfig resolves layered configuration for the px and fexplorer
// front-ends: built-in defaults, a user-global TOML file, environment
// variables, and explicit flag overrides, following the teacher's
// multi-source resolver but simplified to the flatter config shape this
// spec calls for (no profile inheritance, no relevance tiers).
package xconfig

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// ConfigDir returns the host platform's user configuration directory,
// resolved via XDG Base Directory conventions on every OS (adrg/xdg
// normalizes the Windows/macOS equivalents too).
func ConfigDir(app string) string {
	return filepath.Join(xdg.ConfigHome, app)
}

// CacheDir returns the host platform's user cache directory for app.
func CacheDir(app string) string {
	return filepath.Join(xdg.CacheHome, app)
}
