// Package buildinfo holds build-time metadata injected via ldflags, shared
// by all three front-end binaries (fexplorer, px, devkitd). These
// variables are set by the build during compilation:
//
//	go build -ldflags "-X github.com/devkit-go/devkit/internal/buildinfo.Version=..."
package buildinfo

import (
	"fmt"
	"runtime"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = "unknown"
)

// OS returns the operating system (from runtime.GOOS).
func OS() string {
	return runtime.GOOS
}

// Arch returns the architecture (from runtime.GOARCH).
func Arch() string {
	return runtime.GOARCH
}

// String formats the full build identity line a --version flag prints.
func String(binary string) string {
	return fmt.Sprintf("%s %s (commit %s, built %s, %s/%s)", binary, Version, Commit, Date, OS(), Arch())
}
