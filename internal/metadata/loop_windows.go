//go:build windows

package metadata

import "errors"

// errLoop has no Windows equivalent; isLoopError never consults it on this
// platform (see metadata.go).
var errLoop = errors.New("metadata: no ELOOP on windows")
