//go:build windows

package walk

import "path/filepath"

// inode on Windows falls back to the resolved real path, since stable
// (device, inode) identifiers require extra handle-based syscalls not
// worth the complexity here; two different paths resolving to the same
// real path are still recognized as the same visited node.
type inode struct {
	real string
}

func inodeKey(path string) (inode, bool) {
	real, err := filepath.EvalSymlinks(path)
	if err != nil {
		return inode{}, false
	}
	return inode{real: real}, true
}
