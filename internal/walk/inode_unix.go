//go:build !windows

package walk

import (
	"os"
	"syscall"
)

// inode identifies a filesystem object by (device, inode) so that two
// distinct symlinked paths resolving to the same target are recognized as
// the same visited node.
type inode struct {
	dev uint64
	ino uint64
}

// inodeKey resolves path's target through os.Stat (following the symlink
// exactly once) and returns its (device, inode) pair.
func inodeKey(path string) (inode, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return inode{}, false
	}
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return inode{}, false
	}
	return inode{dev: uint64(stat.Dev), ino: stat.Ino}, true
}
