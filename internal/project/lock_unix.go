//go:build !windows

package project

import "golang.org/x/sys/unix"

// flock takes an exclusive advisory lock on fd, blocking until available.
func flock(fd int) error {
	return unix.Flock(fd, unix.LOCK_EX)
}

// funlock releases the advisory lock taken by flock.
func funlock(fd int) error {
	return unix.Flock(fd, unix.LOCK_UN)
}
