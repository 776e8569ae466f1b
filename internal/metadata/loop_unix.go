//go:build !windows

package metadata

import "syscall"

// errLoop is the platform syscall error classify compares against to detect
// ELOOP (too many levels of symbolic links).
var errLoop error = syscall.ELOOP
