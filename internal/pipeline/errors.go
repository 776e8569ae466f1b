// Package pipeline defines the error type and exit-code taxonomy shared by
// every front-end binary (fexplorer, px, devkitd) and the core packages they
// wire together.
package pipeline

import "fmt"

// CoreError is a structured error carrying a process exit code. Front-ends
// unwrap the top-level error chain with errors.As to recover the intended
// exit code for main.go, instead of guessing from error text.
type CoreError struct {
	// Code is the process exit code associated with this error.
	Code int

	// Message is a human-readable description of what went wrong.
	Message string

	// Err is the underlying error that caused this CoreError, if any.
	Err error
}

// Error returns the formatted error message. If an underlying error is
// present, it is included in the output separated by a colon.
func (e *CoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As to
// traverse the error chain.
func (e *CoreError) Unwrap() error {
	return e.Err
}

// NewError creates a CoreError with ExitError (1) for generic failures.
func NewError(msg string, err error) *CoreError {
	return &CoreError{Code: int(ExitError), Message: msg, Err: err}
}

// NewUsageError creates a CoreError with ExitUsage (2) for invalid flags,
// malformed configuration, or invalid predicate expressions.
func NewUsageError(msg string, err error) *CoreError {
	return &CoreError{Code: int(ExitUsage), Message: msg, Err: err}
}

// NewNotFoundError creates a CoreError with ExitNotFound (3) for a missing
// path, a path outside any known project, or a directory that is not a git
// repository when one was required.
func NewNotFoundError(msg string, err error) *CoreError {
	return &CoreError{Code: int(ExitNotFound), Message: msg, Err: err}
}
