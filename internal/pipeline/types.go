// Package pipeline defines the error type and exit-code taxonomy shared by
// every front-end binary (fexplorer, px, devkitd) and the core packages they
// wire together.
//
// This package has zero external dependencies -- only stdlib types. It
// contains no business logic; Entry, Project, and the other domain DTOs
// live in the packages that own them (internal/metadata, internal/project).
package pipeline

// ExitCode is the process exit status a CoreError carries, per the error
// handling design's four-way taxonomy.
type ExitCode int

const (
	// ExitSuccess indicates the operation completed with no error.
	ExitSuccess ExitCode = 0

	// ExitError indicates a generic, unclassified failure.
	ExitError ExitCode = 1

	// ExitUsage indicates invalid flags, malformed configuration, or an
	// invalid predicate expression.
	ExitUsage ExitCode = 2

	// ExitNotFound indicates a missing path, a path outside any known
	// project, or a directory that is not a git repository when one was
	// required.
	ExitNotFound ExitCode = 3
)
