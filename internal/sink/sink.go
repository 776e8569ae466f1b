// Package sink defines the streaming producer/consumer boundary (C9)
// between the core and any renderer. The core assumes nothing about the
// sink's output form; it only emits items and diagnostics.
package sink

import (
	"github.com/devkit-go/devkit/internal/metadata"
	"github.com/devkit-go/devkit/internal/project"
)

// Diagnostic is a non-fatal message traveling on the sideband channel,
// kept separate from result data so a quiet flag can suppress it without
// affecting output.
type Diagnostic struct {
	Path   string
	Reason string
	Err    error
}

// EntrySink consumes a stream of Entry values produced by a walk. Emit is
// called once per entry; Close is called once, after the last Emit of a
// stream that ended without error.
type EntrySink interface {
	Emit(metadata.Entry) error
	Close() error
}

// ProjectSink consumes a stream of ranked Projects produced by an index
// query.
type ProjectSink interface {
	Emit(project.Project) error
	Close() error
}
