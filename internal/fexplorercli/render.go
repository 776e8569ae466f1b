package fexplorercli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/devkit-go/devkit/internal/metadata"
	"github.com/devkit-go/devkit/internal/sink"
)

// entryRenderer is sink.EntrySink under the name explore.go writes through:
// fexplorer owns rendering, the core never does, per the scope boundary
// documented on that package.
type entryRenderer = sink.EntrySink

// newRenderer constructs the renderer named by format, writing to w.
func newRenderer(format string, w io.Writer) (entryRenderer, error) {
	switch format {
	case "", "table":
		return newTableRenderer(w), nil
	case "json":
		return newJSONRenderer(w), nil
	case "ndjson":
		return newNDJSONRenderer(w), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want table, json, or ndjson)", format)
	}
}

// tableRenderer accumulates entries and prints an aligned column table on
// Close, in the manner of a Cobra front-end that buffers a batch report
// rather than streaming a terminal incrementally.
type tableRenderer struct {
	w       io.Writer
	entries []metadata.Entry
}

func newTableRenderer(w io.Writer) *tableRenderer {
	return &tableRenderer{w: w}
}

func (r *tableRenderer) Emit(e metadata.Entry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *tableRenderer) Close() error {
	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tSIZE\tMODIFIED\tPATH")
	for _, e := range r.entries {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", e.Kind, e.Size, e.MTime.Format("2006-01-02 15:04"), e.Path)
	}
	return tw.Flush()
}

// jsonRenderer collects entries and emits a single JSON array on Close.
type jsonRenderer struct {
	w       io.Writer
	entries []metadata.Entry
}

func newJSONRenderer(w io.Writer) *jsonRenderer {
	return &jsonRenderer{w: w}
}

func (r *jsonRenderer) Emit(e metadata.Entry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *jsonRenderer) Close() error {
	return json.NewEncoder(r.w).Encode(r.entries)
}

// ndjsonRenderer streams one JSON object per entry as it arrives, suited to
// piping into another tool without waiting for the walk to finish.
type ndjsonRenderer struct {
	enc *json.Encoder
}

func newNDJSONRenderer(w io.Writer) *ndjsonRenderer {
	return &ndjsonRenderer{enc: json.NewEncoder(w)}
}

func (r *ndjsonRenderer) Emit(e metadata.Entry) error {
	return r.enc.Encode(e)
}

func (r *ndjsonRenderer) Close() error {
	return nil
}
