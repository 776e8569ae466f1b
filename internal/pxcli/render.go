package pxcli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/devkit-go/devkit/internal/project"
	"github.com/devkit-go/devkit/internal/sink"
)

// projectRenderer is sink.ProjectSink under the name list.go writes through,
// analogous to fexplorercli's entryRenderer: rendering is the front-end's
// concern, never the core's.
type projectRenderer = sink.ProjectSink

func newProjectRenderer(format string, w io.Writer) (projectRenderer, error) {
	switch format {
	case "", "table":
		return &projectTableRenderer{w: w}, nil
	case "json":
		return &projectJSONRenderer{w: w}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want table or json)", format)
	}
}

type projectTableRenderer struct {
	w        io.Writer
	projects []project.Project
}

func (r *projectTableRenderer) Emit(p project.Project) error {
	r.projects = append(r.projects, p)
	return nil
}

func (r *projectTableRenderer) Close() error {
	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCORE\tBRANCH\tCHANGES\tPATH")
	for _, p := range r.projects {
		changes := "clean"
		if p.Git.HasUncommitted {
			changes = "dirty"
		}
		fmt.Fprintf(tw, "%.2f\t%s\t%s\t%s\n", p.FrecencyScore, p.Git.Branch, changes, p.Path)
	}
	return tw.Flush()
}

type projectJSONRenderer struct {
	w        io.Writer
	projects []project.Project
}

func (r *projectJSONRenderer) Emit(p project.Project) error {
	r.projects = append(r.projects, p)
	return nil
}

func (r *projectJSONRenderer) Close() error {
	return json.NewEncoder(r.w).Encode(r.projects)
}
