package devkitd

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/devkit-go/devkit/internal/project"
)

// ProjectsInput is the devkit.projects tool's JSON input schema.
type ProjectsInput struct {
	Filter string `json:"filter,omitempty" jsonschema:"one of: has-changes, inactive-30d, inactive-90d; omit for no filter"`
}

// ProjectsOutput is the devkit.projects tool's JSON output schema.
type ProjectsOutput struct {
	Projects []project.Project `json:"projects"`
}

func (d Deps) handleProjects(ctx context.Context, req *mcp.CallToolRequest, in ProjectsInput) (*mcp.CallToolResult, ProjectsOutput, error) {
	filter, err := parseProjectFilter(in.Filter)
	if err != nil {
		return nil, ProjectsOutput{}, err
	}

	projects, err := d.Store.List(filter)
	if err != nil {
		return nil, ProjectsOutput{}, err
	}
	return nil, ProjectsOutput{Projects: projects}, nil
}

func parseProjectFilter(s string) (project.Filter, error) {
	switch project.Filter(s) {
	case project.FilterNone, project.FilterHasChanges, project.FilterInactive30d, project.FilterInactive90d:
		return project.Filter(s), nil
	default:
		return project.FilterNone, fmt.Errorf("unknown filter %q", s)
	}
}
