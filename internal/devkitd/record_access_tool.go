package devkitd

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RecordAccessInput is the devkit.record_access tool's JSON input schema.
// This is the one mutating tool the server exposes, mirroring the `access`
// subcommand the px CLI offers for the same operation.
type RecordAccessInput struct {
	Path string `json:"path" jsonschema:"project path to record a visit for"`
}

// RecordAccessOutput is the devkit.record_access tool's JSON output
// schema; it has no payload fields beyond success, since the operation is
// a silent no-op on any path that is not a known or valid repository.
type RecordAccessOutput struct {
	Recorded bool `json:"recorded"`
}

func (d Deps) handleRecordAccess(ctx context.Context, req *mcp.CallToolRequest, in RecordAccessInput) (*mcp.CallToolResult, RecordAccessOutput, error) {
	if err := d.Store.RecordAccess(in.Path); err != nil {
		return nil, RecordAccessOutput{}, err
	}
	return nil, RecordAccessOutput{Recorded: true}, nil
}
