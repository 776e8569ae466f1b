// Package devkitd wires the core C1-C9 packages into a read-only (plus one
// explicit mutation) MCP server, letting an MCP-speaking assistant run the
// same explore/projects operations the fexplorer and px CLIs expose. The
// package owns no rendering beyond the JSON tool results the SDK already
// produces from typed Go structs; front-end concerns stop at the tool
// handler boundary, same as fexplorercli/pxcli's rendering split.
package devkitd

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/devkit-go/devkit/internal/project"
	"github.com/devkit-go/devkit/internal/xconfig"
)

const serverName = "devkitd"

var log = slog.Default().With("component", "devkitd")

// Deps bundles the collaborators the tool handlers need, so main wires
// construction once instead of each handler reaching for package globals.
type Deps struct {
	Store *project.Store
}

// NewServer builds an MCP server with devkit.explore, devkit.projects, and
// devkit.record_access registered.
func NewServer(version string, deps Deps) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "devkit.explore",
		Description: "Walk one or more directories, honoring .gitignore and hidden-file policy, and filter the results through glob/ext/regex/category/kind/size/date predicates.",
	}, handleExplore)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "devkit.projects",
		Description: "List known Git projects ordered by frecency, optionally narrowed by filter (has-changes, inactive-30d, inactive-90d).",
	}, deps.handleProjects)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "devkit.record_access",
		Description: "Record a visit to a project path, refreshing its access_count, last_accessed, and frecency_score.",
	}, deps.handleRecordAccess)

	return server
}

// Run starts the server on stdio and blocks until ctx is cancelled or the
// transport closes.
func Run(ctx context.Context, server *mcp.Server) error {
	log.Info("starting mcp server", "transport", "stdio")
	err := server.Run(ctx, &mcp.StdioTransport{})
	if err != nil {
		log.Error("mcp server exited", "error", err)
	}
	return err
}

// DefaultStorePath resolves the canonical project index cache location,
// matching px's own resolution in internal/pxcli.
func DefaultStorePath() string {
	return filepath.Join(xconfig.CacheDir("px"), "projects.json")
}
