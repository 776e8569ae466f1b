// Command devkitd is an MCP server front-end exposing the core's explore
// and project-index operations as read-only (plus one explicit mutation)
// tools over stdio, for MCP-speaking assistants. All behavior lives in
// internal/devkitd; main only wires dependencies and runs the server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/devkit-go/devkit/internal/buildinfo"
	"github.com/devkit-go/devkit/internal/devkitd"
	"github.com/devkit-go/devkit/internal/project"
)

func main() {
	store := project.NewStore(devkitd.DefaultStorePath())
	server := devkitd.NewServer(buildinfo.Version, devkitd.Deps{Store: store})

	if err := devkitd.Run(context.Background(), server); err != nil {
		fmt.Fprintln(os.Stderr, "devkitd:", err)
		os.Exit(1)
	}
}
