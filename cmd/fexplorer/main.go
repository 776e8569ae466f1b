// Command fexplorer is the CLI entry point for the gitignore-aware
// directory traversal and query tool. All behavior lives in
// internal/fexplorercli; main only hands off the process exit code.
package main

import (
	"os"

	"github.com/devkit-go/devkit/internal/fexplorercli"
)

func main() {
	os.Exit(fexplorercli.Execute())
}
