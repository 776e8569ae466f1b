// Command px is the CLI entry point for the frecency-ranked Git project
// switcher. All behavior lives in internal/pxcli; main only hands off the
// process exit code.
package main

import (
	"os"

	"github.com/devkit-go/devkit/internal/pxcli"
)

func main() {
	os.Exit(pxcli.Execute())
}
