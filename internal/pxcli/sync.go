package pxcli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devkit-go/devkit/internal/pipeline"
	"github.com/devkit-go/devkit/internal/project"
)

var syncFlags struct {
	maxDepth     int
	probeWorkers int
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Rescan configured directories for Git repositories.",
	Long: `sync walks every configured scan_dirs entry, probes each repository
it finds, merges the result with prior access history at the same
canonical path, and writes the updated project index atomically.`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	pf := syncCmd.Flags()
	pf.IntVar(&syncFlags.maxDepth, "max-depth", 3, "maximum depth below each scan root")
	pf.IntVar(&syncFlags.probeWorkers, "probe-workers", 0, "concurrent git-probe workers (0 = auto, max 4)")
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return pipeline.NewUsageError("invalid px configuration", err)
	}
	if len(cfg.ScanDirs) == 0 {
		return pipeline.NewUsageError("no scan_dirs configured", nil)
	}

	store := openStore(cmd)
	summary, err := store.Sync(cmd.Context(), project.SyncConfig{
		ScanDirs:     cfg.ScanDirs,
		MaxDepth:     syncFlags.maxDepth,
		ProbeWorkers: syncFlags.probeWorkers,
	})
	if err != nil {
		return pipeline.NewError("sync failed", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "synced %d project(s) in %s\n", summary.ProjectCount, summary.Duration)
	return nil
}
