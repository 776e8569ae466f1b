package pxcli

import (
	"github.com/spf13/cobra"

	"github.com/devkit-go/devkit/internal/pipeline"
)

var accessCmd = &cobra.Command{
	Use:   "access <path>",
	Short: "Record a visit to a project path.",
	Long: `access increments access_count and refreshes last_accessed and
frecency_score for the given path. A path not yet in the index is added if
it is a valid Git repository; any other path is a silent no-op, per
contract.`,
	Args: cobra.ExactArgs(1),
	RunE: runAccess,
}

func runAccess(cmd *cobra.Command, args []string) error {
	store := openStore(cmd)
	if err := store.RecordAccess(args[0]); err != nil {
		return pipeline.NewError("record_access failed", err)
	}
	return nil
}
