package pxcli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devkit-go/devkit/internal/pipeline"
	"github.com/devkit-go/devkit/internal/project"
)

var listFlags struct {
	filter string
	format string
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List known projects ordered by frecency.",
	Long: `list prints every project in the index, sorted by frecency_score
descending (ties broken by name ascending), optionally narrowed by
--filter.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	pf := listCmd.Flags()
	pf.StringVar(&listFlags.filter, "filter", "", "narrow results: has-changes, inactive-30d, inactive-90d")
	pf.StringVar(&listFlags.format, "format", "table", "output format: table, json")
}

func runList(cmd *cobra.Command, args []string) error {
	filter, err := parseFilter(listFlags.filter)
	if err != nil {
		return pipeline.NewUsageError("invalid --filter", err)
	}

	store := openStore(cmd)
	projects, err := store.List(filter)
	if err != nil {
		return pipeline.NewError("list failed", err)
	}

	renderer, err := newProjectRenderer(listFlags.format, cmd.OutOrStdout())
	if err != nil {
		return pipeline.NewUsageError("invalid output format", err)
	}
	for _, p := range projects {
		if err := renderer.Emit(p); err != nil {
			return pipeline.NewError("list failed", err)
		}
	}
	return renderer.Close()
}

func parseFilter(s string) (project.Filter, error) {
	switch project.Filter(s) {
	case project.FilterNone, project.FilterHasChanges, project.FilterInactive30d, project.FilterInactive90d:
		return project.Filter(s), nil
	default:
		return project.FilterNone, fmt.Errorf("unknown filter %q", s)
	}
}
