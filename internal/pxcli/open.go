package pxcli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devkit-go/devkit/internal/fuzzy"
	"github.com/devkit-go/devkit/internal/pipeline"
	"github.com/devkit-go/devkit/internal/project"
)

var openFlags struct {
	noRecord bool
}

var openCmd = &cobra.Command{
	Use:   "open [query]",
	Short: "Resolve a fuzzy query to the best-matching project path.",
	Long: `open ranks every known project against query by blended fuzzy-
match/frecency score and prints the winning path on stdout. An empty query
resolves to the most frecent project. Launching an editor or shell against
the printed path is the caller's responsibility -- core only resolves and
records the visit via record_access, per the abstract "open" hook.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOpen,
}

func init() {
	openCmd.Flags().BoolVar(&openFlags.noRecord, "no-record", false, "resolve without recording a visit")
}

func runOpen(cmd *cobra.Command, args []string) error {
	var query string
	if len(args) == 1 {
		query = args[0]
	}

	store := openStore(cmd)
	projects, err := store.List(project.FilterNone)
	if err != nil {
		return pipeline.NewError("open failed", err)
	}
	if len(projects) == 0 {
		return pipeline.NewNotFoundError("no known projects; run `px sync` first", nil)
	}

	candidates := make([]fuzzy.Candidate, len(projects))
	byPath := make(map[string]project.Project, len(projects))
	for i, p := range projects {
		candidates[i] = fuzzy.Candidate{Name: p.Name, Path: p.Path, Frecency: p.FrecencyScore}
		byPath[p.Path] = p
	}

	ranked := fuzzy.Rank(query, candidates)
	if len(ranked) == 0 {
		return pipeline.NewNotFoundError(fmt.Sprintf("no project matches %q", query), nil)
	}

	winner := ranked[0].Candidate.Path
	if !openFlags.noRecord {
		if err := store.RecordAccess(winner); err != nil {
			return pipeline.NewError("open failed", err)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), winner)
	return nil
}
