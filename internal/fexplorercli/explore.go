package fexplorercli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/devkit-go/devkit/internal/ignore"
	"github.com/devkit-go/devkit/internal/metadata"
	"github.com/devkit-go/devkit/internal/pipeline"
	"github.com/devkit-go/devkit/internal/predicate"
	"github.com/devkit-go/devkit/internal/walk"
)

// exploreFlags collects the parsed flag values for the explore command,
// mirroring the teacher's FlagValues/BindFlags split between registration
// and validated, typed access.
type exploreFlags struct {
	maxDepth       int
	threads        int
	noGitignore    bool
	includeHidden  bool
	followSymlinks bool

	globs      []string
	exts       []string
	regexes    []string
	categories []string
	kinds      []string

	minSize string
	maxSize string
	after   string
	before  string

	format string
}

var exploreFV = &exploreFlags{}

var exploreCmd = &cobra.Command{
	Use:   "explore [roots...]",
	Short: "Traverse one or more directories and list matching entries.",
	Long: `explore walks the given roots in parallel, honoring .gitignore and
hidden-file policy by default, then filters the resulting entries through
any combination of the --glob, --ext, --regex, --category, --kind,
--min-size/--max-size, and --after/--before predicates.`,
	Args: cobra.ArbitraryArgs,
	RunE: runExplore,
}

func init() {
	pf := exploreCmd.Flags()
	pf.IntVar(&exploreFV.maxDepth, "max-depth", -1, "maximum depth below each root (negative = unbounded, 0 = roots only)")
	pf.IntVar(&exploreFV.threads, "threads", 0, "worker pool size (0 = auto)")
	pf.BoolVar(&exploreFV.noGitignore, "no-gitignore", false, "do not apply .gitignore exclusion")
	pf.BoolVar(&exploreFV.includeHidden, "include-hidden", false, "include dot-prefixed entries")
	pf.BoolVar(&exploreFV.followSymlinks, "follow-symlinks", false, "follow symlinked directories")

	pf.StringArrayVar(&exploreFV.globs, "glob", nil, "include entries matching glob pattern (repeatable)")
	pf.StringArrayVar(&exploreFV.exts, "ext", nil, "include entries with extension (repeatable, e.g. --ext go --ext ts)")
	pf.StringArrayVar(&exploreFV.regexes, "regex", nil, "include entries matching regular expression (repeatable)")
	pf.StringArrayVar(&exploreFV.categories, "category", nil, "include entries in category (repeatable: source, config, docs, media, data, archive, executable)")
	pf.StringArrayVar(&exploreFV.kinds, "kind", nil, "include entries of kind (repeatable: file, directory, symlink)")

	pf.StringVar(&exploreFV.minSize, "min-size", "", "minimum size, e.g. 10KB")
	pf.StringVar(&exploreFV.maxSize, "max-size", "", "maximum size, e.g. 10MB")
	pf.StringVar(&exploreFV.after, "after", "", "only entries modified after this date")
	pf.StringVar(&exploreFV.before, "before", "", "only entries modified before this date")

	pf.StringVar(&exploreFV.format, "format", "table", "output format: table, json, ndjson")
}

func runExplore(cmd *cobra.Command, args []string) error {
	roots := args
	if len(roots) == 0 {
		roots = []string{"."}
	}

	pred, err := buildPredicate(exploreFV)
	if err != nil {
		return pipeline.NewUsageError("invalid predicate expression", err)
	}

	renderer, err := newRenderer(exploreFV.format, cmd.OutOrStdout())
	if err != nil {
		return pipeline.NewUsageError("invalid output format", err)
	}

	cfg := walk.TraverseConfig{
		Roots:            roots,
		MaxDepth:         exploreFV.maxDepth,
		FollowSymlinks:   exploreFV.followSymlinks,
		RespectGitignore: !exploreFV.noGitignore,
		IncludeHidden:    exploreFV.includeHidden,
		Threads:          exploreFV.threads,
	}

	ign := buildIgnorer(roots, cfg)

	w := walk.New()
	entryCh, diagCh := w.Walk(cmd.Context(), cfg, ign)

	if err := drain(entryCh, diagCh, pred, renderer); err != nil {
		return pipeline.NewError("explore failed", err)
	}
	return renderer.Close()
}

// buildIgnorer composes the default ignore patterns unconditionally and the
// hidden-file filter unless hidden entries are included, adding a
// GitignoreMatcher per root unless disabled. A
// matcher that fails to construct (e.g. the root does not exist) is
// skipped; the walk itself reports the unreadable root as a diagnostic.
func buildIgnorer(roots []string, cfg walk.TraverseConfig) ignore.Ignorer {
	ignorers := []ignore.Ignorer{ignore.NewDefaultIgnoreMatcher()}
	if !cfg.IncludeHidden {
		ignorers = append(ignorers, ignore.NewHiddenFilter())
	}
	if cfg.RespectGitignore {
		for _, root := range roots {
			m, err := ignore.NewGitignoreMatcher(root)
			if err != nil {
				continue
			}
			ignorers = append(ignorers, m)
		}
	}
	return ignore.NewCompositeIgnorer(ignorers...)
}

func buildPredicate(fv *exploreFlags) (predicate.Predicate, error) {
	var preds []predicate.Predicate

	if len(fv.globs) > 0 {
		preds = append(preds, predicate.Glob(fv.globs...))
	}
	if len(fv.exts) > 0 {
		preds = append(preds, predicate.Extension(fv.exts...))
	}
	for _, expr := range fv.regexes {
		preds = append(preds, predicate.Regex(expr))
	}
	if len(fv.categories) > 0 {
		preds = append(preds, predicate.Category(fv.categories...))
	}
	if len(fv.kinds) > 0 {
		kinds, err := parseKinds(fv.kinds)
		if err != nil {
			return nil, err
		}
		preds = append(preds, predicate.Kind(kinds...))
	}

	var minSize, maxSize int64 = -1, -1
	if fv.minSize != "" {
		n, err := predicate.ParseSize(fv.minSize)
		if err != nil {
			return nil, err
		}
		minSize = n
	}
	if fv.maxSize != "" {
		n, err := predicate.ParseSize(fv.maxSize)
		if err != nil {
			return nil, err
		}
		maxSize = n
	}
	if minSize >= 0 || maxSize >= 0 {
		preds = append(preds, predicate.SizeRange(minSize, maxSize))
	}

	now := time.Now()
	var after, before time.Time
	if fv.after != "" {
		t, err := predicate.ParseDate(fv.after, now)
		if err != nil {
			return nil, err
		}
		after = t
	}
	if fv.before != "" {
		t, err := predicate.ParseDate(fv.before, now)
		if err != nil {
			return nil, err
		}
		before = t
	}
	if !after.IsZero() || !before.IsZero() {
		preds = append(preds, predicate.MTimeRange(after, before))
	}

	return predicate.And(preds...), nil
}

func parseKinds(raw []string) ([]metadata.Kind, error) {
	kinds := make([]metadata.Kind, 0, len(raw))
	for _, k := range raw {
		switch metadata.Kind(k) {
		case metadata.KindFile, metadata.KindDirectory, metadata.KindSymlink, metadata.KindOther:
			kinds = append(kinds, metadata.Kind(k))
		default:
			return nil, &predicate.ParseError{What: "kind", Input: k}
		}
	}
	return kinds, nil
}

func drain(entryCh <-chan metadata.Entry, diagCh <-chan walk.Diagnostic, pred predicate.Predicate, renderer entryRenderer) error {
	for entryCh != nil || diagCh != nil {
		select {
		case e, ok := <-entryCh:
			if !ok {
				entryCh = nil
				continue
			}
			if pred(e) {
				if err := renderer.Emit(e); err != nil {
					return err
				}
			}
		case d, ok := <-diagCh:
			if !ok {
				diagCh = nil
				continue
			}
			fmt.Fprintf(os.Stderr, "explore: %s: %s\n", d.Path, d.Reason)
		}
	}
	return nil
}
