package devkitd

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/devkit-go/devkit/internal/ignore"
	"github.com/devkit-go/devkit/internal/metadata"
	"github.com/devkit-go/devkit/internal/predicate"
	"github.com/devkit-go/devkit/internal/walk"
)

// ExploreInput is the devkit.explore tool's JSON input schema, inferred by
// the SDK from these struct tags.
type ExploreInput struct {
	Roots []string `json:"roots" jsonschema:"directories to traverse"`

	// MaxDepth is optional so omitting it is distinguishable from
	// explicitly passing 0: unset means unbounded, 0 means only the roots
	// themselves are considered (no entries are produced).
	MaxDepth         *int `json:"max_depth,omitempty" jsonschema:"maximum depth below each root; omitted is unbounded, 0 considers only the roots"`
	RespectGitignore bool `json:"respect_gitignore" jsonschema:"apply .gitignore exclusion"`
	IncludeHidden    bool `json:"include_hidden,omitempty" jsonschema:"include dot-prefixed entries"`
	FollowSymlinks   bool `json:"follow_symlinks,omitempty" jsonschema:"follow symlinked directories"`

	Glob     []string `json:"glob,omitempty"`
	Ext      []string `json:"ext,omitempty"`
	Regex    []string `json:"regex,omitempty"`
	Category []string `json:"category,omitempty"`
	Kind     []string `json:"kind,omitempty"`
	MinSize  string   `json:"min_size,omitempty"`
	MaxSize  string   `json:"max_size,omitempty"`
	After    string   `json:"after,omitempty"`
	Before   string   `json:"before,omitempty"`
}

// ExploreEntry is one matching filesystem entry in the tool's output.
type ExploreEntry struct {
	Path  string `json:"path"`
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Size  int64  `json:"size"`
	MTime string `json:"mtime"`
	Depth int    `json:"depth"`
}

// ExploreOutput is the devkit.explore tool's JSON output schema.
type ExploreOutput struct {
	Entries     []ExploreEntry `json:"entries"`
	Diagnostics []string       `json:"diagnostics,omitempty"`
}

func handleExplore(ctx context.Context, req *mcp.CallToolRequest, in ExploreInput) (*mcp.CallToolResult, ExploreOutput, error) {
	roots := in.Roots
	if len(roots) == 0 {
		roots = []string{"."}
	}

	pred, err := explorePredicate(in)
	if err != nil {
		return nil, ExploreOutput{}, err
	}

	maxDepth := -1
	if in.MaxDepth != nil {
		maxDepth = *in.MaxDepth
	}

	cfg := walk.TraverseConfig{
		Roots:            roots,
		MaxDepth:         maxDepth,
		FollowSymlinks:   in.FollowSymlinks,
		RespectGitignore: in.RespectGitignore,
		IncludeHidden:    in.IncludeHidden,
	}

	var ign ignore.Ignorer
	ignorers := []ignore.Ignorer{ignore.NewDefaultIgnoreMatcher()}
	if !cfg.IncludeHidden {
		ignorers = append(ignorers, ignore.NewHiddenFilter())
	}
	if cfg.RespectGitignore {
		for _, root := range roots {
			if m, err := ignore.NewGitignoreMatcher(root); err == nil {
				ignorers = append(ignorers, m)
			}
		}
	}
	ign = ignore.NewCompositeIgnorer(ignorers...)

	w := walk.New()
	entryCh, diagCh := w.Walk(ctx, cfg, ign)

	var out ExploreOutput
	for entryCh != nil || diagCh != nil {
		select {
		case e, ok := <-entryCh:
			if !ok {
				entryCh = nil
				continue
			}
			if pred(e) {
				out.Entries = append(out.Entries, toExploreEntry(e))
			}
		case d, ok := <-diagCh:
			if !ok {
				diagCh = nil
				continue
			}
			out.Diagnostics = append(out.Diagnostics, d.Path+": "+d.Reason)
		}
	}

	return nil, out, nil
}

func toExploreEntry(e metadata.Entry) ExploreEntry {
	return ExploreEntry{
		Path:  e.Path,
		Name:  e.Name,
		Kind:  string(e.Kind),
		Size:  e.Size,
		MTime: e.MTime.Format(time.RFC3339),
		Depth: e.Depth,
	}
}

func explorePredicate(in ExploreInput) (predicate.Predicate, error) {
	var preds []predicate.Predicate

	if len(in.Glob) > 0 {
		preds = append(preds, predicate.Glob(in.Glob...))
	}
	if len(in.Ext) > 0 {
		preds = append(preds, predicate.Extension(in.Ext...))
	}
	for _, expr := range in.Regex {
		preds = append(preds, predicate.Regex(expr))
	}
	if len(in.Category) > 0 {
		preds = append(preds, predicate.Category(in.Category...))
	}
	if len(in.Kind) > 0 {
		kinds := make([]metadata.Kind, len(in.Kind))
		for i, k := range in.Kind {
			kinds[i] = metadata.Kind(k)
		}
		preds = append(preds, predicate.Kind(kinds...))
	}

	var minSize, maxSize int64 = -1, -1
	if in.MinSize != "" {
		n, err := predicate.ParseSize(in.MinSize)
		if err != nil {
			return nil, err
		}
		minSize = n
	}
	if in.MaxSize != "" {
		n, err := predicate.ParseSize(in.MaxSize)
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
	if in.After != "" {
		t, err := predicate.ParseDate(in.After, now)
		if err != nil {
			return nil, err
		}
		after = t
	}
	if in.Before != "" {
		t, err := predicate.ParseDate(in.Before, now)
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
