// Package fexplorercli implements the Cobra command hierarchy for the
// fexplorer CLI: a thin front-end over internal/walk, internal/ignore,
// internal/predicate, and internal/sink. Cobra's flag parsing and the
// output renderer are both external collaborators the core never
// references, per §1's scope boundary.
package fexplorercli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/devkit-go/devkit/internal/buildinfo"
	"github.com/devkit-go/devkit/internal/pipeline"
)

var rootCmd = &cobra.Command{
	Use:   "fexplorer",
	Short: "Fast, gitignore-aware directory traversal and query tool.",
	Long: `fexplorer walks a directory tree in parallel, honoring .gitignore
and hidden-file policy, and filters the results through a composable
predicate pipeline (glob, regex, extension, size, date, kind, category).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
			level = slog.LevelError
		}
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = slog.LevelDebug
		}
		slog.SetLogLoggerLevel(level)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if version, _ := cmd.Flags().GetBool("version"); version {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String("fexplorer"))
			return nil
		}
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress diagnostics")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("version", false, "print version information and exit")
	rootCmd.AddCommand(exploreCmd)
}

// Execute runs the root command and returns a process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		slog.Error(err.Error())
		return extractExitCode(err)
	}
	return int(pipeline.ExitSuccess)
}

func extractExitCode(err error) int {
	if err == nil {
		return int(pipeline.ExitSuccess)
	}
	var coreErr *pipeline.CoreError
	if errors.As(err, &coreErr) {
		return coreErr.Code
	}
	return int(pipeline.ExitError)
}

// RootCmd returns the root command, for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}
