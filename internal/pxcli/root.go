// Package pxcli implements the Cobra command hierarchy for the px project
// switcher CLI: a thin front-end over internal/project, internal/frecency,
// and internal/fuzzy. Shell integration (cd, $EDITOR launch) is external to
// this package; px only resolves and prints the winning path per spec's
// abstract "open" hook.
package pxcli

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/devkit-go/devkit/internal/buildinfo"
	"github.com/devkit-go/devkit/internal/pipeline"
	"github.com/devkit-go/devkit/internal/project"
	"github.com/devkit-go/devkit/internal/xconfig"
)

var rootCmd = &cobra.Command{
	Use:   "px",
	Short: "Frecency-ranked Git project switcher.",
	Long: `px scans configured directories for Git repositories, tracks how
often and how recently each one is visited, and ranks them by a blended
frecency/fuzzy-match score so a query resolves to the project you meant.`,
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
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String("px"))
			return nil
		}
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress diagnostics")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("version", false, "print version information and exit")
	rootCmd.PersistentFlags().String("config", "", "path to px config.toml (overrides the default location)")
	rootCmd.PersistentFlags().String("cache-file", "", "path to the project index cache (overrides the default location)")
	_ = rootCmd.PersistentFlags().MarkHidden("cache-file")

	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(accessCmd)
	rootCmd.AddCommand(openCmd)
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

// resolveConfig loads px's layered configuration, honoring --config.
func resolveConfig(cmd *cobra.Command) (xconfig.PxConfig, error) {
	configPath, _ := cmd.Flags().GetString("config")
	return xconfig.ResolvePx(xconfig.PxResolveOptions{ConfigPath: configPath})
}

// openStore builds the Store backed by the canonical (or test-overridden)
// project cache location.
func openStore(cmd *cobra.Command) *project.Store {
	if override, _ := cmd.Flags().GetString("cache-file"); override != "" {
		return project.NewStore(override)
	}
	return project.NewStore(filepath.Join(xconfig.CacheDir("px"), "projects.json"))
}
