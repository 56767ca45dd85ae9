package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"logsift/pkg/config"
	"logsift/pkg/index"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// BuildOptions holds command-line options for the build command.
type BuildOptions struct {
	Config string
	Index  string
}

// NewBuildCommand creates the build command.
func NewBuildCommand() *cobra.Command {
	opts := &BuildOptions{}

	cmd := &cobra.Command{
		Use:   "build <log-file>",
		Short: "Build the date offset index for a log file",
		Long: `Scan a log file once and record the byte offset of the first line for
each day, so later extractions can seek straight to a day's entries.

Each line's leading 10 characters are taken as its date key, with no
validation. Only the first occurrence of a key is recorded; the index
therefore assumes each day's lines are contiguous in the file.

The index is a plain text file, one "<date> <offset>" pair per line, and
is rebuilt from scratch on every run. Rebuild it whenever the log file
changes; a stale index is not detected and silently misdirects extraction.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVar(&opts.Config, "config", "", "Path to YAML config file")
	cmd.Flags().StringVar(&opts.Index, "index", "", "Index file path (overrides config)")

	return cmd
}

func runBuild(cmd *cobra.Command, args []string, opts *BuildOptions) error {
	logPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Resolve(ctx, opts.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if opts.Index != "" {
		cfg.IndexFile = opts.Index
	}

	ix, err := index.Build(logPath)
	if err != nil {
		return fmt.Errorf("building index: %w", err)
	}

	if err := ix.Write(cfg.IndexFile); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Index built successfully in %s\n", cfg.IndexFile)
	return nil
}
