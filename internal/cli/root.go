// Package cli provides the command-line interface for logsift.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"logsift/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "logsift",
		Short: "Index and extract date-grouped log entries",
		Long: `logsift accelerates pulling a single day's entries out of a large,
date-prefixed log file.

Workflow:
  1. build    scan the log once, record each day's starting byte offset
  2. extract  seek straight to a day via the index and copy its lines

Extraction still works without an index; it falls back to a full
line-by-line scan. The log file is expected to start each line with a
YYYY-MM-DD date and to keep each day's lines together; logsift never
validates the date, it only groups by the leading 10 characters.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewBuildCommand())
	rootCmd.AddCommand(commands.NewExtractCommand())
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
