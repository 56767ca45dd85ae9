package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"logsift/pkg/config"
	"logsift/pkg/extract"
)

// ExtractOptions holds command-line options for the extract command.
type ExtractOptions struct {
	Config    string
	Index     string
	OutputDir string
	Quiet     bool
}

// NewExtractCommand creates the extract command.
func NewExtractCommand() *cobra.Command {
	opts := &ExtractOptions{}

	cmd := &cobra.Command{
		Use:   "extract <log-file> <date>",
		Short: "Extract all log entries for a single date",
		Long: `Copy every log line for the given date into output_<date>.txt inside
the output directory.

If the index covers the date, extraction seeks straight to the day's
first line and copies forward until the date changes. Without an index,
or for a date the index does not know, the whole file is scanned line by
line instead. The scan finds a day's lines wherever they appear; the
indexed path only covers the day's first contiguous run.

A date that matches nothing produces an empty output file, not an error.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVar(&opts.Config, "config", "", "Path to YAML config file")
	cmd.Flags().StringVar(&opts.Index, "index", "", "Index file path (overrides config)")
	cmd.Flags().StringVar(&opts.OutputDir, "output-dir", "", "Output directory (overrides config)")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Suppress progress messages")

	return cmd
}

func runExtract(cmd *cobra.Command, args []string, opts *ExtractOptions) error {
	logPath := args[0]
	date := args[1]
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
	if opts.OutputDir != "" {
		cfg.OutputDir = opts.OutputDir
	}

	ex := extract.New(cfg.IndexFile, cfg.OutputDir)

	result, err := ex.Extract(logPath, date)
	if err != nil {
		return fmt.Errorf("extracting %s: %w", date, err)
	}

	if !opts.Quiet {
		out := cmd.OutOrStdout()
		switch result.Mode {
		case extract.ModeIndexed:
			fmt.Fprintf(out, "Logs for %s saved to %s (Using Index)\n", date, result.OutputPath)
		case extract.ModeStreaming:
			fmt.Fprintln(out, "Index not found. Using slower line-by-line search...")
			fmt.Fprintf(out, "Logs for %s saved to %s (Using Streaming)\n", date, result.OutputPath)
		}
	}

	return nil
}
