package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"logsift/pkg/config"
	"logsift/pkg/index"
	"logsift/pkg/output"
)

// InspectOptions holds command-line options for the inspect command.
type InspectOptions struct {
	Config string
	Index  string
	Output string
	Quiet  bool
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	opts := &InspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the contents of the date offset index",
		Long: `Load the index file and list its entries in the order the dates were
first encountered in the log file.

A corrupt index is reported with the offending line; rebuild it with the
build command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, opts)
		},
	}

	// Flags
	cmd.Flags().StringVar(&opts.Config, "config", "", "Path to YAML config file")
	cmd.Flags().StringVar(&opts.Index, "index", "", "Index file path (overrides config)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no entries")

	return cmd
}

func runInspect(cmd *cobra.Command, opts *InspectOptions) error {
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

	ix, err := index.Load(cfg.IndexFile)
	if err != nil {
		return fmt.Errorf("loading index: %w", err)
	}

	report := output.NewReport(cfg.IndexFile, ix)

	formatter, err := createFormatter(opts.Output, opts.Quiet)
	if err != nil {
		return err
	}

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	return nil
}

func createFormatter(format string, quiet bool) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Quiet: quiet,
	}

	switch format {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", format)
	}
}
