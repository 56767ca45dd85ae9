package output

import (
	"context"
	"fmt"
	"io"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		fmt.Fprintf(w, "%s: %d day(s) indexed\n", report.IndexFile, report.Days)
		return nil
	}

	fmt.Fprintf(w, "Index: %s\n", report.IndexFile)
	fmt.Fprintf(w, "Days indexed: %d\n", report.Days)

	if len(report.Entries) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	for _, e := range report.Entries {
		fmt.Fprintf(w, "  %s  byte %d\n", e.Date, e.Offset)
	}

	return nil
}
