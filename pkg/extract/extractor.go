// Package extract copies the log lines for a single day out of a log file.
//
// Two retrieval strategies share one output contract: the indexed path
// seeks straight to the day's first line using a prebuilt offset index,
// and the streaming path scans the whole file. The streaming path is
// correct for any line ordering; the indexed path assumes each day's
// lines are contiguous and stops at the first line of a different day.
package extract

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"logsift/pkg/index"
)

// Mode identifies which retrieval strategy served an extraction.
type Mode string

const (
	// ModeIndexed means the day's offset was found in the index and the
	// log was read from there.
	ModeIndexed Mode = "index"

	// ModeStreaming means the whole log was scanned line by line, either
	// because no index exists or because the day is not in it.
	ModeStreaming Mode = "streaming"
)

// Result describes a completed extraction.
type Result struct {
	// OutputPath is the file the matched lines were written to.
	OutputPath string

	// Lines is the number of lines written.
	Lines int

	// Mode is the retrieval strategy that was used.
	Mode Mode
}

// Extractor pulls all log lines for a target date into an output file.
type Extractor struct {
	indexPath string
	outputDir string
}

// New creates an Extractor reading the index at indexPath and writing
// results into outputDir.
func New(indexPath, outputDir string) *Extractor {
	return &Extractor{
		indexPath: indexPath,
		outputDir: outputDir,
	}
}

// Extract writes every log line for the given date to
// <outputDir>/output_<date>.txt, creating the directory if needed and
// replacing any previous output for that date.
//
// If the index exists and contains the date, the indexed path is used;
// otherwise the whole file is scanned. A date matching no lines is not an
// error, the output file is simply empty. The date is compared against
// each line's 10-byte date key and carries no calendar meaning.
func (e *Extractor) Extract(logPath, date string) (*Result, error) {
	if err := os.MkdirAll(e.outputDir, 0o750); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	outPath := filepath.Join(e.outputDir, fmt.Sprintf("output_%s.txt", date))

	ix, err := index.Load(e.indexPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		// A present-but-unreadable index is a real failure; only a
		// missing index means "fall back to scanning".
		return nil, err
	}

	if ix != nil {
		if offset, ok := ix.Lookup(date); ok {
			lines, err := e.copyIndexed(logPath, outPath, date, offset)
			if err != nil {
				return nil, err
			}
			return &Result{OutputPath: outPath, Lines: lines, Mode: ModeIndexed}, nil
		}
	}

	lines, err := e.copyStreaming(logPath, outPath, date)
	if err != nil {
		return nil, err
	}
	return &Result{OutputPath: outPath, Lines: lines, Mode: ModeStreaming}, nil
}

// copyIndexed seeks to the day's recorded offset and copies lines forward
// until the date key changes.
//
// The index records only the first run of each day, and reading stops at
// the first differing key, so a day whose lines appear in disjoint runs
// has only its first run extracted here. That is a documented constraint
// on log ordering, not a condition this path detects.
func (e *Extractor) copyIndexed(logPath, outPath, date string, offset int64) (int, error) {
	in, err := os.Open(logPath) // #nosec G304 -- user-provided log path is expected
	if err != nil {
		return 0, fmt.Errorf("opening log file: %w", err)
	}
	defer in.Close()

	if _, err := in.Seek(offset, io.SeekStart); err != nil {
		return 0, fmt.Errorf("seeking to offset %d: %w", offset, err)
	}

	return copyLines(in, outPath, func(line string) (write, stop bool) {
		if index.DateKey(line) != date {
			return false, true
		}
		return true, false
	})
}

// copyStreaming scans the whole log and copies every line whose date key
// matches, regardless of contiguity.
func (e *Extractor) copyStreaming(logPath, outPath, date string) (int, error) {
	in, err := os.Open(logPath) // #nosec G304 -- user-provided log path is expected
	if err != nil {
		return 0, fmt.Errorf("opening log file: %w", err)
	}
	defer in.Close()

	return copyLines(in, outPath, func(line string) (write, stop bool) {
		return index.DateKey(line) == date, false
	})
}

// copyLines reads lines from r and writes those selected by keep to a
// fresh file at outPath. Lines are copied verbatim, terminators included,
// so a final unterminated line stays unterminated in the output.
func copyLines(r io.Reader, outPath string, keep func(line string) (write, stop bool)) (int, error) {
	out, err := os.Create(outPath) // #nosec G304 -- output path derives from config
	if err != nil {
		return 0, fmt.Errorf("creating output file: %w", err)
	}

	w := bufio.NewWriter(out)
	br := bufio.NewReader(r)

	lines := 0
	for {
		line, rerr := br.ReadString('\n')
		if line != "" {
			write, stop := keep(line)
			if stop {
				break
			}
			if write {
				if _, err := w.WriteString(line); err != nil {
					out.Close()
					return 0, fmt.Errorf("writing output file: %w", err)
				}
				lines++
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			out.Close()
			return 0, fmt.Errorf("reading log file: %w", rerr)
		}
	}

	if err := w.Flush(); err != nil {
		out.Close()
		return 0, fmt.Errorf("writing output file: %w", err)
	}
	if err := out.Close(); err != nil {
		return 0, fmt.Errorf("closing output file: %w", err)
	}
	return lines, nil
}
