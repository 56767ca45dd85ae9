package index

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// CorruptError reports an index file line that could not be parsed.
// The only recovery is rebuilding the index from the log file.
type CorruptError struct {
	Path   string
	Line   int
	Reason string
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt index %s:%d: %s (rebuild it with: logsift build <log-file>)",
		e.Path, e.Line, e.Reason)
}

// Write persists the index to path, one "<date> <offset>" pair per line in
// insertion order, replacing any existing file.
func (ix *Index) Write(path string) error {
	f, err := os.Create(path) // #nosec G304 -- user-provided index path is expected
	if err != nil {
		return fmt.Errorf("creating index file: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, e := range ix.entries {
		if _, err := fmt.Fprintf(w, "%s %d\n", e.Date, e.Offset); err != nil {
			f.Close()
			return fmt.Errorf("writing index file: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing index file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing index file: %w", err)
	}
	return nil
}

// Load reads an index file written by Write.
//
// A missing file is reported with an error satisfying
// errors.Is(err, fs.ErrNotExist); callers that can fall back to a full
// scan treat that case as "no index". A line that is not exactly a key
// and an integer offset yields a *CorruptError.
func Load(path string) (*Index, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided index path is expected
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}
	defer f.Close()

	ix := New()
	scanner := bufio.NewScanner(f)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, &CorruptError{
				Path:   path,
				Line:   lineNum,
				Reason: fmt.Sprintf("expected \"<date> <offset>\", got %q", line),
			}
		}

		offset, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, &CorruptError{
				Path:   path,
				Line:   lineNum,
				Reason: fmt.Sprintf("offset %q is not an integer", fields[1]),
			}
		}

		ix.Add(fields[0], offset)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading index %s: %w", path, err)
	}

	return ix, nil
}
