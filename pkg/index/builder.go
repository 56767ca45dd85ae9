package index

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Build scans a log file once and records the byte offset of the first
// line seen for each distinct date key.
//
// Offsets are raw byte counts from the start of the file, so seeking to a
// recorded offset always lands on a line boundary regardless of multi-byte
// content. A final line without a trailing newline is indexed normally.
func Build(logPath string) (*Index, error) {
	f, err := os.Open(logPath) // #nosec G304 -- user-provided log path is expected
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()

	ix := New()
	r := bufio.NewReader(f)

	var pos int64
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			ix.Add(DateKey(line), pos)
			pos += int64(len(line))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", logPath, err)
		}
	}

	return ix, nil
}
