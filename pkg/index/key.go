package index

import "strings"

// dateKeyLen is the number of leading bytes of a line that form the date key.
const dateKeyLen = 10

// DateKey returns the grouping key for a log line: its first 10 bytes,
// which for well-formed entries is a YYYY-MM-DD date. The line terminator
// is never part of the key; lines shorter than 10 bytes yield the whole
// (short) line. The content is treated opaquely, nothing validates that it
// is actually a date.
func DateKey(line string) string {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if len(line) <= dateKeyLen {
		return line
	}
	return line[:dateKeyLen]
}
