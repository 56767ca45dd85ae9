// logsift - date-grouped log extraction
//
// logsift builds a byte-offset index over a date-prefixed log file and
// uses it to pull out all entries for a single day without scanning the
// whole file, falling back to a full scan when no index is available.
package main

import (
	"os"

	"logsift/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
