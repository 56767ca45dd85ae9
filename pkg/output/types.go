// Package output provides formatting for index inspection reports.
package output

import (
	"logsift/pkg/index"
)

// Report is the complete inspection output for an index file.
type Report struct {
	// IndexFile is the path of the inspected index.
	IndexFile string `json:"index_file"`

	// Days is the number of distinct date keys in the index.
	Days int `json:"days"`

	// Entries lists the index entries in insertion order, which is the
	// order the dates were first encountered in the log file.
	Entries []index.Entry `json:"entries"`
}

// NewReport builds a report from a loaded index.
func NewReport(indexFile string, ix *index.Index) *Report {
	return &Report{
		IndexFile: indexFile,
		Days:      ix.Len(),
		Entries:   ix.Entries(),
	}
}
