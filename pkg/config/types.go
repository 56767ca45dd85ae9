// Package config provides path configuration loading and validation for logsift.
package config

// Config holds the on-disk paths the tool reads and writes.
//
// The index file and output directory were fixed constants in earlier
// iterations of the tool; they are injected configuration now so that
// operations can run against temporary paths in isolation.
type Config struct {
	// IndexFile is the path of the date index, written by build and
	// read by extract and inspect.
	IndexFile string `yaml:"index_file"`

	// OutputDir is the directory extraction results are written into.
	// Created on demand if it does not exist.
	OutputDir string `yaml:"output_dir"`
}
