package config

import "os"

// Default paths, relative to the working directory.
const (
	DefaultIndexFile = "log_index.txt"
	DefaultOutputDir = "output"
)

// Environment variable names.
const (
	EnvIndexFile = "LOGSIFT_INDEX_FILE"
	EnvOutputDir = "LOGSIFT_OUTPUT_DIR"
)

// DefaultConfig returns a configuration with the standard paths.
func DefaultConfig() *Config {
	return &Config{
		IndexFile: DefaultIndexFile,
		OutputDir: DefaultOutputDir,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if v := os.Getenv(EnvIndexFile); v != "" {
		c.IndexFile = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputDir = v
	}
}
