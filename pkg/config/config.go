package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
// Values not present in the file keep their defaults; environment
// overrides apply after the file is parsed.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Resolve returns the effective configuration: the YAML file at path when
// one is given, defaults plus environment overrides otherwise.
func Resolve(ctx context.Context, path string) (*Config, error) {
	if path == "" {
		cfg := DefaultConfig()
		cfg.applyEnvironmentOverrides()
		return cfg, nil
	}
	return Load(ctx, path)
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.IndexFile == "" {
		return errors.New("index_file: path must not be empty")
	}
	if cfg.OutputDir == "" {
		return errors.New("output_dir: path must not be empty")
	}
	return nil
}
