package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the project-level linter options.
type Config struct {
	// AllowComputed silences the unvalidatable-computed-access
	// diagnostic for ns[expr] references.
	AllowComputed bool `yaml:"allow-computed"`

	// Extensions overrides the probed source extensions.
	Extensions []string `yaml:"extensions"`

	// Ignore lists path substrings skipped during directory walks.
	Ignore []string `yaml:"ignore"`
}

func Default() *Config {
	return &Config{
		Extensions: append([]string(nil), SourceFileExtensions...),
		Ignore:     []string{"node_modules"},
	}
}

// Load reads a config file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = append([]string(nil), SourceFileExtensions...)
	}
	return cfg, nil
}

// Discover walks from dir upwards looking for ConfigFileName and loads
// the first hit, falling back to defaults at the filesystem root.
func Discover(dir string) (*Config, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, statErr := os.Stat(candidate); statErr == nil {
			return Load(candidate)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}

// Ignored reports whether path matches one of the ignore entries.
func (c *Config) Ignored(path string) bool {
	for _, pattern := range c.Ignore {
		if pattern == "" {
			continue
		}
		if filepath.Base(path) == pattern {
			return true
		}
		if matched, _ := filepath.Match(pattern, filepath.Base(path)); matched {
			return true
		}
	}
	return false
}

// IsSourceFile reports whether path has a recognized source extension.
func (c *Config) IsSourceFile(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range c.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
