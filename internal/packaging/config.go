// Package packaging generates systemd unit files and installs them as
// system services, or stages them with manual install instructions when
// the process lacks root privileges.
package packaging

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultUnitDir is the system unit directory units are installed into.
const DefaultUnitDir = "/etc/systemd/system"

// Config holds the installer paths, populated from an optional YAML file.
type Config struct {
	// StagingDir is where generated unit files are written before install.
	// Default: the OS temp directory.
	StagingDir string `yaml:"staging_dir"`

	// UnitDir is the system unit directory.
	// Default: /etc/systemd/system
	UnitDir string `yaml:"unit_dir"`
}

// ApplyDefaults sets default values for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.StagingDir == "" {
		c.StagingDir = os.TempDir()
	}
	if c.UnitDir == "" {
		c.UnitDir = DefaultUnitDir
	}
}

// Validate checks that required fields are set.
func (c *Config) Validate() error {
	if c.StagingDir == "" {
		return errors.New("packaging: config: StagingDir is required")
	}
	if c.UnitDir == "" {
		return errors.New("packaging: config: UnitDir is required")
	}
	return nil
}

// ParseConfig reads a YAML configuration file and returns a Config with
// defaults applied. When optional is true, a missing file is not an error
// and the defaults are returned.
func ParseConfig(path string, optional bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && optional {
		cfg := &Config{}
		cfg.ApplyDefaults()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("packaging: config: read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("packaging: config: parse %s: %w", path, err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
