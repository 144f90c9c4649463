package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up when none is specified.
const DefaultFileName = ".spacelint.yaml"

// Parse decodes YAML configuration data and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads and parses a YAML config file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads DefaultFileName from the working directory if present,
// falling back to NewConfig() when the file does not exist.
func LoadDefault() (*Config, error) {
	cfg, err := LoadFile(DefaultFileName)
	if errors.Is(err, fs.ErrNotExist) {
		return NewConfig(), nil
	}
	return cfg, err
}

// Validate checks severity values and per-rule settings.
func (c *Config) Validate() error {
	if c.SeverityDefault != "" && !Severity(c.SeverityDefault).IsValid() {
		return fmt.Errorf("invalid severity_default %q", c.SeverityDefault)
	}

	for id, rc := range c.Rules {
		if rc.Severity != nil && !Severity(*rc.Severity).IsValid() {
			return fmt.Errorf("rule %s: invalid severity %q", id, *rc.Severity)
		}
	}

	return nil
}
