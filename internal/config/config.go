package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gyeh/caretrend/internal/model"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for a caretrend run. It is built
// from CLI flags plus an optional YAML file and passed explicitly into every
// call; nothing here is process-global.
type Config struct {
	Facilities   string // raw comma-separated facility input
	DataDir      string // root for recursive local discovery
	BlobDir      string // root served through the blob lister, optional
	OutDir       string
	ConfigFile   string
	LogFormat    string // "text" or "json"
	LogLevel     string
	WriteZip     bool
	WriteParquet bool
	CacheTTL     time.Duration // blob listing/fetch cache; 0 disables
	Measures     []string      `yaml:"measures"` // subset of AllMeasureGroups names to report
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Measures []string `yaml:"measures"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	c.Measures = yc.Measures
	return c.validateMeasures()
}

// validateMeasures checks that every entry in Measures is a known measure
// group name. If Measures is empty, it defaults to all groups.
func (c *Config) validateMeasures() error {
	if len(c.Measures) == 0 {
		c.Measures = model.MeasureGroupNames()
		return nil
	}
	for _, name := range c.Measures {
		if _, ok := model.MeasureGroupByName(name); !ok {
			return fmt.Errorf("unknown measure group %q in config", name)
		}
	}
	return nil
}

// Validate checks required fields and returns an error if the config is
// invalid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Facilities) == "" {
		return fmt.Errorf("--facilities is required")
	}
	if c.DataDir == "" && c.BlobDir == "" {
		return fmt.Errorf("--data-dir or --blob-dir is required")
	}
	if c.DataDir != "" {
		if _, err := os.Stat(c.DataDir); err != nil {
			return fmt.Errorf("data dir not accessible: %w", err)
		}
	}
	if c.BlobDir != "" {
		if _, err := os.Stat(c.BlobDir); err != nil {
			return fmt.Errorf("blob dir not accessible: %w", err)
		}
	}
	return c.validateMeasures()
}
