// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/edi/lib/delimiter"
)

// EnvironmentVariable names the variable [Load] reads the config path
// from.
const EnvironmentVariable = "EDI_CONFIG"

// Built-in profile names.
const (
	// ProfileX12 is ANSI X12: "~" terminator, "*" element separator,
	// ":" sub-element separator.
	ProfileX12 = "x12"

	// ProfileEDIFACT is UN/EDIFACT with the default service string
	// advice: "'" terminator, "+" element separator, ":" component
	// separator.
	ProfileEDIFACT = "edifact"
)

// Config is the configuration for the edi tool.
type Config struct {
	// DefaultProfile names the profile used when a command does not
	// select one.
	// Default: x12
	DefaultProfile string `yaml:"default_profile"`

	// Profiles maps profile names to delimiter sets. Profiles from the
	// file are merged over the built-in x12 and edifact profiles.
	Profiles map[string]Profile `yaml:"profiles"`

	// StrictDelimiters rejects delimiter sets in which two roles share
	// a character. When false such sets are accepted with a warning.
	// Default: false
	StrictDelimiters bool `yaml:"strict_delimiters"`

	// LogLevel is the minimum slog level: debug, info, warn, or error.
	// Default: info
	LogLevel string `yaml:"log_level"`

	// ScriptDir is where edit scripts named by a relative path are
	// looked up. Empty means the working directory. ${HOME} and
	// ${VAR:-default} are expanded.
	ScriptDir string `yaml:"script_dir"`
}

// Profile is a named delimiter set.
type Profile struct {
	// Delimiters is the three-character form, terminator first:
	// "~*:". Quote it in YAML, since "*" and ":" are YAML indicators.
	Delimiters delimiter.Set `yaml:"delimiters"`

	// Description is shown by "edi profiles".
	Description string `yaml:"description,omitempty"`
}

// Default returns the built-in configuration. It is the base that a
// config file is merged over.
func Default() *Config {
	return &Config{
		DefaultProfile: ProfileX12,
		Profiles: map[string]Profile{
			ProfileX12: {
				Delimiters:  delimiter.X12(),
				Description: "ANSI X12",
			},
			ProfileEDIFACT: {
				Delimiters:  delimiter.New('\'', '+', ':'),
				Description: "UN/EDIFACT default service characters",
			},
		},
		LogLevel: "info",
	}
}

// Load loads configuration from the file named by EDI_CONFIG. There is
// no discovery: when the variable is unset Load fails.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your edi.yaml config file, or use --config flag", EnvironmentVariable)
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from path, merged over [Default], and
// validates it.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.ScriptDir = expandVars(cfg.ScriptDir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// loadFile merges a single configuration file into c.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// Profile returns the delimiter set for the named profile, or for the
// default profile when name is empty.
func (c *Config) Profile(name string) (delimiter.Set, error) {
	if name == "" {
		name = c.DefaultProfile
	}
	profile, ok := c.Profiles[name]
	if !ok {
		return delimiter.Set{}, fmt.Errorf("unknown delimiter profile %q (available: %s)", name, strings.Join(c.ProfileNames(), ", "))
	}
	return profile.Delimiters, nil
}

// ProfileNames returns the configured profile names, sorted.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Level returns LogLevel as a slog.Level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.DefaultProfile == "" {
		errs = append(errs, errors.New("default_profile is required"))
	} else if _, ok := c.Profiles[c.DefaultProfile]; !ok {
		errs = append(errs, fmt.Errorf("default_profile %q is not defined in profiles", c.DefaultProfile))
	}

	for _, name := range c.ProfileNames() {
		set := c.Profiles[name].Delimiters
		if !set.Complete() {
			errs = append(errs, fmt.Errorf("profiles.%s.delimiters: three delimiter characters are required", name))
			continue
		}
		if c.StrictDelimiters {
			if err := set.CheckUnambiguous(); err != nil {
				errs = append(errs, fmt.Errorf("profiles.%s: %w", name, err))
			}
		}
	}

	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// varPattern matches ${VAR} and ${VAR:-default}.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		return parts[2]
	})
}
