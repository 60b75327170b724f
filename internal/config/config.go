// Package config provides configuration loading and management.
package config

import (
	"github.com/opmodel/genmodule/internal/templates"
)

// DateFormatConfig contains the Go time layouts used in file headers.
type DateFormatConfig struct {
	// Long is the layout of the "Created by ... on <date>" value.
	// Default: 2006-01-02
	Long string `mapstructure:"long" yaml:"long"`

	// Year is the layout of the copyright year.
	// Default: 2006
	Year string `mapstructure:"year" yaml:"year"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the genmodule configuration.
// Loaded from ~/.genmodule/config.yaml when present.
type Config struct {
	// OutputDir is the directory generated files are written to.
	// Env: GENMODULE_OUTPUT_DIR, Default: the user's Desktop directory
	OutputDir string `mapstructure:"outputDir" yaml:"outputDir,omitempty"`

	// DateFormat contains the header date layouts.
	DateFormat DateFormatConfig `mapstructure:"dateFormat" yaml:"dateFormat"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by --init-config to generate the initial config file.
func DefaultConfig() *Config {
	layouts := templates.DefaultDateLayouts()
	return &Config{
		DateFormat: DateFormatConfig{
			Long: layouts.Long,
			Year: layouts.Year,
		},
	}
}

// WithDefaults returns a copy of c with empty values replaced by defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	defaults := DefaultConfig()
	if out.DateFormat.Long == "" {
		out.DateFormat.Long = defaults.DateFormat.Long
	}
	if out.DateFormat.Year == "" {
		out.DateFormat.Year = defaults.DateFormat.Year
	}
	return &out
}

// DateLayouts returns the configured header date layouts.
func (c *Config) DateLayouts() templates.DateLayouts {
	return templates.DateLayouts{
		Long: c.DateFormat.Long,
		Year: c.DateFormat.Year,
	}
}
