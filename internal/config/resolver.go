package config

import (
	"fmt"
	"os"

	oerrors "github.com/opmodel/genmodule/internal/errors"
	"github.com/opmodel/genmodule/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value together with its origin.
type ResolvedValue struct {
	// Key is the configuration key.
	Key string
	// Value is the resolved value.
	Value string
	// Source indicates where the value came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveOutputDirOptions contains options for output directory resolution.
type ResolveOutputDirOptions struct {
	// FlagValue is the --output flag value (empty if not set).
	FlagValue string
	// ConfigValue is the outputDir value from the config file (empty if not set).
	ConfigValue string
}

// ResolveOutputDir resolves the output directory using precedence:
// (1) --output flag, (2) GENMODULE_OUTPUT_DIR env, (3) config.outputDir,
// (4) the user's Desktop directory.
//
// The returned path has ~ expanded. An unresolvable directory is reported as
// a not-found error.
func ResolveOutputDir(opts ResolveOutputDirOptions) (ResolvedValue, error) {
	result := ResolvedValue{
		Key:      "outputDir",
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(EnvOutputDir)

	switch {
	case opts.FlagValue != "":
		result.Value = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		if opts.ConfigValue != "" {
			result.Shadowed[SourceConfig] = opts.ConfigValue
		}
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		if opts.ConfigValue != "" {
			result.Shadowed[SourceConfig] = opts.ConfigValue
		}
	case opts.ConfigValue != "":
		result.Value = opts.ConfigValue
		result.Source = SourceConfig
	default:
		result.Value = DesktopDir()
		result.Source = SourceDefault
	}

	if result.Value == "" {
		return result, oerrors.NewNotFoundError(
			"output directory not found",
			"",
			"Could not determine the Desktop directory. Pass --output or set "+EnvOutputDir+".",
		)
	}

	expanded, err := ExpandPath(result.Value)
	if err != nil {
		return result, fmt.Errorf("expanding output directory: %w", err)
	}
	result.Value = expanded

	return result, nil
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) GENMODULE_CONFIG env, (3) ~/.genmodule/config.yaml default
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolvedValue, error) {
	result := ResolvedValue{
		Key:      "config",
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(EnvConfig)

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	switch {
	case opts.FlagValue != "":
		result.Value = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.Value = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values ...ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
