// Package cmd provides CLI command implementations.
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/genmodule/internal/config"
	oerrors "github.com/opmodel/genmodule/internal/errors"
	"github.com/opmodel/genmodule/internal/output"
	"github.com/opmodel/genmodule/internal/version"
)

// NewRootCmd creates the genmodule command.
func NewRootCmd() *cobra.Command {
	g := &GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "genmodule <module-name> <app-name> <author-name>",
		Short: "Generate a Swift VIPER module",
		Long: `Generate the files of a Swift VIPER module:

  <Module>Wireframe.swift       Wireframe and module delegate
  <Module>DataManager.swift     Data manager protocol
  <Module>Interactor.swift      Interactor
  <Module>Presenter.swift       Presenter
  <Module>ViewController.swift  View controller
  <Module>ViewController.xib    View controller layout

Files are written to the Desktop unless --output, GENMODULE_OUTPUT_DIR or
outputDir in the config file says otherwise. Existing files are overwritten.

Examples:
  # Generate the Home module of the Broccoli app
  genmodule Home Broccoli "Bojan Stefanovic"

  # Write into a project directory instead of the Desktop
  genmodule Home Broccoli "Bojan Stefanovic" --output ./Sources/Modules/Home

  # Create ~/.genmodule/config.yaml with default values
  genmodule --init-config`,
		Version:       version.Get().String(),
		Args:          moduleArgs(g),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, g)
		},
		RunE: func(c *cobra.Command, args []string) error {
			if g.InitConfig {
				return runInitConfig(c, g)
			}
			return runGenerate(c, args, g)
		},
	}

	rootCmd.SetVersionTemplate("genmodule version {{.Version}}\n")
	g.addFlags(rootCmd)

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(c *cobra.Command, g *GlobalConfig) error {
	output.SetupLogging(output.LogConfig{Verbose: g.Verbose, Writer: c.ErrOrStderr()})

	configPath, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue: g.ConfigFlag,
	})
	if err != nil {
		return &oerrors.ExitError{
			Code: oerrors.ExitGeneralError,
			Err:  fmt.Errorf("resolving config path: %w", err),
		}
	}
	g.ConfigPath = configPath

	cfg, err := config.NewLoader().LoadWithDefaults(configPath.Value)
	switch {
	case errors.Is(err, oerrors.ErrValidation) && !g.InitConfig:
		return &oerrors.ExitError{Code: oerrors.ExitValidationError, Err: err}
	case err != nil:
		// An unreadable or invalid file must not block generation or
		// --init-config --force from replacing it.
		output.Warn("ignoring config file", "path", configPath.Value, "error", err)
		cfg = config.DefaultConfig()
	}
	g.Config = cfg

	// Timestamps: flag (if explicitly set) > config > default (on)
	logCfg := output.LogConfig{Verbose: g.Verbose, Writer: c.ErrOrStderr()}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(g.Timestamps)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	config.LogResolvedValues(configPath)
	output.Debug("initializing CLI",
		"version", version.Get().Version,
		"dateFormat.long", cfg.DateFormat.Long,
		"dateFormat.year", cfg.DateFormat.Year,
	)

	return nil
}
