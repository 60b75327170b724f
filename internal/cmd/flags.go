package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/opmodel/genmodule/internal/config"
	"github.com/opmodel/genmodule/internal/output"
)

// GlobalConfig holds the flag values and the configuration resolved during
// PersistentPreRunE. It is created per root command so tests can build
// independent commands.
type GlobalConfig struct {
	OutputFlag string
	ConfigFlag string
	Verbose    bool
	Timestamps bool
	DryRun     bool
	InitConfig bool
	Force      bool
	Format     string

	// Config is the loaded configuration (defaults when no file exists).
	Config *config.Config

	// ConfigPath is the resolved config file path.
	ConfigPath config.ResolvedValue
}

// addFlags registers every genmodule flag on c.
func (g *GlobalConfig) addFlags(c *cobra.Command) {
	c.PersistentFlags().StringVarP(&g.OutputFlag, "output", "o", "",
		"Directory to write files to (env: "+config.EnvOutputDir+", default: Desktop)")
	c.PersistentFlags().StringVarP(&g.ConfigFlag, "config", "c", "",
		"Path to config file (env: "+config.EnvConfig+")")
	c.PersistentFlags().BoolVarP(&g.Verbose, "verbose", "v", false, "Enable verbose output")
	c.PersistentFlags().BoolVar(&g.Timestamps, "timestamps", true, "Show timestamps in log output")

	c.Flags().BoolVar(&g.DryRun, "dry-run", false, "Render the module and list the files without writing them")
	c.Flags().BoolVar(&g.InitConfig, "init-config", false, "Write a default config file and exit")
	c.Flags().BoolVarP(&g.Force, "force", "f", false, "Overwrite an existing config file (with --init-config)")
	c.Flags().StringVar(&g.Format, "format", "text",
		"Summary format ("+strings.Join(output.ValidFormats(), ", ")+")")
}
