package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/genmodule/internal/config"
	oerrors "github.com/opmodel/genmodule/internal/errors"
)

// runInitConfig writes the default config file to the resolved config path.
func runInitConfig(c *cobra.Command, g *GlobalConfig) error {
	path, err := config.WriteDefault(g.ConfigPath.Value, g.Force)
	if errors.Is(err, config.ErrConfigExists) {
		return &oerrors.ExitError{
			Code: oerrors.ExitGeneralError,
			Err: &oerrors.DetailError{
				Type:     "config exists",
				Message:  fmt.Sprintf("config file already exists: %s", path),
				Location: path,
				Hint:     "Use --force to overwrite it.",
				Cause:    err,
			},
		}
	}
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
	}

	fmt.Fprintf(c.OutOrStdout(), "Config file created: %s\n", path)
	return nil
}
