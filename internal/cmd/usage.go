package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	oerrors "github.com/opmodel/genmodule/internal/errors"
)

// usageText is printed to stdout when arguments are missing.
const usageText = "Usage: genmodule [arguments]\n\n" +
	"Generates Swift Module (Wireframe, DataManager, Interactor, Presenter, and ViewController) on Desktop\n\n" +
	"Arguments:\n" +
	"1. Module name\t\tExample: Home\n" +
	"2. Appname\t\tExample: Broccoli\n" +
	"3. Company name\t\tExample: Bojan\\ Stefanovic"

// requiredArgs is the number of positional arguments a generate run needs.
const requiredArgs = 3

// moduleArgs returns a cobra.PositionalArgs that requires module, app and
// author names. When they are missing it prints the usage block and fails
// with the general exit code. --init-config runs without arguments.
func moduleArgs(g *GlobalConfig) cobra.PositionalArgs {
	return func(c *cobra.Command, args []string) error {
		if g.InitConfig || len(args) >= requiredArgs {
			return nil
		}

		fmt.Fprintln(c.OutOrStdout(), usageText)

		return &oerrors.ExitError{
			Code:    oerrors.ExitGeneralError,
			Err:     fmt.Errorf("%w: expected %d arguments, received %d", oerrors.ErrUsage, requiredArgs, len(args)),
			Printed: true,
		}
	}
}
