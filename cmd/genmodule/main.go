// Package main is the entry point for the genmodule CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/opmodel/genmodule/internal/cmd"
	oerrors "github.com/opmodel/genmodule/internal/errors"
	"github.com/opmodel/genmodule/internal/output"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			// Usage errors have already been printed to stdout
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			output.Debug("exiting", "code", exitErr.Code, "reason", oerrors.ExitCodeName(exitErr.Code))
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(oerrors.ExitGeneralError)
	}
}
