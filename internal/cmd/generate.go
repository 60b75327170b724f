package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/opmodel/genmodule/internal/config"
	oerrors "github.com/opmodel/genmodule/internal/errors"
	"github.com/opmodel/genmodule/internal/generator"
	"github.com/opmodel/genmodule/internal/output"
	"github.com/opmodel/genmodule/internal/templates"
)

// clock returns the time stamped into file headers. Tests replace it.
var clock = time.Now

func runGenerate(c *cobra.Command, args []string, g *GlobalConfig) error {
	format, ok := output.ParseFormat(g.Format)
	if !ok {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err: oerrors.NewValidationError(
				fmt.Sprintf("unknown format %q", g.Format),
				"--format",
				"Valid formats: "+strings.Join(output.ValidFormats(), ", "),
			),
		}
	}

	params := templates.Params{
		ModuleName: args[0],
		AppName:    args[1],
		Author:     args[2],
	}

	// Names are used verbatim; problems are reported but never block generation.
	for _, problem := range templates.CheckParams(params) {
		output.Warn("unusual input", "problem", problem)
	}

	cfg := g.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	ctx := templates.NewContext(params, clock(), cfg.DateLayouts())
	output.Debug("rendering module",
		"module", params.ModuleName,
		"app", params.AppName,
		"author", params.Author,
		"date", ctx.Date,
		"files", templates.FileNames(params.ModuleName),
		"format", format.String(),
	)

	artifacts, err := templates.Render(ctx)
	if err != nil {
		return &oerrors.ExitError{
			Code: oerrors.ExitGeneralError,
			Err:  fmt.Errorf("rendering templates: %w", err),
		}
	}

	dir, err := config.ResolveOutputDir(config.ResolveOutputDirOptions{
		FlagValue:   g.OutputFlag,
		ConfigValue: cfg.OutputDir,
	})
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
	}
	config.LogResolvedValues(dir)

	result, err := generator.New(generator.Options{
		Dir:    dir.Value,
		DryRun: g.DryRun,
	}).Write(artifacts)
	if err != nil {
		if result != nil && len(result.Files) > 0 {
			output.Error("module left incomplete", "dir", dir.Value, "written", result.Files)
		}
		return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
	}

	summary, err := newSummary(params.ModuleName, result, artifacts)
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
	}
	return output.WriteSummary(summary, format, c.OutOrStdout())
}

// newSummary describes result for printing. artifacts are in write order, so
// the first len(result.Files) of them are the ones that were handled.
func newSummary(moduleName string, result *generator.Result, artifacts []templates.Artifact) (*output.Summary, error) {
	summary := &output.Summary{
		Module: moduleName,
		Dir:    result.Dir,
		DryRun: result.DryRun,
		Files:  make([]output.SummaryFile, 0, len(result.Files)),
	}
	for _, a := range artifacts[:len(result.Files)] {
		spec, err := templates.Get(a.Kind)
		if err != nil {
			return nil, err
		}
		summary.Files = append(summary.Files, output.SummaryFile{
			Name:        a.FileName,
			Path:        filepath.Join(result.Dir, a.FileName),
			Description: spec.Description,
		})
	}
	return summary, nil
}
