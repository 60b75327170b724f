// Package generator writes rendered module artifacts to the output directory.
package generator

import (
	"fmt"
	"os"
	"path/filepath"

	oerrors "github.com/opmodel/genmodule/internal/errors"
	"github.com/opmodel/genmodule/internal/output"
	"github.com/opmodel/genmodule/internal/templates"
)

// Options configures artifact writing.
type Options struct {
	// Dir is the directory artifacts are written to. It must already exist.
	Dir string

	// DryRun reports the files that would be written without touching disk.
	DryRun bool
}

// Result describes a completed write.
type Result struct {
	// Dir is the directory the files were written to.
	Dir string

	// Files lists the written file names in write order.
	Files []string

	// DryRun is set when nothing was written.
	DryRun bool
}

// Generator writes artifacts into a single directory.
type Generator struct {
	opts Options
}

// New creates a new generator with the given options.
func New(opts Options) *Generator {
	return &Generator{opts: opts}
}

// Write writes each artifact to Dir in order, overwriting existing files.
// It stops at the first failure; files written before it are left in place.
func (g *Generator) Write(artifacts []templates.Artifact) (*Result, error) {
	if err := g.checkDir(); err != nil {
		return nil, err
	}

	result := &Result{
		Dir:    g.opts.Dir,
		Files:  make([]string, 0, len(artifacts)),
		DryRun: g.opts.DryRun,
	}

	for _, a := range artifacts {
		path := filepath.Join(g.opts.Dir, a.FileName)

		if g.opts.DryRun {
			output.Debug("would write file", "path", path, "bytes", len(a.Content))
			result.Files = append(result.Files, a.FileName)
			continue
		}

		if _, err := os.Stat(path); err == nil {
			output.Info("overwriting existing file", "path", path)
		}

		if err := os.WriteFile(path, a.Content, 0o644); err != nil {
			return result, fmt.Errorf("writing %s: %w", path, err)
		}

		output.Debug("wrote file", "path", path, "kind", a.Kind)
		result.Files = append(result.Files, a.FileName)
	}

	return result, nil
}

// checkDir verifies the output directory exists before anything is written.
func (g *Generator) checkDir() error {
	if g.opts.Dir == "" {
		return oerrors.NewNotFoundError(
			"output directory not found",
			"",
			"Pass --output to choose a directory.",
		)
	}

	info, err := os.Stat(g.opts.Dir)
	if os.IsNotExist(err) {
		return oerrors.NewNotFoundError(
			"output directory not found",
			g.opts.Dir,
			"Create the directory or pass --output to choose another one.",
		)
	}
	if err != nil {
		return fmt.Errorf("checking output directory: %w", err)
	}

	if !info.IsDir() {
		return oerrors.NewNotFoundError(
			fmt.Sprintf("%s is not a directory", g.opts.Dir),
			g.opts.Dir,
			"Pass --output to choose a directory.",
		)
	}

	return nil
}
