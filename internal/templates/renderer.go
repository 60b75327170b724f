package templates

import (
	"bytes"
	"fmt"
)

// Render renders every artifact for ctx in write order.
func Render(ctx Context) ([]Artifact, error) {
	artifacts := make([]Artifact, 0, len(specs))
	for _, s := range specs {
		a, err := renderSpec(s, ctx)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, nil
}

func renderSpec(s Spec, ctx Context) (Artifact, error) {
	ctx.FileName = s.FileName(ctx.ModuleName)

	var buf bytes.Buffer
	if err := set.ExecuteTemplate(&buf, s.Template, ctx); err != nil {
		return Artifact{}, fmt.Errorf("rendering %s: %w", ctx.FileName, err)
	}

	return Artifact{
		Kind:     s.Kind,
		FileName: ctx.FileName,
		Content:  buf.Bytes(),
	}, nil
}
