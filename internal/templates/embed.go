package templates

import (
	"embed"
	"text/template"
)

//go:embed swift/*.tmpl
var templateFS embed.FS

// set holds every parsed template, keyed by file name. header.tmpl only
// contributes the shared "header" definition.
var set = template.Must(template.New("genmodule").ParseFS(templateFS, "swift/*.tmpl"))
