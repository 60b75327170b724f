package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// SuccessMessage is the last line of a successful text summary.
const SuccessMessage = "Success."

// Summary describes the outcome of one generation run.
type Summary struct {
	Module string        `json:"module" yaml:"module"`
	Dir    string        `json:"dir" yaml:"dir"`
	DryRun bool          `json:"dryRun" yaml:"dryRun"`
	Files  []SummaryFile `json:"files" yaml:"files"`
}

// SummaryFile is one generated file.
type SummaryFile struct {
	Name        string `json:"name" yaml:"name"`
	Path        string `json:"path" yaml:"path"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// WriteSummary writes s to w in the given format.
func WriteSummary(s *Summary, format Format, w io.Writer) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(s)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(s); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return writeSummaryText(s, w)
	}
}

func writeSummaryText(s *Summary, w io.Writer) error {
	styles := GetStyles(w)

	entries := make([]FileEntry, 0, len(s.Files))
	for _, f := range s.Files {
		entries = append(entries, FileEntry{Path: f.Name, Description: f.Description})
	}

	var sb strings.Builder
	sb.WriteString(RenderFileTree(styles, s.Dir, entries))

	if s.DryRun {
		sb.WriteString(styles.Muted.Render("Dry run: no files were written."))
		sb.WriteString("\n")
	} else {
		summary := fmt.Sprintf("Created module %s (%d files)", styles.Noun.Render(s.Module), len(s.Files))
		sb.WriteString(FormatCheckmark(styles, summary))
		sb.WriteString("\n")
		sb.WriteString(SuccessMessage)
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
