package output

import "strings"

// Format specifies how the generation summary is printed.
type Format string

const (
	// FormatText prints a file tree followed by the success line.
	FormatText Format = "text"

	// FormatJSON prints the summary as indented JSON.
	FormatJSON Format = "json"

	// FormatYAML prints the summary as YAML.
	FormatYAML Format = "yaml"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid checks if the format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseFormat parses s into a Format. The second result is false when s
// names no known format.
func ParseFormat(s string) (Format, bool) {
	f := Format(strings.ToLower(s))
	switch f {
	case "":
		f = FormatText
	case "yml":
		f = FormatYAML
	}
	if !f.IsValid() {
		return FormatText, false
	}
	return f, true
}

// ValidFormats returns the accepted --format values.
func ValidFormats() []string {
	return []string{"text", "json", "yaml"}
}
