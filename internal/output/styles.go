package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette. Never use inline lipgloss.Color literals outside this block.
var (
	// ColorCyan is used for identifiable nouns: module names, directories.
	ColorCyan = lipgloss.Color("14")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for tree connectors and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Styles groups the styles used when rendering generation summaries.
type Styles struct {
	Bold  lipgloss.Style
	Noun  lipgloss.Style
	Muted lipgloss.Style
	Check lipgloss.Style
}

var (
	styledStyles = Styles{
		Bold:  lipgloss.NewStyle().Bold(true),
		Noun:  lipgloss.NewStyle().Foreground(ColorCyan),
		Muted: lipgloss.NewStyle().Foreground(ColorDimGray),
		Check: lipgloss.NewStyle().Foreground(ColorGreenCheck),
	}

	plainStyles = Styles{
		Bold:  lipgloss.NewStyle(),
		Noun:  lipgloss.NewStyle(),
		Muted: lipgloss.NewStyle(),
		Check: lipgloss.NewStyle(),
	}
)

// GetStyles returns the styles to use for w. Writers that are not a terminal
// get unstyled output so redirected output stays free of escape codes.
func GetStyles(w io.Writer) Styles {
	if IsTerminal(w) {
		return styledStyles
	}
	return plainStyles
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// FormatCheckmark renders a checkmark with a message.
func FormatCheckmark(styles Styles, msg string) string {
	return styles.Check.Render("✔") + " " + msg
}
