package formatter

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles. When stdout is not an interactive terminal
// every style is a no-op, so piped output stays plain.
var (
	StyleGreen  = fg(ColorGreen)
	StyleYellow = fg(ColorYellow)
	StyleRed    = fg(ColorRed)
	StyleBlue   = fg(ColorBlue)
	StyleDim    = fg(ColorDim)
	StyleFg     = fg(ColorFg)
	StyleHeader = boldFg(ColorHeader)
	StyleBold   = boldFg(ColorFg)
)

// IsTerminal reports whether stdout is an interactive terminal.
func IsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func fg(c lipgloss.Color) lipgloss.Style {
	if !IsTerminal() {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(c)
}

func boldFg(c lipgloss.Color) lipgloss.Style {
	if !IsTerminal() {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}
