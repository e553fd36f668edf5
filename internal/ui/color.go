package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Styles bundles the lipgloss styles used for list output.
type Styles struct {
	// Header styles the table header row.
	Header lipgloss.Style

	// Muted styles de-emphasized cells, like the untimed marker.
	Muted lipgloss.Style
}

// StylesFor returns the style set for a color mode ("auto", "always",
// "never"). In auto mode styling follows the terminal: disabled when stdout
// is not a TTY, NO_COLOR is set, or TERM is dumb.
func StylesFor(mode string) Styles {
	switch mode {
	case "always":
		return coloredStyles()
	case "never":
		return plainStyles()
	default:
		if colorEnabled() {
			return coloredStyles()
		}
		return plainStyles()
	}
}

func coloredStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

func plainStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle(),
		Muted:  lipgloss.NewStyle(),
	}
}

func colorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsInteractive reports whether stdin is attached to a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
