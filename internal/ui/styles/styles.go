// Package styles provides shared lipgloss styles for command output.
package styles

import (
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"
)

// Colors used in list/show output
var (
	// Success is used for grit-owned hooks and positive outcomes (green)
	Success lipgloss.TerminalColor = lipgloss.Color("82")

	// Muted is used for secondary text like source paths (gray)
	Muted lipgloss.TerminalColor = lipgloss.Color("240")

	// Warn is used for foreign hooks (yellow)
	Warn lipgloss.TerminalColor = lipgloss.Color("214")
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)

	// WarnStyle applies the warn color
	WarnStyle = lipgloss.NewStyle().Foreground(Warn)
)

// Enabled reports whether w supports colored output. Plain text is used
// for pipes and dumb terminals.
func Enabled(w io.Writer) bool {
	p := colorprofile.Detect(w, os.Environ())
	return p != colorprofile.NoTTY && p != colorprofile.Ascii
}
