// Package theme holds the styles used for hook output.
package theme

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains the styles for hook messages.
type Styles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
	Hint    lipgloss.Style
}

// For returns styles rendered for w. Colors are only emitted when w is a
// terminal; Claude Code reads hook output through pipes and gets plain text.
func For(w io.Writer) *Styles {
	r := lipgloss.NewRenderer(w)
	return &Styles{
		Error:   r.NewStyle().Bold(true).Foreground(Error),
		Warning: r.NewStyle().Foreground(Warning),
		Success: r.NewStyle().Foreground(Success),
		Hint:    r.NewStyle().Foreground(DimGray),
	}
}
