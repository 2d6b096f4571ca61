package theme

import "github.com/charmbracelet/lipgloss"

// Color palette inspired by Claude Code
var (
	DimGray = lipgloss.Color("#6B7280")

	// Semantic colors
	Success = lipgloss.Color("#22C55E")
	Warning = lipgloss.Color("#F59E0B")
	Error   = lipgloss.Color("#EF4444")
)
