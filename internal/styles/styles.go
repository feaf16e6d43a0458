// Package styles defines terminal styles for CLI output.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	Green  = "#A9DC76" // Success
	Red    = "#FF6188" // Errors
	Yellow = "#FFD866" // Highlights (dry run)
	Cyan   = "#78DCE8" // Info
	Dim    = "#727072" // Secondary text
)

// Common styles.
var (
	SuccessStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Red))
	InfoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(Cyan))
	HighlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Yellow)).Bold(true)
	DimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(Dim))
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Cyan))
)

// Marks used in per-file result lines.
var (
	SuccessMark = SuccessStyle.Render("✓")
	ErrorMark   = ErrorStyle.Render("✗")
)
