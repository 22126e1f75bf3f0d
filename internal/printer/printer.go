// Package printer renders styled console output for the cargobump CLI.
package printer

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Style definitions for consistent console output across the application.
var (
	faintStyle   = lipgloss.NewStyle().Faint(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow

	successBadgeStyle = successStyle.Bold(true)
	errorBadgeStyle   = errorStyle.Bold(true)
	skipBadgeStyle    = warningStyle.Bold(true)
)

// detectedProfile is the color profile lipgloss picked for the terminal.
var detectedProfile = lipgloss.ColorProfile()

// SetNoColor disables (or restores) ANSI styling for all printer output.
func SetNoColor(disabled bool) {
	if disabled {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(detectedProfile)
}

// Render functions return styled strings without printing.

// Faint returns text with faint styling.
func Faint(text string) string {
	return faintStyle.Render(text)
}

// Bold returns text with bold styling.
func Bold(text string) string {
	return boldStyle.Render(text)
}

// Success returns text with success (green) styling.
func Success(text string) string {
	return successStyle.Render(text)
}

// Error returns text with error (red) styling.
func Error(text string) string {
	return errorStyle.Render(text)
}

// Warning returns text with warning (yellow) styling.
func Warning(text string) string {
	return warningStyle.Render(text)
}

// SuccessBadge renders a bold green marker such as "✓".
func SuccessBadge(text string) string {
	return successBadgeStyle.Render(text)
}

// ErrorBadge renders a bold red marker such as "✗".
func ErrorBadge(text string) string {
	return errorBadgeStyle.Render(text)
}

// SkipBadge renders a bold yellow marker such as "-".
func SkipBadge(text string) string {
	return skipBadgeStyle.Render(text)
}

// Transition renders "from → to" with the new version highlighted.
func Transition(from, to string) string {
	return Faint(from) + " → " + Success(to)
}
