package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Palette for the default cargobump theme.
var (
	rustPrimary     = lipgloss.AdaptiveColor{Light: "#b7410e", Dark: "#f28c28"}
	rustAccent      = lipgloss.AdaptiveColor{Light: "#8a2f0a", Dark: "#ffb46b"}
	textStrong      = lipgloss.AdaptiveColor{Light: "#1c1917", Dark: "#fafaf9"}
	textNormal      = lipgloss.AdaptiveColor{Light: "#44403c", Dark: "#d6d3d1"}
	textMuted       = lipgloss.AdaptiveColor{Light: "#78716c", Dark: "#a8a29e"}
	borderFocused   = lipgloss.AdaptiveColor{Light: "#b7410e", Dark: "#f28c28"}
	buttonText      = lipgloss.AdaptiveColor{Light: "#fafaf9", Dark: "#1c1917"}
	buttonBgBlurred = lipgloss.AdaptiveColor{Light: "#e7e5e4", Dark: "#44403c"}
)

// currentTheme holds the theme set by SetTheme; nil means the default.
var currentTheme *huh.Theme

// SetTheme sets the current theme by name.
// Empty or unknown names select the default cargobump theme.
func SetTheme(name string) {
	if name == "" {
		currentTheme = nil
		return
	}
	currentTheme = GetTheme(name)
}

func currentThemeOrDefault() *huh.Theme {
	if currentTheme == nil {
		return cargobumpTheme()
	}
	return currentTheme
}

func resetTheme() {
	currentTheme = nil
}

// cargobumpTheme is huh's base theme recolored with a rust palette.
func cargobumpTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(borderFocused)
	t.Focused.Title = t.Focused.Title.Foreground(rustPrimary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(textMuted)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(rustAccent)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(rustAccent)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(rustPrimary)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(rustPrimary).SetString("[x] ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(textMuted).SetString("[ ] ")
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(textNormal)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(buttonText).Background(rustPrimary).Bold(true).Padding(0, 1)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(textNormal).Background(buttonBgBlurred).Padding(0, 1)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Title = t.Blurred.Title.Foreground(textMuted)

	t.Help = help.Styles{
		Ellipsis:       lipgloss.NewStyle().Foreground(textMuted),
		ShortKey:       lipgloss.NewStyle().Foreground(textStrong),
		ShortDesc:      lipgloss.NewStyle().Foreground(textMuted),
		ShortSeparator: lipgloss.NewStyle().Foreground(textMuted),
		FullKey:        lipgloss.NewStyle().Foreground(textStrong),
		FullDesc:       lipgloss.NewStyle().Foreground(textMuted),
		FullSeparator:  lipgloss.NewStyle().Foreground(textMuted),
	}

	return t
}
