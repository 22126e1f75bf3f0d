package tui

import (
	"github.com/charmbracelet/huh"
)

// ValidThemes lists the theme names accepted by the theme config key, in the
// order they are documented.
var ValidThemes = []string{"cargobump", "base", "base16", "catppuccin", "charm", "dracula"}

var themes = map[string]func() *huh.Theme{
	"cargobump":  cargobumpTheme,
	"base":       huh.ThemeBase,
	"base16":     huh.ThemeBase16,
	"catppuccin": huh.ThemeCatppuccin,
	"charm":      huh.ThemeCharm,
	"dracula":    huh.ThemeDracula,
}

// IsValidTheme reports whether name is a known theme.
func IsValidTheme(name string) bool {
	_, ok := themes[name]
	return ok
}

// GetTheme builds the named theme, or returns nil for an unknown name.
func GetTheme(name string) *huh.Theme {
	build, ok := themes[name]
	if !ok {
		return nil
	}
	return build()
}
