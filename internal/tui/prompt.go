package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/indaco/cargobump/internal/semver"
)

// ErrNothingSelected is returned when the user confirms an empty selection.
var ErrNothingSelected = errors.New("no package selected")

// PackageOption is one entry of the package picker.
type PackageOption struct {
	Name    string
	Version string
}

// SelectPackagesFn and SelectLevelFn are function variables so commands can
// be tested without a terminal.
var (
	SelectPackagesFn = SelectPackages
	SelectLevelFn    = SelectLevel
)

// SelectPackages shows a multi-select of workspace packages and returns the
// chosen names. Packages sharing a name are listed once.
func SelectPackages(options []PackageOption) ([]string, error) {
	seen := make(map[string]bool, len(options))
	opts := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		if seen[o.Name] {
			continue
		}
		seen[o.Name] = true
		label := o.Name
		if o.Version != "" {
			label = fmt.Sprintf("%s (%s)", o.Name, o.Version)
		}
		opts = append(opts, huh.NewOption(label, o.Name))
	}

	var selected []string
	field := huh.NewMultiSelect[string]().
		Title("Packages to bump").
		Description("space to toggle, enter to confirm").
		Options(opts...).
		Value(&selected)

	if err := huh.NewForm(huh.NewGroup(field)).WithTheme(currentThemeOrDefault()).Run(); err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return nil, ErrNothingSelected
	}
	return selected, nil
}

// SelectLevel asks which component to bump.
func SelectLevel() (semver.Level, error) {
	level := semver.Patch
	opts := make([]huh.Option[semver.Level], 0, len(semver.Levels))
	for _, l := range semver.Levels {
		opts = append(opts, huh.NewOption(l.String(), l))
	}

	field := huh.NewSelect[semver.Level]().
		Title("Bump level").
		Options(opts...).
		Value(&level)

	if err := huh.NewForm(huh.NewGroup(field)).WithTheme(currentThemeOrDefault()).Run(); err != nil {
		return semver.Patch, err
	}
	return level, nil
}
