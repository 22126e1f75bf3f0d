package bump

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/indaco/cargobump/internal/app"
	"github.com/indaco/cargobump/internal/manifest"
	"github.com/indaco/cargobump/internal/semver"
	"github.com/indaco/cargobump/internal/tui"
	"github.com/urfave/cli/v3"
)

var (
	// ErrNotBumped is returned when a named package could not be bumped.
	ErrNotBumped = errors.New("package version not bumped")

	// ErrNoPackages is returned when no package was named and no prompt can be shown.
	ErrNoPackages = errors.New("no package given: pass package names or --all")

	// ErrAllWithNames is returned when --all is combined with package names.
	ErrAllWithNames = errors.New("--all cannot be combined with package names")

	// ErrNoLevel is returned when "bump" runs without a level outside a terminal.
	ErrNoLevel = errors.New("no bump level given: use bump patch, bump minor or bump major")
)

// Run returns the "bump" parent command.
func Run(env *app.Env) *cli.Command {
	return &cli.Command{
		Name:      "bump",
		Usage:     "Bump package versions (patch, minor, major)",
		UsageText: "cargobump bump <patch|minor|major> [PACKAGE...] [--flags]",
		Flags:     bumpFlags(true),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if !tui.IsInteractive() {
				return ErrNoLevel
			}
			level, err := tui.SelectLevelFn()
			if err != nil {
				return err
			}
			return runBump(ctx, cmd, env, level)
		},
		Commands: []*cli.Command{
			levelCmd(env, semver.Patch, "Increment patch version"),
			levelCmd(env, semver.Minor, "Increment minor version and reset patch"),
			levelCmd(env, semver.Major, "Increment major version and reset minor and patch"),
		},
	}
}

func levelCmd(env *app.Env, level semver.Level, usage string) *cli.Command {
	return &cli.Command{
		Name:      level.String(),
		Usage:     usage,
		UsageText: fmt.Sprintf("cargobump bump %s [PACKAGE...] [--all] [--dry-run]", level),
		Flags:     bumpFlags(false),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runBump(ctx, cmd, env, level)
		},
	}
}

// bumpFlags returns the flags shared by "bump" and its level subcommands.
// The parent's copies are local so they do not shadow the subcommands'.
func bumpFlags(local bool) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "all",
			Aliases: []string{"a"},
			Usage:   "Bump every package of the workspace",
			Local:   local,
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Show the new versions without writing any manifest",
			Local: local,
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format: text or json",
			Value:   formatText,
			Local:   local,
		},
	}
}

// result collects what a bump run did, for rendering.
type result struct {
	Level   semver.Level
	DryRun  bool
	Changes []manifest.Change
	Missed  []string
}

func runBump(ctx context.Context, cmd *cli.Command, env *app.Env, level semver.Level) error {
	format := cmd.String("format")
	if err := validateFormat(format); err != nil {
		return err
	}

	all := cmd.Bool("all")
	names := cmd.Args().Slice()
	if all && len(names) > 0 {
		return ErrAllWithNames
	}

	session, err := env.LoadSession(ctx)
	if err != nil {
		return err
	}

	if !all && len(names) == 0 {
		names, err = promptPackages(session)
		if err != nil {
			return err
		}
	}

	res := result{Level: level, DryRun: cmd.Bool("dry-run")}
	if all {
		res.Changes = session.BumpAll(level)
	} else {
		res.Changes, res.Missed = bumpNamed(session, names, level)
	}

	if !res.DryRun && len(res.Changes) > 0 {
		if err := session.Persist(ctx); err != nil {
			return err
		}
	}
	env.Logger.Info("bump finished", "level", level.String(), "changed", len(res.Changes), "missed", len(res.Missed), "dry_run", res.DryRun)

	if err := render(cmd.Root().Writer, format, res); err != nil {
		return err
	}

	if len(res.Missed) > 0 {
		return fmt.Errorf("%w: %s", ErrNotBumped, strings.Join(res.Missed, ", "))
	}
	return nil
}

// bumpNamed bumps each name once, in the order given.
func bumpNamed(session *manifest.Session, names []string, level semver.Level) ([]manifest.Change, []string) {
	var (
		changes []manifest.Change
		missed  []string
	)
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		previous, _ := session.Version(name)
		current, ok := session.Bump(name, level)
		if !ok {
			missed = append(missed, name)
			continue
		}
		pkg, _ := session.Package(name)
		changes = append(changes, manifest.Change{Package: pkg, Previous: previous, Current: current})
	}
	return changes, missed
}

func promptPackages(session *manifest.Session) ([]string, error) {
	if !tui.IsInteractive() {
		return nil, ErrNoPackages
	}
	packages := session.Packages()
	options := make([]tui.PackageOption, 0, len(packages))
	for _, pkg := range packages {
		opt := tui.PackageOption{Name: pkg.Name, Version: pkg.Version}
		if v, ok := session.Version(pkg.Name); ok {
			opt.Version = v.String()
		}
		options = append(options, opt)
	}
	return tui.SelectPackagesFn(options)
}
