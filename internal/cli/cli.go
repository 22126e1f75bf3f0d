package cli

import (
	"context"
	"fmt"

	"github.com/indaco/cargobump/internal/app"
	"github.com/indaco/cargobump/internal/commands/bump"
	"github.com/indaco/cargobump/internal/commands/initialize"
	"github.com/indaco/cargobump/internal/commands/list"
	"github.com/indaco/cargobump/internal/config"
	"github.com/indaco/cargobump/internal/printer"
	"github.com/indaco/cargobump/internal/tui"
	"github.com/indaco/cargobump/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

// New builds and returns the root CLI command. env is filled in by the
// root Before hook from flags and the config file, then shared by every
// subcommand.
func New(env *app.Env) *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "cargobump",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Bump package versions across a Cargo workspace",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "Workspace root containing Cargo.toml",
				Value:   ".",
			},
			&urfavecli.StringFlag{
				Name:  "config",
				Usage: "Path to config file (default: $" + config.EnvConfigPath + " or <root>/" + config.DefaultFileName + ")",
			},
			&urfavecli.StringFlag{
				Name:  "inspector",
				Usage: "Workspace discovery: auto, cargo or native",
			},
			&urfavecli.StringFlag{
				Name:  "log-level",
				Usage: "Diagnostic log level: debug, info, warn or error",
			},
			&urfavecli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
			&urfavecli.BoolFlag{
				Name:  "no-input",
				Usage: "Never prompt or show spinners (also $" + tui.EnvNonInteractive + ")",
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(cmd.Bool("no-color"))
			tui.SetNoInput(cmd.Bool("no-input"))
			return ctx, configure(cmd, env)
		},
		Commands: []*urfavecli.Command{
			initialize.Run(env),
			list.Run(env),
			bump.Run(env),
		},
	}
}

// configure resolves the config file and lets flags override it.
func configure(cmd *urfavecli.Command, env *app.Env) error {
	env.Root = cmd.String("root")

	cfg, err := config.LoadFn(env.Root, cmd.String("config"))
	if err != nil {
		return err
	}
	if cmd.IsSet("inspector") {
		cfg.Inspector = cmd.String("inspector")
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	tui.SetTheme(cfg.Theme)
	return env.Configure(cfg, cmd.ErrWriter)
}
