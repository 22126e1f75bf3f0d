package initialize

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/indaco/cargobump/internal/app"
	"github.com/indaco/cargobump/internal/config"
	"github.com/indaco/cargobump/internal/printer"
	"github.com/urfave/cli/v3"
)

// ErrConfigExists is returned when the config file exists and --force is not set.
var ErrConfigExists = errors.New("config file already exists (use --force to overwrite)")

// SaverFn builds the saver used to write the config; tests replace it.
var SaverFn = func() *config.Saver { return config.NewSaver(nil, nil, nil) }

// Run returns the "init" command.
func Run(env *app.Env) *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Write a default " + config.DefaultFileName + " to the workspace root",
		UsageText: "cargobump init [--force]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing config file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runInit(cmd, env)
		},
	}
}

func runInit(cmd *cli.Command, env *app.Env) error {
	path := filepath.Join(env.Root, config.DefaultFileName)

	if _, err := os.Stat(path); err == nil && !cmd.Bool("force") {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	cfg := env.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := SaverFn().SaveTo(cfg, path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.Root().Writer, "%s %s\n", printer.SuccessBadge("created"), path)
	return nil
}
