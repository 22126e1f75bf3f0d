// Package app carries the state shared by CLI commands: the resolved
// configuration, the logger and the workspace inspector.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/indaco/cargobump/internal/config"
	"github.com/indaco/cargobump/internal/core"
	"github.com/indaco/cargobump/internal/logging"
	"github.com/indaco/cargobump/internal/manifest"
	"github.com/indaco/cargobump/internal/tui"
	"github.com/indaco/cargobump/internal/workspace"
)

// Env is populated by the root command before any subcommand runs.
type Env struct {
	Root      string
	Config    *config.Config
	Logger    *slog.Logger
	FS        core.FileSystem
	Inspector workspace.Inspector
}

// New returns an Env for root with default configuration, a discard logger
// and the auto inspector.
func New(root string) *Env {
	e := &Env{
		Root:   root,
		Config: config.Default(),
		Logger: logging.Discard(),
		FS:     core.NewOSFileSystem(),
	}
	e.Inspector, _ = NewInspector(e.Config.Inspector, e.Config.CargoPath, e.FS, e.Logger)
	return e
}

// Configure applies cfg to the Env, building the logger on logOut and the
// inspector named by cfg.Inspector.
func (e *Env) Configure(cfg *config.Config, logOut io.Writer) error {
	logger, err := logging.New(logOut, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	if e.FS == nil {
		e.FS = core.NewOSFileSystem()
	}
	inspector, err := NewInspector(cfg.Inspector, cfg.CargoPath, e.FS, logger)
	if err != nil {
		return err
	}

	e.Config = cfg
	e.Logger = logger
	e.Inspector = inspector
	return nil
}

// NewInspector builds the inspector for mode (auto, cargo or native).
// An empty mode means auto.
func NewInspector(mode, cargoPath string, fsys core.FileSystem, logger *slog.Logger) (workspace.Inspector, error) {
	cargoOpts := []workspace.CargoOption{workspace.WithCargoLogger(logger)}
	if cargoPath != "" {
		cargoOpts = append(cargoOpts, workspace.WithCargoBinary(cargoPath))
	}

	switch mode {
	case "", config.InspectorAuto:
		return workspace.NewAutoInspector(
			workspace.NewCargoInspector(cargoOpts...),
			workspace.NewNativeInspector(fsys, logger),
			logger,
		), nil
	case config.InspectorCargo:
		return workspace.NewCargoInspector(cargoOpts...), nil
	case config.InspectorNative:
		return workspace.NewNativeInspector(fsys, logger), nil
	default:
		return nil, fmt.Errorf("unknown inspector %q (expected %s, %s or %s)", mode, config.InspectorAuto, config.InspectorCargo, config.InspectorNative)
	}
}

// LoadSession loads the workspace at e.Root, showing a spinner on
// interactive terminals while cargo runs.
func (e *Env) LoadSession(ctx context.Context) (*manifest.Session, error) {
	opts := []manifest.Option{
		manifest.WithFileSystem(e.FS),
		manifest.WithInspector(e.Inspector),
		manifest.WithLogger(e.Logger),
	}
	if e.Config != nil {
		opts = append(opts, manifest.WithAtomicWrites(e.Config.AtomicWrites))
	}

	var session *manifest.Session
	err := tui.WithSpinner(ctx, "Inspecting workspace...", func(ctx context.Context) error {
		var err error
		session, err = manifest.Load(ctx, e.Root, opts...)
		return err
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}
