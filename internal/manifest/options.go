package manifest

import (
	"log/slog"

	"github.com/indaco/cargobump/internal/core"
	"github.com/indaco/cargobump/internal/workspace"
)

type options struct {
	fs           core.FileSystem
	inspector    workspace.Inspector
	logger       *slog.Logger
	atomicWrites bool
}

// Option configures Load.
type Option func(*options)

// WithFileSystem sets the filesystem used to read and write manifests.
func WithFileSystem(fs core.FileSystem) Option {
	return func(o *options) {
		if fs != nil {
			o.fs = fs
		}
	}
}

// WithInspector sets the workspace inspector. The default tries cargo and
// falls back to reading manifests directly.
func WithInspector(inspector workspace.Inspector) Option {
	return func(o *options) {
		if inspector != nil {
			o.inspector = inspector
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithAtomicWrites makes Persist write each manifest to a temporary file and
// rename it into place.
func WithAtomicWrites(enabled bool) Option {
	return func(o *options) {
		o.atomicWrites = enabled
	}
}

func buildOptions(opts []Option) options {
	o := options{
		fs:     core.NewOSFileSystem(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.inspector == nil {
		o.inspector = workspace.NewAutoInspector(
			workspace.NewCargoInspector(workspace.WithCargoLogger(o.logger)),
			workspace.NewNativeInspector(o.fs, o.logger),
			o.logger,
		)
	}
	return o
}
