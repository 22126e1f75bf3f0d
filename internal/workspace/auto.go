package workspace

import (
	"context"
	"errors"
	"log/slog"
)

// AutoInspector prefers cargo and falls back when cargo is not installed.
type AutoInspector struct {
	primary  Inspector
	fallback Inspector
	logger   *slog.Logger
}

// NewAutoInspector returns an Inspector that tries primary first and uses
// fallback only when primary reports ErrCargoNotFound.
func NewAutoInspector(primary, fallback Inspector, logger *slog.Logger) *AutoInspector {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AutoInspector{primary: primary, fallback: fallback, logger: logger}
}

func (a *AutoInspector) Inspect(ctx context.Context, root string) ([]Package, error) {
	packages, err := a.primary.Inspect(ctx, root)
	if err == nil {
		return packages, nil
	}
	if !errors.Is(err, ErrCargoNotFound) {
		return nil, err
	}
	a.logger.Info("cargo not found, reading manifests directly", "root", root)
	return a.fallback.Inspect(ctx, root)
}
