package workspace

import (
	"context"
	"errors"
)

// ManifestName is the file name of a Cargo manifest.
const ManifestName = "Cargo.toml"

var (
	// ErrCargoNotFound is returned when the cargo binary is not on PATH.
	ErrCargoNotFound = errors.New("cargo executable not found")

	// ErrNoManifest is returned when the project root has no Cargo.toml.
	ErrNoManifest = errors.New("no Cargo.toml found in project root")
)

// PackageID uniquely identifies a package within one workspace.
type PackageID string

// Package is one workspace member as reported by discovery.
type Package struct {
	// Name is the package name from `package.name`.
	Name string

	// ID is the unique package identifier.
	ID PackageID

	// ManifestPath is the absolute path to the package's Cargo.toml.
	ManifestPath string

	// Version is the version reported at discovery time. It is informational
	// only; the manifest document is the source of truth after loading.
	Version string
}

// Inspector lists the member packages of the workspace rooted at root,
// in a stable discovery order.
type Inspector interface {
	Inspect(ctx context.Context, root string) ([]Package, error)
}

// InspectorFunc adapts a function to the Inspector interface.
type InspectorFunc func(ctx context.Context, root string) ([]Package, error)

func (f InspectorFunc) Inspect(ctx context.Context, root string) ([]Package, error) {
	return f(ctx, root)
}
