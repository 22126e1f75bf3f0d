package manifest

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/indaco/cargobump/internal/core"
	"github.com/indaco/cargobump/internal/document"
	"github.com/indaco/cargobump/internal/semver"
	"github.com/indaco/cargobump/internal/workspace"
)

// Session holds every manifest of one workspace in memory.
//
// packages and documents are kept in 1:1 correspondence: every package id
// has exactly one document and no document exists without a package.
type Session struct {
	root      string
	packages  []workspace.Package
	documents map[workspace.PackageID]document.Table

	fs           core.FileSystem
	logger       *slog.Logger
	atomicWrites bool
}

// Load discovers the packages of the workspace at root and parses all their
// manifests. Any failure aborts the whole load and is returned as *LoadError.
func Load(ctx context.Context, root string, opts ...Option) (*Session, error) {
	o := buildOptions(opts)

	packages, err := o.inspector.Inspect(ctx, root)
	if err != nil {
		return nil, &LoadError{Root: root, Err: err}
	}

	s := &Session{
		root:         root,
		packages:     slices.Clone(packages),
		documents:    make(map[workspace.PackageID]document.Table, len(packages)),
		fs:           o.fs,
		logger:       o.logger,
		atomicWrites: o.atomicWrites,
	}

	for _, pkg := range s.packages {
		if err := ctx.Err(); err != nil {
			return nil, &LoadError{Root: root, Err: err}
		}
		if _, dup := s.documents[pkg.ID]; dup {
			return nil, &LoadError{Root: root, Path: pkg.ManifestPath, Err: fmt.Errorf("%w: %s", ErrDuplicatePackageID, pkg.ID)}
		}

		data, err := s.fs.ReadFile(ctx, pkg.ManifestPath)
		if err != nil {
			return nil, &LoadError{Root: root, Path: pkg.ManifestPath, Err: err}
		}
		doc, err := document.Parse(data)
		if err != nil {
			return nil, &LoadError{Root: root, Path: pkg.ManifestPath, Err: err}
		}
		s.documents[pkg.ID] = doc
	}

	s.logger.Debug("workspace loaded", "root", root, "packages", len(s.packages))
	return s, nil
}

// Root returns the project root the session was loaded from.
func (s *Session) Root() string {
	return s.root
}

// Packages returns the discovered packages in discovery order.
func (s *Session) Packages() []workspace.Package {
	return slices.Clone(s.packages)
}

// Package returns the first package named name, in discovery order.
func (s *Session) Package(name string) (workspace.Package, bool) {
	i := slices.IndexFunc(s.packages, func(p workspace.Package) bool { return p.Name == name })
	if i < 0 {
		return workspace.Package{}, false
	}
	return s.packages[i], true
}

// Document returns a copy of the in-memory manifest of the package with id.
func (s *Session) Document(id workspace.PackageID) (document.Table, bool) {
	doc, ok := s.documents[id]
	if !ok {
		return nil, false
	}
	return doc.Clone(), true
}

// Version returns the current in-memory version of the first package named
// name. It reports false under the same conditions a bump would miss.
func (s *Session) Version(name string) (semver.Version, bool) {
	pkg, ok := s.Package(name)
	if !ok {
		return semver.Version{}, false
	}
	_, v, err := versionField(s.documents[pkg.ID])
	if err != nil {
		return semver.Version{}, false
	}
	return v, true
}
