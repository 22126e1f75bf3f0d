package manifest

import (
	"context"
	"fmt"

	"github.com/indaco/cargobump/internal/core"
	"github.com/indaco/cargobump/internal/document"
)

// tempSuffix is appended to a manifest path for atomic writes.
const tempSuffix = ".cargobump.tmp"

// Persist writes every manifest of the session back to its original path,
// including manifests no bump touched.
//
// All documents are serialized before the first write, so an encoding failure
// leaves the disk untouched. A write failure stops at the failing package:
// manifests before it have already been replaced, the rest have not.
func (s *Session) Persist(ctx context.Context) error {
	rendered := make([][]byte, len(s.packages))
	for i, pkg := range s.packages {
		data, err := document.Serialize(s.documents[pkg.ID])
		if err != nil {
			return &PersistError{Package: pkg.Name, Path: pkg.ManifestPath, Err: err}
		}
		rendered[i] = data
	}

	for i, pkg := range s.packages {
		if err := ctx.Err(); err != nil {
			return &PersistError{Package: pkg.Name, Path: pkg.ManifestPath, Err: err}
		}
		if err := s.write(ctx, pkg.ManifestPath, rendered[i]); err != nil {
			return &PersistError{Package: pkg.Name, Path: pkg.ManifestPath, Err: err}
		}
		s.logger.Debug("manifest written", "package", pkg.Name, "path", pkg.ManifestPath)
	}
	return nil
}

func (s *Session) write(ctx context.Context, path string, data []byte) error {
	perm := core.PermManifest
	if info, err := s.fs.Stat(ctx, path); err == nil {
		perm = info.Mode().Perm()
	}

	if !s.atomicWrites {
		return s.fs.WriteFile(ctx, path, data, perm)
	}

	tmp := path + tempSuffix
	if err := s.fs.WriteFile(ctx, tmp, data, perm); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := s.fs.Rename(ctx, tmp, path); err != nil {
		_ = s.fs.Remove(ctx, tmp)
		return fmt.Errorf("failed to replace manifest: %w", err)
	}
	return nil
}
