package manifest

import (
	"errors"
	"fmt"
)

// ErrDuplicatePackageID is wrapped in a LoadError when discovery reports the
// same package id twice.
var ErrDuplicatePackageID = errors.New("duplicate package id")

// LoadError reports a failure to build a Session.
type LoadError struct {
	// Root is the project root passed to Load.
	Root string
	// Path is the manifest being loaded, empty when discovery itself failed.
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to load workspace %q: %v", e.Root, e.Err)
	}
	return fmt.Sprintf("failed to load manifest %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// PersistError reports a failure to write a manifest back to disk.
type PersistError struct {
	Package string
	Path    string
	Err     error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("failed to persist manifest of %q to %q: %v", e.Package, e.Path, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
