package core

import (
	"io/fs"
	"time"
)

// FileMode is an alias kept so callers do not need to import io/fs for permissions.
type FileMode = fs.FileMode

const (
	// PermOwnerRW is used for files only the current user should read (config files).
	PermOwnerRW FileMode = 0o600

	// PermManifest is the mode used when a manifest is created from scratch.
	// Existing manifests keep their mode.
	PermManifest FileMode = 0o644

	// PermDir is used when directories have to be created.
	PermDir FileMode = 0o755
)

const (
	// TimeoutCargo bounds a single `cargo metadata` invocation.
	TimeoutCargo = 2 * time.Minute

	// TimeoutShort bounds quick external probes such as `cargo --version`.
	TimeoutShort = 5 * time.Second
)

// MaxDiscoveryDepth limits how deep workspace member globs are expanded.
const MaxDiscoveryDepth = 10

// Marshaler abstracts serialization so savers can be tested with failing encoders.
type Marshaler interface {
	Marshal(v any) ([]byte, error)
}
