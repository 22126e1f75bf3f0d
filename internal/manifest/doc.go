// Package manifest loads every Cargo.toml of a workspace into memory, bumps
// `package.version` fields in place and writes the manifests back.
//
// A Session is created with Load, mutated with the Bump methods and flushed
// with Persist. Bumps never touch disk and never fail: a package that cannot
// be bumped (unknown name, missing or malformed version) is reported as a
// miss through the boolean result. Loading and persisting fail with
// *LoadError and *PersistError respectively.
//
// A Session is not safe for concurrent use.
package manifest
