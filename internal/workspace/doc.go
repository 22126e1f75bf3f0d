// Package workspace discovers the member packages of a Cargo workspace.
//
// Two inspectors are provided: CargoInspector asks `cargo metadata` and is
// authoritative, NativeInspector reads the root Cargo.toml and expands the
// `[workspace] members` globs itself so the tool works without a Rust
// toolchain. AutoInspector tries cargo first and falls back to the native
// reader when the cargo binary cannot be found.
package workspace
