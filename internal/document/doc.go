// Package document models a manifest as an untyped tree of TOML values.
//
// A Table is the decoded form of a whole document. Values inside it are
// navigated with fallible accessors that report a type mismatch with a false
// second result instead of an error, so callers can walk a manifest whose
// shape is mostly unknown without a schema.
package document
