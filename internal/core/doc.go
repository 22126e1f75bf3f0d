// Package core holds the small set of abstractions shared across cargobump:
// the filesystem interface used by every component that touches disk, an
// in-memory implementation for tests, and common permission and timeout
// constants.
package core
