// Package semver parses, compares and increments semantic versions as used
// in Cargo manifests.
package semver
