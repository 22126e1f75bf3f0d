package semver

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	modsemver "golang.org/x/mod/semver"
)

// Version represents a semantic version (major.minor.patch-preRelease+build).
type Version struct {
	Major      uint64
	Minor      uint64
	Patch      uint64
	PreRelease string
	Build      string
}

var (
	// versionRegex matches strict semver 2.0.0 strings as Cargo accepts them:
	// no "v" prefix, no leading zeros in numeric parts.
	// It captures:
	//   1. Major version
	//   2. Minor version
	//   3. Patch version
	//   4. (optional) Pre-release identifier
	//   5. (optional) Build metadata
	versionRegex = regexp.MustCompile(
		`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` + // major.minor.patch
			`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?` + // optional pre-release
			`(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`, // optional build metadata
	)

	// ErrInvalidVersion is returned when a version string does not conform
	// to semantic versioning.
	ErrInvalidVersion = errors.New("invalid version format")

	// ErrOverflow is returned when an increment would overflow a component.
	ErrOverflow = errors.New("version component overflow")
)

// maxVersionLength is the maximum allowed length for a version string.
// This prevents potential ReDoS attacks on the regex parser.
const maxVersionLength = 128

// String returns the canonical string form of the version.
func (v Version) String() string {
	var sb strings.Builder
	sb.Grow(20)
	sb.WriteString(strconv.FormatUint(v.Major, 10))
	sb.WriteByte('.')
	sb.WriteString(strconv.FormatUint(v.Minor, 10))
	sb.WriteByte('.')
	sb.WriteString(strconv.FormatUint(v.Patch, 10))
	if v.PreRelease != "" {
		sb.WriteByte('-')
		sb.WriteString(v.PreRelease)
	}
	if v.Build != "" {
		sb.WriteByte('+')
		sb.WriteString(v.Build)
	}
	return sb.String()
}

// Parse parses a strict semantic version string.
//
// Supported formats:
//   - "1.2.3"
//   - "1.2.3-alpha.1" (with pre-release identifier)
//   - "1.2.3+build.123" (with build metadata)
//   - "1.2.3-rc.1+build.456" (with both)
//
// Returns ErrInvalidVersion (wrapped) when:
//   - Input exceeds maxVersionLength (128 characters)
//   - Format doesn't match the major.minor.patch pattern
//   - A numeric component does not fit in a uint64
func Parse(s string) (Version, error) {
	if len(s) > maxVersionLength {
		return Version{}, fmt.Errorf("%w: version string exceeds maximum length of %d", ErrInvalidVersion, maxVersionLength)
	}

	matches := versionRegex.FindStringSubmatch(s)
	if matches == nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	var parts [3]uint64
	for i, name := range []string{"major", "minor", "patch"} {
		n, err := strconv.ParseUint(matches[i+1], 10, 64)
		if err != nil {
			return Version{}, fmt.Errorf("%w: invalid %s version: %s", ErrInvalidVersion, name, err.Error())
		}
		parts[i] = n
	}

	return Version{
		Major:      parts[0],
		Minor:      parts[1],
		Patch:      parts[2],
		PreRelease: matches[4],
		Build:      matches[5],
	}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Bump returns v incremented at level.
//
//   - Patch: 1.2.3 -> 1.2.4
//   - Minor: 1.2.3 -> 1.3.0
//   - Major: 1.2.3 -> 2.0.0
//
// Pre-release and build metadata are always cleared.
func (v Version) Bump(level Level) (Version, error) {
	switch level {
	case Patch:
		if v.Patch == math.MaxUint64 {
			return Version{}, fmt.Errorf("%w: patch", ErrOverflow)
		}
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
	case Minor:
		if v.Minor == math.MaxUint64 {
			return Version{}, fmt.Errorf("%w: minor", ErrOverflow)
		}
		return Version{Major: v.Major, Minor: v.Minor + 1}, nil
	case Major:
		if v.Major == math.MaxUint64 {
			return Version{}, fmt.Errorf("%w: major", ErrOverflow)
		}
		return Version{Major: v.Major + 1}, nil
	default:
		return Version{}, fmt.Errorf("invalid bump level: %s", level)
	}
}

// Compare compares two semantic versions.
// It returns -1 if v < other, 0 if v == other, and +1 if v > other.
// Build metadata is ignored.
func (v Version) Compare(other Version) int {
	return modsemver.Compare("v"+v.String(), "v"+other.String())
}

// IsPreRelease reports whether the version carries a pre-release identifier.
func (v Version) IsPreRelease() bool {
	return v.PreRelease != ""
}
