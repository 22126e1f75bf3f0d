package semver

import (
	"fmt"
	"strings"
)

// Level selects which version component a bump increments.
type Level int

const (
	// Patch increments the patch component.
	Patch Level = iota
	// Minor increments the minor component and resets patch.
	Minor
	// Major increments the major component and resets minor and patch.
	Major
)

// Levels lists every bump level, lowest first.
var Levels = []Level{Patch, Minor, Major}

func (l Level) String() string {
	switch l {
	case Patch:
		return "patch"
	case Minor:
		return "minor"
	case Major:
		return "major"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// ParseLevel converts "patch", "minor" or "major" (case-insensitive) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "patch":
		return Patch, nil
	case "minor":
		return Minor, nil
	case "major":
		return Major, nil
	default:
		return Patch, fmt.Errorf("invalid bump level: %q (expected patch, minor or major)", s)
	}
}
