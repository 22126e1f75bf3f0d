// Package version exposes the cargobump release version.
package version

import (
	_ "embed"
	"strings"
)

//go:embed .version
var raw string

// GetVersion returns the embedded release version without a "v" prefix.
func GetVersion() string {
	return strings.TrimSpace(raw)
}
