// Package tui provides the interactive pieces of the CLI: package and
// bump-level pickers, a spinner for slow workspace inspection, themes, and
// detection of whether prompting is possible at all.
package tui
