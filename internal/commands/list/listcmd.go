package list

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/indaco/cargobump/internal/app"
	"github.com/indaco/cargobump/internal/manifest"
	"github.com/indaco/cargobump/internal/printer"
	"github.com/tidwall/sjson"
	"github.com/urfave/cli/v3"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// entry is one listed package.
type entry struct {
	Name     string
	ID       string
	Manifest string
	Version  string
	OK       bool
}

// Run returns the "list" command.
func Run(env *app.Env) *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List workspace packages and their current versions",
		UsageText: "cargobump list [--format text|json]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text or json",
				Value:   formatText,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runList(ctx, cmd, env)
		},
	}
}

func runList(ctx context.Context, cmd *cli.Command, env *app.Env) error {
	format := cmd.String("format")
	if format != formatText && format != formatJSON {
		return fmt.Errorf("invalid format %q (expected %s or %s)", format, formatText, formatJSON)
	}

	session, err := env.LoadSession(ctx)
	if err != nil {
		return err
	}
	entries := collect(session)

	w := cmd.Root().Writer
	if format == formatJSON {
		out, err := renderJSON(entries)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	}
	renderText(w, session.Root(), entries)
	return nil
}

// collect reads each package's version from its own document, so packages
// sharing a name are reported separately.
func collect(session *manifest.Session) []entry {
	packages := session.Packages()
	entries := make([]entry, 0, len(packages))
	for _, pkg := range packages {
		e := entry{Name: pkg.Name, ID: string(pkg.ID), Manifest: pkg.ManifestPath}
		if doc, ok := session.Document(pkg.ID); ok {
			if val, ok := doc.Lookup("package", "version"); ok {
				e.Version, e.OK = val.AsString()
			}
		}
		entries = append(entries, e)
	}
	return entries
}

func renderText(w io.Writer, root string, entries []entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, printer.Warning("No packages found."))
		return
	}

	width := 0
	for _, e := range entries {
		width = max(width, len(e.Name))
	}
	for _, e := range entries {
		version := printer.Success(e.Version)
		if !e.OK {
			version = printer.Faint("(no version)")
		}
		fmt.Fprintf(w, "%-*s  %s  %s\n", width, e.Name, version, printer.Faint(relPath(root, e.Manifest)))
	}
}

func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}

// renderJSON builds {"packages":[{"name":..,"id":..,"manifest":..,"version":..}]}.
// version is null when the manifest has no string package.version.
func renderJSON(entries []entry) (string, error) {
	out, err := sjson.Set("{}", "packages", []any{})
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		item := map[string]any{
			"name":     e.Name,
			"id":       e.ID,
			"manifest": e.Manifest,
			"version":  nil,
		}
		if e.OK {
			item["version"] = e.Version
		}
		out, err = sjson.Set(out, "packages.-1", item)
		if err != nil {
			return "", fmt.Errorf("failed to build json report: %w", err)
		}
	}
	return out, nil
}
