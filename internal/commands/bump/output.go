package bump

import (
	"fmt"
	"io"

	"github.com/indaco/cargobump/internal/printer"
	"github.com/tidwall/sjson"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON:
		return nil
	default:
		return fmt.Errorf("invalid format %q (expected %s or %s)", format, formatText, formatJSON)
	}
}

func render(w io.Writer, format string, res result) error {
	if format == formatJSON {
		out, err := renderJSON(res)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	}
	renderText(w, res)
	return nil
}

func renderText(w io.Writer, res result) {
	badge := printer.SuccessBadge("bumped")
	if res.DryRun {
		badge = printer.SkipBadge("would bump")
	}

	for _, c := range res.Changes {
		fmt.Fprintf(w, "%s %s %s\n", badge, printer.Bold(c.Package.Name), printer.Transition(c.Previous.String(), c.Current.String()))
	}
	for _, name := range res.Missed {
		fmt.Fprintf(w, "%s %s %s\n", printer.ErrorBadge("missed"), printer.Bold(name), printer.Faint("unknown package or no usable package.version"))
	}
	if len(res.Changes) == 0 && len(res.Missed) == 0 {
		fmt.Fprintln(w, printer.Warning("No package version was changed."))
	}
	if res.DryRun && len(res.Changes) > 0 {
		fmt.Fprintln(w, printer.Faint("Dry run: no manifest was written."))
	}
}

// renderJSON builds the machine-readable report:
//
//	{"level":"patch","dry_run":false,"changes":[{...}],"missed":[]}
func renderJSON(res result) (string, error) {
	out := "{}"
	var err error

	set := func(path string, value any) {
		if err != nil {
			return
		}
		out, err = sjson.Set(out, path, value)
	}

	set("level", res.Level.String())
	set("dry_run", res.DryRun)
	set("changes", []any{})
	set("missed", []any{})
	for _, c := range res.Changes {
		set("changes.-1", map[string]string{
			"package":  c.Package.Name,
			"id":       string(c.Package.ID),
			"manifest": c.Package.ManifestPath,
			"previous": c.Previous.String(),
			"current":  c.Current.String(),
		})
	}
	for _, name := range res.Missed {
		set("missed.-1", name)
	}

	if err != nil {
		return "", fmt.Errorf("failed to build json report: %w", err)
	}
	return out, nil
}
