package workspace

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/indaco/cargobump/internal/core"
	"github.com/indaco/cargobump/internal/document"
)

// NativeInspector discovers packages by reading Cargo.toml files directly.
//
// Discovery order is: the root package (when the root manifest has a
// `[package]` table), then every `[workspace] members` entry in declaration
// order, with glob matches sorted by path. Paths listed in `exclude` are skipped.
type NativeInspector struct {
	fs     core.FileSystem
	logger *slog.Logger
}

// NewNativeInspector creates a NativeInspector reading through fsys.
func NewNativeInspector(fsys core.FileSystem, logger *slog.Logger) *NativeInspector {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &NativeInspector{fs: fsys, logger: logger}
}

func (n *NativeInspector) Inspect(ctx context.Context, root string) ([]Package, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root %q: %w", root, err)
	}

	rootManifest := filepath.Join(root, ManifestName)
	doc, err := n.readManifest(ctx, rootManifest)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoManifest, root)
		}
		return nil, err
	}

	var packages []Package
	seen := make(map[string]bool)

	if _, ok := doc.Table("package"); ok {
		pkg, err := packageFromDocument(root, rootManifest, doc)
		if err != nil {
			return nil, err
		}
		packages = append(packages, pkg)
		seen[root] = true
	}

	ws, isWorkspace := doc.Table("workspace")
	if !isWorkspace {
		if len(packages) == 0 {
			return nil, fmt.Errorf("manifest %q has neither [package] nor [workspace]", rootManifest)
		}
		return packages, nil
	}

	members, err := stringArray(ws, "members")
	if err != nil {
		return nil, fmt.Errorf("in %q: %w", rootManifest, err)
	}
	excludes, err := stringArray(ws, "exclude")
	if err != nil {
		return nil, fmt.Errorf("in %q: %w", rootManifest, err)
	}
	excluded := make([]string, 0, len(excludes))
	for _, e := range excludes {
		excluded = append(excluded, filepath.Join(root, filepath.FromSlash(e)))
	}

	for _, pattern := range members {
		dirs, err := n.expandMember(ctx, root, pattern)
		if err != nil {
			return nil, fmt.Errorf("workspace member %q: %w", pattern, err)
		}
		for _, dir := range dirs {
			if seen[dir] || isExcluded(dir, excluded) {
				continue
			}
			seen[dir] = true

			manifestPath := filepath.Join(dir, ManifestName)
			memberDoc, err := n.readManifest(ctx, manifestPath)
			if err != nil {
				return nil, fmt.Errorf("failed to load workspace member %q: %w", dir, err)
			}
			pkg, err := packageFromDocument(dir, manifestPath, memberDoc)
			if err != nil {
				return nil, err
			}
			n.logger.Debug("found workspace member", "name", pkg.Name, "manifest", manifestPath)
			packages = append(packages, pkg)
		}
	}

	return packages, nil
}

func (n *NativeInspector) readManifest(ctx context.Context, manifestPath string) (document.Table, error) {
	data, err := n.fs.ReadFile(ctx, manifestPath)
	if err != nil {
		return nil, err
	}
	doc, err := document.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", manifestPath, err)
	}
	return doc, nil
}

// expandMember resolves a member entry to the directories it names.
// Literal entries are returned as-is; glob entries are matched segment by
// segment against the filesystem.
func (n *NativeInspector) expandMember(ctx context.Context, root, pattern string) ([]string, error) {
	pattern = path.Clean(filepath.ToSlash(pattern))
	if !hasMeta(pattern) {
		return []string{filepath.Join(root, filepath.FromSlash(pattern))}, nil
	}

	segments := strings.Split(pattern, "/")
	if len(segments) > core.MaxDiscoveryDepth {
		return nil, fmt.Errorf("pattern is deeper than %d levels", core.MaxDiscoveryDepth)
	}

	current := []string{root}
	for _, seg := range segments {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, err := path.Match(seg, ""); err != nil {
			return nil, fmt.Errorf("invalid glob: %w", err)
		}

		var next []string
		for _, dir := range current {
			if !hasMeta(seg) {
				next = append(next, filepath.Join(dir, seg))
				continue
			}
			entries, err := n.fs.ReadDir(ctx, dir)
			if err != nil {
				continue
			}
			for _, e := range entries {
				if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
					continue
				}
				if ok, _ := path.Match(seg, e.Name()); ok {
					next = append(next, filepath.Join(dir, e.Name()))
				}
			}
		}
		current = next
	}

	// Glob matches that are not packages are ignored, mirroring cargo.
	matched := current[:0]
	for _, dir := range current {
		if _, err := n.fs.Stat(ctx, filepath.Join(dir, ManifestName)); err == nil {
			matched = append(matched, dir)
		}
	}
	return matched, nil
}

func packageFromDocument(dir, manifestPath string, doc document.Table) (Package, error) {
	pkg, ok := doc.Table("package")
	if !ok {
		return Package{}, fmt.Errorf("manifest %q has no [package] table", manifestPath)
	}
	name, ok := pkg.String("name")
	if !ok || name == "" {
		return Package{}, fmt.Errorf("manifest %q has no package.name", manifestPath)
	}
	version, _ := pkg.String("version")

	id := "path+file://" + filepath.ToSlash(dir) + "#" + name
	if version != "" {
		id += "@" + version
	}

	return Package{
		Name:         name,
		ID:           PackageID(id),
		ManifestPath: manifestPath,
		Version:      version,
	}, nil
}

func stringArray(tbl document.Table, key string) ([]string, error) {
	v, ok := tbl.Get(key)
	if !ok {
		return nil, nil
	}
	items, ok := v.AsArray()
	if !ok {
		return nil, fmt.Errorf("workspace.%s must be an array, got %s", key, v.Kind())
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.AsString()
		if !ok {
			return nil, fmt.Errorf("workspace.%s[%d] must be a string, got %s", key, i, item.Kind())
		}
		out = append(out, s)
	}
	return out, nil
}

func isExcluded(dir string, excluded []string) bool {
	for _, e := range excluded {
		if dir == e || strings.HasPrefix(dir, e+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func hasMeta(s string) bool {
	return strings.ContainsAny(s, `*?[`)
}
