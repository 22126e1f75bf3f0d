package manifest

import (
	"errors"
	"fmt"

	"github.com/indaco/cargobump/internal/document"
	"github.com/indaco/cargobump/internal/semver"
	"github.com/indaco/cargobump/internal/workspace"
)

// Change records one successful bump.
type Change struct {
	Package  workspace.Package
	Previous semver.Version
	Current  semver.Version
}

var (
	errNoPackageTable = errors.New("no [package] table")
	errNoVersion      = errors.New("no package.version")
	errNotString      = errors.New("package.version is not a string")
)

// BumpPatch increments the patch version of the first package named name.
func (s *Session) BumpPatch(name string) (semver.Version, bool) {
	return s.Bump(name, semver.Patch)
}

// BumpMinor increments the minor version of the first package named name.
func (s *Session) BumpMinor(name string) (semver.Version, bool) {
	return s.Bump(name, semver.Minor)
}

// BumpMajor increments the major version of the first package named name.
func (s *Session) BumpMajor(name string) (semver.Version, bool) {
	return s.Bump(name, semver.Major)
}

// Bump increments the version of the first package named name at level and
// returns the new version. It returns false, leaving every document
// untouched, when the name is unknown or the manifest has no parsable
// string at package.version.
func (s *Session) Bump(name string, level semver.Level) (semver.Version, bool) {
	pkg, ok := s.Package(name)
	if !ok {
		s.logger.Debug("bump skipped", "package", name, "reason", "unknown package")
		return semver.Version{}, false
	}

	change, err := s.bumpPackage(pkg, level)
	if err != nil {
		s.logger.Debug("bump skipped", "package", name, "reason", err.Error())
		return semver.Version{}, false
	}
	return change.Current, true
}

// BumpAll increments the version of every package at level, in discovery
// order, skipping packages without a usable version. It returns the changes
// that were applied.
func (s *Session) BumpAll(level semver.Level) []Change {
	var changes []Change
	for _, pkg := range s.packages {
		change, err := s.bumpPackage(pkg, level)
		if err != nil {
			s.logger.Debug("bump skipped", "package", pkg.Name, "id", pkg.ID, "reason", err.Error())
			continue
		}
		changes = append(changes, change)
	}
	return changes
}

// BumpAllPatch increments the patch version of every package.
func (s *Session) BumpAllPatch() {
	s.BumpAll(semver.Patch)
}

// bumpPackage rewrites package.version in pkg's document. The document is
// only written to after the new version has been computed.
func (s *Session) bumpPackage(pkg workspace.Package, level semver.Level) (Change, error) {
	doc, ok := s.documents[pkg.ID]
	if !ok {
		return Change{}, fmt.Errorf("no document for %s", pkg.ID)
	}

	table, current, err := versionField(doc)
	if err != nil {
		return Change{}, err
	}

	next, err := current.Bump(level)
	if err != nil {
		return Change{}, err
	}

	table.SetString("version", next.String())
	s.logger.Debug("bumped", "package", pkg.Name, "from", current.String(), "to", next.String())

	return Change{Package: pkg, Previous: current, Current: next}, nil
}

// versionField navigates to package.version and parses it. The returned
// table is the live `package` table of doc.
func versionField(doc document.Table) (document.Table, semver.Version, error) {
	table, ok := doc.Table("package")
	if !ok {
		return nil, semver.Version{}, errNoPackageTable
	}
	raw, ok := table.Get("version")
	if !ok {
		return nil, semver.Version{}, errNoVersion
	}
	str, ok := raw.AsString()
	if !ok {
		return nil, semver.Version{}, fmt.Errorf("%w (found %s)", errNotString, raw.Kind())
	}
	v, err := semver.Parse(str)
	if err != nil {
		return nil, semver.Version{}, err
	}
	return table, v, nil
}
