// Package pysource reads Python application sources from disk.
package pysource

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/libscan/internal/core/domain"
	"go.trai.ch/zerr"
)

const sourceExt = domain.SourceExt

// Tree implements ports.SourceTree on the local file system.
type Tree struct{}

// NewTree creates a new Tree.
func NewTree() *Tree {
	return &Tree{}
}

// ListApps returns categoryDir/name for each entry of categoryDir that is not hidden, sorted.
func (t *Tree) ListApps(categoryDir string) ([]string, error) {
	entries, err := os.ReadDir(categoryDir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrAppsListFailed, err.Error()), "path", categoryDir)
	}

	apps := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		apps = append(apps, filepath.ToSlash(filepath.Join(categoryDir, e.Name())))
	}
	slices.Sort(apps)
	return apps, nil
}

// ReadLines returns the lines of a source file without line terminators.
func (t *Tree) ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the scanned corpus
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrSourceReadFailed, err.Error()), "path", path)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n"), nil
}

// ScanImports parses the import statements of every source file of an application.
func (t *Tree) ScanImports(appPath string) (domain.ImportMap, error) {
	m := make(domain.ImportMap)
	for path, err := range walkSources(appPath) {
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrSourceReadFailed, err.Error()), "path", appPath)
		}

		lines, err := t.ReadLines(path)
		if err != nil {
			return nil, err
		}
		m[path] = parseImports(lines)
	}
	return m, nil
}
