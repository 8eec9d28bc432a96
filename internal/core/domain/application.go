package domain

import (
	"maps"
	"slices"
	"strings"
)

// ImportMap maps a source file path to the import names recorded for it.
type ImportMap map[string][]string

// SortedFiles returns the source files in lexicographic order.
func (m ImportMap) SortedFiles() []string {
	return slices.Sorted(maps.Keys(m))
}

// Merge returns a new map holding the entries of m overridden by those of other.
func (m ImportMap) Merge(other ImportMap) ImportMap {
	out := make(ImportMap, len(m)+len(other))
	maps.Copy(out, m)
	maps.Copy(out, other)
	return out
}

// Select returns the entries whose source file belongs to the application at appPath.
func (m ImportMap) Select(appPath string) ImportMap {
	out := make(ImportMap)
	for src, imports := range m {
		if BelongsTo(src, appPath) {
			out[src] = imports
		}
	}
	return out
}

// Without returns the entries whose file name is not base.
func (m ImportMap) Without(base string) ImportMap {
	out := make(ImportMap, len(m))
	for src, imports := range m {
		if src == base || strings.HasSuffix(src, "/"+base) {
			continue
		}
		out[src] = imports
	}
	return out
}

// BelongsTo reports whether a source file is part of the application rooted at appPath.
// Single-module applications own exactly their own file.
func BelongsTo(src, appPath string) bool {
	return src == appPath || strings.HasPrefix(src, appPath+"/")
}

// Application is one analyzed application and its scraped import data.
type Application struct {
	// Path identifies the application: a directory, or a single .py file.
	Path string
	// RawImports maps each of its source files to the raw import names found in it.
	RawImports ImportMap
	// Unused maps source files to the import names a checker reported as unused.
	Unused ImportMap
}

// NewApplication selects the entries of the corpus-wide maps that belong to appPath.
func NewApplication(appPath string, raw, unused ImportMap) *Application {
	return &Application{
		Path:       appPath,
		RawImports: raw.Select(appPath),
		Unused:     unused.Select(appPath),
	}
}

// IsSingleModule reports whether the application is a single source file.
// A single-module application is assumed to have no first-party imports.
func (a *Application) IsSingleModule() bool {
	return strings.HasSuffix(a.Path, SourceExt)
}

// AppRecord is the resolved view of an application.
type AppRecord struct {
	App string
	// Imports holds the top-level third-party packages the application depends on.
	Imports []string
	// Unused holds packages imported but never used anywhere in the application.
	// It is nil when there are none.
	Unused []string
}

// HasUnused reports whether the record carries app-level unused imports.
func (r AppRecord) HasUnused() bool {
	return len(r.Unused) > 0
}

// Record is one "key: values" line of a flat-text listing.
type Record struct {
	Key    string
	Values []string
}
