package domain

// ImportIndex is a read-only lookup from first-party file path to its raw imports.
// It is built once per application and shared by every substitution in that pass.
type ImportIndex struct {
	entries ImportMap
}

// NewImportIndex copies the raw import map into an index.
func NewImportIndex(raw ImportMap) *ImportIndex {
	entries := make(ImportMap, len(raw))
	for src, imports := range raw {
		entries[src] = append([]string(nil), imports...)
	}
	return &ImportIndex{entries: entries}
}

// Imports returns the raw imports of a first-party file and whether it is known.
func (x *ImportIndex) Imports(path string) ([]string, bool) {
	imports, ok := x.entries[path]
	return imports, ok
}

// Has reports whether path is a known first-party file.
func (x *ImportIndex) Has(path string) bool {
	_, ok := x.entries[path]
	return ok
}

// Len returns the number of known first-party files.
func (x *ImportIndex) Len() int {
	return len(x.entries)
}
