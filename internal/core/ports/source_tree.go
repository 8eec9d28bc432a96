package ports

import "go.trai.ch/libscan/internal/core/domain"

// SourceTree gives access to the application sources of the corpus.
//
//go:generate go run go.uber.org/mock/mockgen -source=source_tree.go -destination=mocks/mock_source_tree.go -package=mocks
type SourceTree interface {
	// ListApps returns the applications found in a category directory, sorted.
	ListApps(categoryDir string) ([]string, error)

	// ReadLines returns the lines of a source file.
	ReadLines(path string) ([]string, error)

	// ScanImports extracts the raw imports of every source file of an application.
	ScanImports(appPath string) (domain.ImportMap, error)
}
