package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the corpus configuration file.
	ConfigFileName = "libscan.yaml"

	// DefaultAppsDir is the directory holding one sub-directory of applications per category.
	DefaultAppsDir = "apps"

	// DefaultStatsFile is the name of the aggregate statistics report.
	DefaultStatsFile = "stats.txt"

	// DefaultMaxDepth bounds the first-party substitution stack.
	DefaultMaxDepth = 512

	// SourceExt is the extension of analyzed source files.
	SourceExt = ".py"

	// PackageInitFile is the package initializer whose unused imports are re-exports.
	PackageInitFile = "__init__.py"

	// AppImportsSuffix names the per-category resolved imports listing.
	AppImportsSuffix = "-app-imports.txt"

	// AppUnusedSuffix names the per-category unused imports listing.
	AppUnusedSuffix = "-app-unused.txt"

	// CallNativeSuffix names the per-category native process call listing.
	CallNativeSuffix = "-call-native.txt"

	// HybridSuffix names the per-category foreign function interface listing.
	HybridSuffix = "-hybrid-apps.txt"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// CategoryAppsDir returns the directory holding the applications of a category.
func CategoryAppsDir(appsDir, category string) string {
	return filepath.Join(appsDir, category)
}

// OutputPath returns the path of a per-category output listing.
// It joins the output directory with the category name and the given suffix.
func OutputPath(outputDir, category, suffix string) string {
	return filepath.Join(outputDir, category+suffix)
}
