package domain

import "go.trai.ch/zerr"

var (
	// ErrDepthExceeded is returned when a first-party substitution chain grows past the configured depth bound.
	ErrDepthExceeded = zerr.New("import resolution depth exceeded")

	// ErrImportCycle marks a substitution branch that was cut short because it re-entered a module on the chain.
	ErrImportCycle = zerr.New("import cycle detected")

	// ErrNoCategoriesSpecified is returned when the scrape command is invoked without categories.
	ErrNoCategoriesSpecified = zerr.New("no categories specified")

	// ErrCategoryNotFound is returned when a requested category is not defined in the configuration.
	ErrCategoryNotFound = zerr.New("category not found")

	// ErrUnknownRole is returned when a library listing is declared for a role other than sens, proc or net.
	ErrUnknownRole = zerr.New("unknown library role, expected 'sens', 'proc' or 'net'")

	// ErrInvalidDepthPolicy is returned when the depth policy is neither 'abort' nor 'skip-app'.
	ErrInvalidDepthPolicy = zerr.New("invalid depth policy, expected 'abort' or 'skip-app'")

	// ErrInvalidNativePattern is returned when a native library pattern does not compile.
	ErrInvalidNativePattern = zerr.New("invalid native library pattern")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file fails validation.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrListingReadFailed is returned when a flat-text listing cannot be read.
	ErrListingReadFailed = zerr.New("failed to read listing")

	// ErrListingMalformed is returned when a map listing line has no key separator.
	ErrListingMalformed = zerr.New("malformed listing line")

	// ErrListingWriteFailed is returned when a flat-text listing cannot be written.
	ErrListingWriteFailed = zerr.New("failed to write listing")

	// ErrAppsListFailed is returned when the applications of a category cannot be listed.
	ErrAppsListFailed = zerr.New("failed to list applications")

	// ErrSourceReadFailed is returned when an application source file cannot be read.
	ErrSourceReadFailed = zerr.New("failed to read source file")

	// ErrReportWriteFailed is returned when the statistics report cannot be written.
	ErrReportWriteFailed = zerr.New("failed to write statistics report")
)
