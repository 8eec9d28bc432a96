package domain

import "go.trai.ch/zerr"

// DepthPolicy decides what happens when a substitution chain exceeds the depth bound.
type DepthPolicy string

const (
	// DepthAbort stops the whole batch.
	DepthAbort DepthPolicy = "abort"
	// DepthSkipApp drops only the offending application.
	DepthSkipApp DepthPolicy = "skip-app"
)

// ParseDepthPolicy converts a policy name into a DepthPolicy. The empty name selects DepthAbort.
func ParseDepthPolicy(s string) (DepthPolicy, error) {
	switch DepthPolicy(s) {
	case "", DepthAbort:
		return DepthAbort, nil
	case DepthSkipApp:
		return DepthSkipApp, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidDepthPolicy, "invalid depth policy"), "policy", s)
	}
}

// Category describes one category of applications and where its listings live.
type Category struct {
	Name string
	// AppsList is the listing of application identifiers used for corpus-wide counts.
	AppsList string
	// Imports are checker reports of raw imports, merged in order.
	Imports []string
	// Unused are checker reports of unused imports, merged in order.
	Unused []string
	// Libs maps each role to the listing of curated third-party libraries.
	Libs map[Role]string
}

// Corpus is the analyzed corpus definition loaded from configuration.
type Corpus struct {
	AppsDir         string
	OutputDir       string
	StatsFile       string
	MaxDepth        int
	OnDepthExceeded DepthPolicy
	NativePatterns  []string
	Categories      []Category
}

// Category returns the category with the given name.
func (c *Corpus) Category(name string) (Category, error) {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat, nil
		}
	}
	return Category{}, zerr.With(zerr.Wrap(ErrCategoryNotFound, "unknown category"), "category", name)
}

// DefaultNativePatterns match shared-library file names and capture the library name.
var DefaultNativePatterns = []string{
	`^lib(.+?)\.so(\.\d+)*$`,
	`^(.+)\.dll$`,
	`^lib(.+)\.dylib$`,
}

// DefaultCorpus returns the corpus layout used when no configuration file exists:
// the visual, audio and env categories with their conventional listing names.
func DefaultCorpus() *Corpus {
	names := []string{"visual", "audio", "env"}
	cats := make([]Category, 0, len(names))
	for _, n := range names {
		cats = append(cats, Category{
			Name:     n,
			AppsList: n + "-apps.txt",
			Imports:  []string{n + "-flakes-imports.txt", n + "-flakes-imports-py2.txt"},
			Unused:   []string{n + "-flakes-unused.txt", n + "-flakes-unused-py2.txt"},
			Libs: map[Role]string{
				RoleSensor:     n + "-sensor-libs.txt",
				RoleProcessing: n + "-proc-libs.txt",
				RoleNetworking: n + "-net-libs.txt",
			},
		})
	}
	return &Corpus{
		AppsDir:         DefaultAppsDir,
		OutputDir:       ".",
		StatsFile:       DefaultStatsFile,
		MaxDepth:        DefaultMaxDepth,
		OnDepthExceeded: DepthAbort,
		NativePatterns:  append([]string(nil), DefaultNativePatterns...),
		Categories:      cats,
	}
}
