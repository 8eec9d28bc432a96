// Package app implements the application layer for libscan.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.trai.ch/libscan/internal/adapters/report" //nolint:depguard // Table rendering is presentation only
	"go.trai.ch/libscan/internal/core/domain"
	"go.trai.ch/libscan/internal/core/ports"
	"go.trai.ch/libscan/internal/engine/aggregator"
	"go.trai.ch/libscan/internal/engine/resolver"
	"go.trai.ch/libscan/internal/engine/stats"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	listings     ports.ListingStore
	sources      ports.SourceTree
	statsWriter  ports.StatsWriter
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	listings ports.ListingStore,
	sources ports.SourceTree,
	statsWriter ports.StatsWriter,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		listings:     listings,
		sources:      sources,
		statsWriter:  statsWriter,
		logger:       log,
	}
}

// Components contains the initialized components the CLI layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

// ScrapeOptions configures the Scrape method.
type ScrapeOptions struct {
	// Scan reads import statements from the sources instead of the checker reports.
	Scan bool
	// SkipOnDepth drops applications whose substitution exceeds the depth bound
	// instead of aborting the batch.
	SkipOnDepth bool
}

// Scrape resolves the imports of every application of the given categories and
// writes the per-category listings.
func (a *App) Scrape(ctx context.Context, categories []string, opts ScrapeOptions) error {
	// 1. Load the corpus
	corpus, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	// 2. Validate categories
	if len(categories) == 0 {
		return domain.ErrNoCategoriesSpecified
	}
	cats := make([]domain.Category, 0, len(categories))
	for _, name := range categories {
		cat, err := corpus.Category(name)
		if err != nil {
			return err
		}
		cats = append(cats, cat)
	}

	policy := corpus.OnDepthExceeded
	if opts.SkipOnDepth {
		policy = domain.DepthSkipApp
	}

	// 3. Resolve each category
	sc := &scraper{
		app:        a,
		corpus:     corpus,
		aggregator: aggregator.New(resolver.NewSubstitutor(corpus.MaxDepth), a.logger),
		detector:   aggregator.NewDetector(a.sources),
		policy:     policy,
		scan:       opts.Scan,
	}
	for _, cat := range cats {
		if err := sc.scrapeCategory(ctx, cat); err != nil {
			return zerr.With(err, "category", cat.Name)
		}
	}

	return nil
}

// StatsOptions configures the Stats method.
type StatsOptions struct {
	// Table prints a summary table after writing the report.
	Table bool
	// Out receives the table. It defaults to stdout.
	Out io.Writer
}

// Stats computes cross-category statistics from the curated library listings.
func (a *App) Stats(ctx context.Context, opts StatsOptions) error {
	corpus, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	matcher, err := stats.NewNativeMatcher(corpus.NativePatterns)
	if err != nil {
		return err
	}

	in := stats.Input{Native: matcher}
	for _, cat := range corpus.Categories {
		if err := ctx.Err(); err != nil {
			return err
		}

		apps, err := a.listings.ReadList(cat.AppsList)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to read application list"), "category", cat.Name)
		}
		in.Apps = append(in.Apps, apps)

		for _, role := range domain.Roles {
			path, ok := cat.Libs[role]
			if !ok {
				continue
			}
			libs, err := a.listings.ReadList(path)
			if err != nil {
				err = zerr.Wrap(err, "failed to read library list")
				return zerr.With(zerr.With(err, "category", cat.Name), "role", string(role))
			}
			in.Sets = append(in.Sets, domain.LibrarySet{Category: cat.Name, Role: role, Libraries: libs})
		}
	}

	rep := stats.Compute(in)
	if err := a.statsWriter.WriteStats(corpus.StatsFile, rep); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("wrote statistics for %d apps and %d libraries to %s",
		rep.Apps, rep.Libraries, corpus.StatsFile))

	if opts.Table {
		out := opts.Out
		if out == nil {
			out = os.Stdout
		}
		if err := report.RenderTable(out, rep); err != nil {
			return zerr.Wrap(err, "failed to render statistics table")
		}
	}

	return nil
}

// scraper carries the state of one Scrape invocation.
type scraper struct {
	app        *App
	corpus     *domain.Corpus
	aggregator *aggregator.Aggregator
	detector   *aggregator.Detector
	policy     domain.DepthPolicy
	scan       bool
}

func (s *scraper) scrapeCategory(ctx context.Context, cat domain.Category) error {
	log := s.app.logger

	apps, err := s.app.sources.ListApps(domain.CategoryAppsDir(s.corpus.AppsDir, cat.Name))
	if err != nil {
		return err
	}
	log.Info(fmt.Sprintf("scraping %d %s apps", len(apps), cat.Name))

	raw, unused, err := s.loadImports(cat, apps)
	if err != nil {
		return err
	}

	var imports, unusedRecs, native, hybrid []domain.Record
	for _, appPath := range apps {
		if err := ctx.Err(); err != nil {
			return err
		}

		application := domain.NewApplication(appPath, raw, unused)
		rec, err := s.aggregator.Aggregate(application)
		if err != nil {
			if errors.Is(err, domain.ErrDepthExceeded) && s.policy == domain.DepthSkipApp {
				log.Error(zerr.Wrap(err, "skipping application"))
				continue
			}
			return err
		}

		findings, err := s.detector.Detect(application)
		if err != nil {
			return err
		}

		imports = append(imports, domain.Record{Key: rec.App, Values: rec.Imports})
		if rec.HasUnused() {
			unusedRecs = append(unusedRecs, domain.Record{Key: rec.App, Values: rec.Unused})
		}
		if findings.CallsNative != nil {
			native = append(native, domain.Record{Key: rec.App, Values: findings.CallsNative})
		}
		if findings.Hybrid != nil {
			hybrid = append(hybrid, domain.Record{Key: rec.App, Values: findings.Hybrid})
		}
	}

	outputs := []struct {
		suffix  string
		records []domain.Record
	}{
		{domain.AppImportsSuffix, imports},
		{domain.AppUnusedSuffix, unusedRecs},
		{domain.CallNativeSuffix, native},
		{domain.HybridSuffix, hybrid},
	}
	for _, o := range outputs {
		path := domain.OutputPath(s.corpus.OutputDir, cat.Name, o.suffix)
		if err := s.app.listings.WriteMap(path, o.records); err != nil {
			return err
		}
	}

	log.Info(fmt.Sprintf("wrote %d %s app records", len(imports), cat.Name))
	return nil
}

// loadImports returns the raw and unused import maps of a category: merged checker
// reports when configured, otherwise a scan of the application sources.
func (s *scraper) loadImports(cat domain.Category, apps []string) (raw, unused domain.ImportMap, err error) {
	if s.scan || len(cat.Imports) == 0 {
		raw = make(domain.ImportMap)
		for _, appPath := range apps {
			m, err := s.app.sources.ScanImports(appPath)
			if err != nil {
				return nil, nil, zerr.With(err, "app", appPath)
			}
			raw = raw.Merge(m)
		}
		return raw, domain.ImportMap{}, nil
	}

	raw, err = s.readMerged(cat.Imports)
	if err != nil {
		return nil, nil, err
	}
	unused, err = s.readMerged(cat.Unused)
	if err != nil {
		return nil, nil, err
	}
	return raw, unused, nil
}

// readMerged reads map listings in order; later listings override earlier keys.
func (s *scraper) readMerged(paths []string) (domain.ImportMap, error) {
	merged := domain.ImportMap{}
	for _, p := range paths {
		m, err := s.app.listings.ReadMap(p)
		if err != nil {
			return nil, err
		}
		merged = merged.Merge(m)
	}
	return merged, nil
}
