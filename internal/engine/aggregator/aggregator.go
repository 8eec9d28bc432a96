// Package aggregator builds per-application records from raw and unused import maps.
package aggregator

import (
	"fmt"
	"strings"

	"go.trai.ch/libscan/internal/core/domain"
	"go.trai.ch/libscan/internal/core/ports"
	"go.trai.ch/libscan/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// Aggregator resolves the imports of one application at a time.
type Aggregator struct {
	substitutor *resolver.Substitutor
	logger      ports.Logger
}

// New creates an Aggregator.
func New(sub *resolver.Substitutor, log ports.Logger) *Aggregator {
	return &Aggregator{
		substitutor: sub,
		logger:      log,
	}
}

// Aggregate produces the resolved record of an application.
//
// Imports hold the top-level third-party packages reached from every source file.
// Unused holds the top-level packages reported unused somewhere in the application
// and imported nowhere in it; it is nil when nothing remains.
func (a *Aggregator) Aggregate(app *domain.Application) (domain.AppRecord, error) {
	rec := domain.AppRecord{App: app.Path}
	unusedRaw := app.Unused.Without(domain.PackageInitFile)

	if app.IsSingleModule() {
		rec.Imports = domain.TopLevelNames(flatten(app.RawImports))
		rec.Unused = prune(domain.TopLevelNames(flatten(unusedRaw)), rec.Imports)
		return rec, nil
	}

	index := domain.NewImportIndex(app.RawImports)

	imports, err := a.resolveAll(app.Path, app.RawImports, index)
	if err != nil {
		return domain.AppRecord{}, err
	}
	rec.Imports = domain.TopLevelNames(imports)

	unused, err := a.resolveAll(app.Path, unusedRaw, index)
	if err != nil {
		return domain.AppRecord{}, err
	}
	rec.Unused = prune(domain.TopLevelNames(unused), rec.Imports)

	return rec, nil
}

// resolveAll substitutes every import of every file in m, visiting files in lexicographic order.
func (a *Aggregator) resolveAll(appPath string, m domain.ImportMap, index *domain.ImportIndex) ([]string, error) {
	var libs []string
	for _, src := range m.SortedFiles() {
		prefix := domain.PrefixOf(src)
		for _, imp := range m[src] {
			res := a.substitutor.Substitute(prefix, imp, index)
			switch res.Status {
			case domain.DepthExceeded:
				return nil, zerr.With(zerr.With(res.Err, "app", appPath), "file", src)
			case domain.CycleTruncated:
				a.logger.Warn(cycleWarning(appPath, src, imp, res.Cycles))
			case domain.Resolved:
			}
			if len(res.Revisited) > 0 {
				a.logger.Info(fmt.Sprintf("%s reaches %s along more than one path", imp, strings.Join(res.Revisited, ", ")))
			}
			if res.FirstParty() {
				a.logger.Info(fmt.Sprintf("replacing %s with %v", imp, res.Libraries))
			}
			libs = append(libs, res.Libraries...)
		}
	}
	return domain.Dedup(libs), nil
}

// cycleWarning carries the location and the cut cycle paths as metadata.
func cycleWarning(appPath, src, imp string, cycles []string) error {
	err := zerr.Wrap(domain.ErrImportCycle, "expansion truncated")
	err = zerr.With(err, "app", appPath)
	err = zerr.With(err, "file", src)
	err = zerr.With(err, "import", imp)
	return zerr.With(err, "cycle", cycles)
}

func flatten(m domain.ImportMap) []string {
	var out []string
	for _, src := range m.SortedFiles() {
		out = append(out, m[src]...)
	}
	return out
}

// prune drops unused packages that are imported elsewhere in the application.
func prune(unused, imports []string) []string {
	out := domain.Difference(unused, imports)
	if len(out) == 0 {
		return nil
	}
	return out
}
