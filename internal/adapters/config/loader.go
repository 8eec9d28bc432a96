// Package config provides the corpus configuration loader for libscan.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/libscan/internal/core/domain"
	"go.trai.ch/libscan/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a libscan.yaml file.
type Loader struct {
	logger   ports.Logger
	validate *validator.Validate
}

// customValidations are the struct tags libscan adds to the validator.
var customValidations = map[string]validator.Func{
	"regexp": validateRegexp,
}

// NewLoader creates a Loader that reports its discovery through log.
func NewLoader(log ports.Logger) (*Loader, error) {
	v := validator.New()
	if err := registerValidations(v, customValidations); err != nil {
		return nil, err
	}
	return &Loader{logger: log, validate: v}, nil
}

func registerValidations(v *validator.Validate, fns map[string]validator.Func) error {
	for tag, fn := range fns {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to register validation"), "tag", tag)
		}
	}
	return nil
}

func validateRegexp(fl validator.FieldLevel) bool {
	_, err := regexp.Compile(fl.Field().String())
	return err == nil
}

// Load searches cwd and its parents for libscan.yaml. Relative paths in the file are
// resolved against the directory holding it. Without a file the default corpus layout
// is used, relative to cwd.
func (l *Loader) Load(cwd string) (*domain.Corpus, error) {
	path, found, err := findConfig(cwd)
	if err != nil {
		return nil, err
	}
	if !found {
		l.logger.Info(fmt.Sprintf("no %s found, using the default corpus layout", domain.ConfigFileName))
		return resolvePaths(domain.DefaultCorpus(), cwd), nil
	}

	return l.LoadFile(path)
}

// LoadFile reads, validates and converts one configuration file.
func (l *Loader) LoadFile(path string) (*domain.Corpus, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var file Libscanfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	if err := l.validate.Struct(&file); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigInvalid, describeValidation(err)), "path", path)
	}

	corpus, err := toCorpus(&file)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return resolvePaths(corpus, filepath.Dir(path)), nil
}

func findConfig(cwd string) (string, bool, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return "", false, zerr.Wrap(err, "failed to resolve working directory")
	}

	dir := absCwd
	for {
		candidate := filepath.Join(dir, domain.ConfigFileName)
		info, statErr := os.Stat(candidate)
		switch {
		case statErr == nil && !info.IsDir():
			return relativeTo(cwd, absCwd, candidate), true, nil
		case statErr != nil && !errors.Is(statErr, fs.ErrNotExist):
			return "", false, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, statErr.Error()), "path", candidate)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// relativeTo expresses candidate as a path under cwd so that corpus paths keep
// the form the checker reports use.
func relativeTo(cwd, absCwd, candidate string) string {
	rel, err := filepath.Rel(absCwd, candidate)
	if err != nil {
		return candidate
	}
	return filepath.Join(cwd, rel)
}

func toCorpus(file *Libscanfile) (*domain.Corpus, error) {
	policy, err := domain.ParseDepthPolicy(file.OnDepthExceeded)
	if err != nil {
		return nil, err
	}

	c := &domain.Corpus{
		AppsDir:         orDefault(file.AppsDir, domain.DefaultAppsDir),
		OutputDir:       orDefault(file.OutputDir, "."),
		StatsFile:       orDefault(file.StatsFile, domain.DefaultStatsFile),
		MaxDepth:        file.MaxDepth,
		OnDepthExceeded: policy,
		NativePatterns:  file.NativePatterns,
		Categories:      make([]domain.Category, 0, len(file.Categories)),
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = domain.DefaultMaxDepth
	}
	if c.NativePatterns == nil {
		c.NativePatterns = append([]string(nil), domain.DefaultNativePatterns...)
	}

	for _, dto := range file.Categories {
		cat := domain.Category{
			Name:     dto.Name,
			AppsList: orDefault(dto.Apps, dto.Name+"-apps.txt"),
			Imports:  dto.Imports,
			Unused:   dto.Unused,
			Libs:     make(map[domain.Role]string, len(dto.Libs)),
		}
		for name, listing := range dto.Libs {
			role, err := domain.ParseRole(name)
			if err != nil {
				return nil, zerr.With(err, "category", dto.Name)
			}
			cat.Libs[role] = listing
		}
		c.Categories = append(c.Categories, cat)
	}

	return c, nil
}

// resolvePaths anchors every relative path of the corpus at base.
func resolvePaths(c *domain.Corpus, base string) *domain.Corpus {
	c.AppsDir = anchor(base, c.AppsDir)
	c.OutputDir = anchor(base, c.OutputDir)
	c.StatsFile = anchor(base, c.StatsFile)
	for i := range c.Categories {
		cat := &c.Categories[i]
		cat.AppsList = anchor(base, cat.AppsList)
		cat.Imports = anchorAll(base, cat.Imports)
		cat.Unused = anchorAll(base, cat.Unused)
		for role, p := range cat.Libs {
			cat.Libs[role] = anchor(base, p)
		}
	}
	return c
}

func anchor(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

func anchorAll(base string, paths []string) []string {
	if paths == nil {
		return nil
	}
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = anchor(base, p)
	}
	return out
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed '%s=%s'", fe.Namespace(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s failed '%s'", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
