// Package listing implements flat-text persistence of import maps and lists.
package listing

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/libscan/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	keySep   = ":"
	valueSep = ", "
)

// Store implements ports.ListingStore using line-oriented text files.
type Store struct{}

// NewStore creates a new listing Store.
func NewStore() *Store {
	return &Store{}
}

// ReadMap parses a map listing. Each non-blank line is "key: v1, v2, v3";
// a bare "key:" carries no values. A repeated key overrides the earlier line.
func (s *Store) ReadMap(path string) (domain.ImportMap, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	m := make(domain.ImportMap, len(lines))
	for i, line := range lines {
		if line == "" {
			continue
		}
		key, rest, ok := strings.Cut(line, keySep+" ")
		if !ok {
			if !strings.HasSuffix(line, keySep) {
				err := zerr.Wrap(domain.ErrListingMalformed, "missing ': ' separator")
				return nil, zerr.With(zerr.With(err, "path", path), "line", i+1)
			}
			key, rest = strings.TrimSuffix(line, keySep), ""
		}
		m[strings.TrimSpace(key)] = splitValues(rest)
	}
	return m, nil
}

// ReadList parses a list listing with one value per line.
func (s *Store) ReadList(path string) ([]string, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			out = append(out, line)
		}
	}
	return out, nil
}

// WriteMap writes records in order, creating parent directories as needed.
func (s *Store) WriteMap(path string, records []domain.Record) error {
	var buf bytes.Buffer
	for _, r := range records {
		buf.WriteString(r.Key)
		buf.WriteString(keySep)
		if len(r.Values) > 0 {
			buf.WriteString(" ")
			buf.WriteString(strings.Join(r.Values, valueSep))
		}
		buf.WriteString("\n")
	}

	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrListingWriteFailed, err.Error()), "path", path)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(path, buf.Bytes(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrListingWriteFailed, err.Error()), "path", path)
	}
	return nil
}

// readLines returns the trimmed lines of a file.
func readLines(path string) ([]string, error) {
	//nolint:gosec // Path is provided by the corpus configuration
	f, err := os.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrListingReadFailed, err.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrListingReadFailed, err.Error()), "path", path)
	}
	return lines, nil
}

func splitValues(s string) []string {
	out := []string{}
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
