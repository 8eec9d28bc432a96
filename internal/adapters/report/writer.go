// Package report renders statistics reports to text files and terminal tables.
package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/libscan/internal/core/domain"
	"go.trai.ch/zerr"
)

// Writer implements ports.StatsWriter producing the flat-text stats file.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteStats replaces the file at path with the rendered report.
func (w *Writer) WriteStats(path string, report *domain.StatsReport) error {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrReportWriteFailed, err.Error()), "path", path)
	}

	//nolint:gosec // Path is cleaned and provided by the corpus configuration
	if err := os.WriteFile(path, Format(report), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrReportWriteFailed, err.Error()), "path", path)
	}
	return nil
}

// Format renders the report as "label: N" lines. Frequency entries follow their
// label as indented "name: count" lines and unique libraries as indented names.
func Format(report *domain.StatsReport) []byte {
	var buf bytes.Buffer

	writeVal(&buf, "apps", report.Apps)
	writeVal(&buf, "libs", report.Libraries)

	for _, role := range domain.Roles {
		common := report.Common[role]
		writeVal(&buf, "common "+role.Label()+" libs", len(common))
		writeFreq(&buf, common)
	}

	for _, role := range domain.Roles {
		for _, u := range report.Unique[role] {
			writeVal(&buf, u.Category+"-only "+role.Label()+" libs", len(u.Libraries))
			for _, lib := range u.Libraries {
				fmt.Fprintf(&buf, "  %s\n", lib)
			}
		}
	}

	writeVal(&buf, "native calls", len(report.NativeCalls))
	writeFreq(&buf, report.NativeCalls)

	return buf.Bytes()
}

func writeVal(buf *bytes.Buffer, label string, n int) {
	fmt.Fprintf(buf, "%s: %d\n", label, n)
}

func writeFreq(buf *bytes.Buffer, entries []domain.FrequencyEntry) {
	for _, e := range entries {
		fmt.Fprintf(buf, "  %s: %d\n", e.Name, e.Count)
	}
}
