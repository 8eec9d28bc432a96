package pysource

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// skipDirs are directories that never hold application sources.
var skipDirs = map[string]bool{
	".git":        true,
	"__pycache__": true,
}

// walkSources yields every source file under root, skipping VCS, cache and hidden directories.
// A root that is itself a source file yields only that file.
func walkSources(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && (skipDirs[d.Name()] || strings.HasPrefix(d.Name(), ".")) {
					return filepath.SkipDir
				}
				return nil
			}

			if filepath.Ext(path) != sourceExt {
				return nil
			}

			if !yield(filepath.ToSlash(path), nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}
