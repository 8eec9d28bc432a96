package domain

import "strings"

// VendorTopLevel is a vendor package whose dotted name is its distribution name.
const VendorTopLevel = "RPi.GPIO"

// ExactCandidate returns the first-party file an import would refer to as a module.
// Only the first two dotted components are considered: "a" maps to prefix/a.py and
// "a.b" (or deeper) maps to prefix/a/b.py.
func ExactCandidate(prefix, name string) string {
	prefix, name = climb(prefix, name)
	parts := strings.Split(name, ".")
	if len(parts) == 1 {
		return prefix + "/" + name + SourceExt
	}
	return prefix + "/" + parts[0] + "/" + parts[1] + SourceExt
}

// SuperCandidate returns the first-party file of the import's top-level component,
// or "" when the name has no dot and therefore no supermodule.
func SuperCandidate(prefix, name string) string {
	prefix, name = climb(prefix, name)
	head, _, dotted := strings.Cut(name, ".")
	if !dotted {
		return ""
	}
	return prefix + "/" + head + SourceExt
}

// climb resolves a relative name. Each leading dot after the first moves the
// prefix up one directory.
func climb(prefix, name string) (string, string) {
	rest := strings.TrimLeft(name, ".")
	for range len(name) - len(rest) - 1 {
		prefix = PrefixOf(prefix)
	}
	return prefix, rest
}

// Candidates returns the exact and supermodule candidates for an import.
func Candidates(prefix, name string) (exact, super string) {
	return ExactCandidate(prefix, name), SuperCandidate(prefix, name)
}

// ChildPrefix returns the prefix used to resolve the imports of a matched first-party file.
// An exact match of a dotted name descends into the package directory; every other
// match keeps the current prefix.
func ChildPrefix(prefix, name string, viaSuper bool) string {
	prefix, name = climb(prefix, name)
	if viaSuper {
		return prefix
	}
	head, _, dotted := strings.Cut(name, ".")
	if !dotted {
		return prefix
	}
	return prefix + "/" + head
}

// TopLevelOf returns the top-level package of an import name.
func TopLevelOf(name string) string {
	name = strings.TrimLeft(name, ".")
	if name == VendorTopLevel {
		return name
	}
	head, _, _ := strings.Cut(name, ".")
	return head
}

// TopLevelNames reduces import names to their deduplicated top-level packages.
func TopLevelNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, TopLevelOf(n))
	}
	return Dedup(out)
}

// PrefixOf returns the directory containing a source file.
func PrefixOf(path string) string {
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return ""
	}
	return path[:idx]
}
