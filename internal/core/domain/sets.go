package domain

import (
	"cmp"
	"slices"
)

// Dedup returns the values with duplicates removed, keeping first-seen order.
func Dedup[T comparable](values []T) []T {
	seen := make(map[T]struct{}, len(values))
	out := make([]T, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Union concatenates the sets and deduplicates them in insertion order.
func Union[T comparable](sets ...[]T) []T {
	var all []T
	for _, s := range sets {
		all = append(all, s...)
	}
	return Dedup(all)
}

// Intersect returns the values of a that are also in b, in a's order.
func Intersect[T comparable](a, b []T) []T {
	in := toSet(b)
	out := make([]T, 0)
	for _, v := range Dedup(a) {
		if _, ok := in[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

// Difference returns the values of a that are not in b, in a's order.
func Difference[T comparable](a, b []T) []T {
	in := toSet(b)
	out := make([]T, 0)
	for _, v := range Dedup(a) {
		if _, ok := in[v]; !ok {
			out = append(out, v)
		}
	}
	return out
}

// Frequencies counts in how many of the sets each value appears.
// A value repeated inside one set is counted once for that set.
func Frequencies[T comparable](sets ...[]T) map[T]int {
	counts := make(map[T]int)
	for _, s := range sets {
		for _, v := range Dedup(s) {
			counts[v]++
		}
	}
	return counts
}

// FrequencyEntry is one line of a frequency report.
type FrequencyEntry struct {
	Name  string
	Count int
}

// SortedFrequencies flattens a frequency map, ordered by count descending then name ascending.
func SortedFrequencies(counts map[string]int) []FrequencyEntry {
	out := make([]FrequencyEntry, 0, len(counts))
	for name, c := range counts {
		out = append(out, FrequencyEntry{Name: name, Count: c})
	}
	slices.SortFunc(out, func(a, b FrequencyEntry) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}

func toSet[T comparable](values []T) map[T]struct{} {
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
