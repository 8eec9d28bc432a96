// Package stats computes cross-category library statistics.
package stats

import "go.trai.ch/libscan/internal/core/domain"

// Input is everything the statistics phase reads.
type Input struct {
	// Apps holds the application list of each category.
	Apps [][]string
	// Sets holds the curated library sets, one per category and role.
	Sets []domain.LibrarySet
	// Native recognizes native library names. Native calls are skipped when nil.
	Native *NativeMatcher
}

// DistinctUnion returns the distinct values of all sets in first-seen order.
func DistinctUnion(sets ...[]string) []string {
	return domain.Union(sets...)
}

// CommonAcrossRole returns the libraries of role found in two or more categories,
// with the number of categories using each.
func CommonAcrossRole(role domain.Role, sets []domain.LibrarySet) []domain.FrequencyEntry {
	counts := domain.Frequencies(librariesOf(role, sets)...)
	for name, c := range counts {
		if c < 2 {
			delete(counts, name)
		}
	}
	return domain.SortedFrequencies(counts)
}

// UniqueToCategory returns, for each category holding a set of role, the libraries
// no other category uses for that role. Categories keep their input order and
// libraries keep their set order.
func UniqueToCategory(role domain.Role, sets []domain.LibrarySet) []domain.CategoryLibraries {
	var out []domain.CategoryLibraries
	for i, s := range sets {
		if s.Role != role {
			continue
		}
		var others []string
		for j, o := range sets {
			if j != i && o.Role == role && o.Category != s.Category {
				others = append(others, o.Libraries...)
			}
		}
		out = append(out, domain.CategoryLibraries{
			Category:  s.Category,
			Libraries: domain.Difference(s.Libraries, others),
		})
	}
	return out
}

// NativeCalls counts the native libraries named across all sets.
// Each set contributes once per distinct library file it lists.
func NativeCalls(sets []domain.LibrarySet, m *NativeMatcher) []domain.FrequencyEntry {
	counts := make(map[string]int)
	for _, s := range sets {
		for _, lib := range domain.Dedup(s.Libraries) {
			if name, ok := m.Match(lib); ok {
				counts[name]++
			}
		}
	}
	return domain.SortedFrequencies(counts)
}

// Compute assembles the full statistics report.
func Compute(in Input) *domain.StatsReport {
	all := make([][]string, 0, len(in.Sets))
	for _, s := range in.Sets {
		all = append(all, s.Libraries)
	}

	report := &domain.StatsReport{
		Apps:      len(DistinctUnion(in.Apps...)),
		Libraries: len(DistinctUnion(all...)),
		Common:    make(map[domain.Role][]domain.FrequencyEntry, len(domain.Roles)),
		Unique:    make(map[domain.Role][]domain.CategoryLibraries, len(domain.Roles)),
	}
	for _, role := range domain.Roles {
		report.Common[role] = CommonAcrossRole(role, in.Sets)
		report.Unique[role] = UniqueToCategory(role, in.Sets)
	}
	if in.Native != nil {
		report.NativeCalls = NativeCalls(in.Sets, in.Native)
	}
	return report
}

func librariesOf(role domain.Role, sets []domain.LibrarySet) [][]string {
	byCategory := make(map[string][]string)
	var order []string
	for _, s := range sets {
		if s.Role != role {
			continue
		}
		if _, ok := byCategory[s.Category]; !ok {
			order = append(order, s.Category)
		}
		byCategory[s.Category] = append(byCategory[s.Category], s.Libraries...)
	}
	out := make([][]string, 0, len(order))
	for _, c := range order {
		out = append(out, byCategory[c])
	}
	return out
}
