package stats

import (
	"regexp"

	"go.trai.ch/libscan/internal/core/domain"
	"go.trai.ch/zerr"
)

// NativeMatcher recognizes native library file names.
type NativeMatcher struct {
	patterns []*regexp.Regexp
}

// NewNativeMatcher compiles the patterns. Each pattern must capture the library name as group 1.
func NewNativeMatcher(patterns []string) (*NativeMatcher, error) {
	m := &NativeMatcher{patterns: make([]*regexp.Regexp, 0, len(patterns))}
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidNativePattern, err.Error()), "pattern", p)
		}
		if re.NumSubexp() < 1 {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidNativePattern, "pattern has no capture group"), "pattern", p)
		}
		m.patterns = append(m.patterns, re)
	}
	return m, nil
}

// Match returns the library name captured by the first matching pattern.
func (m *NativeMatcher) Match(name string) (string, bool) {
	for _, re := range m.patterns {
		if sub := re.FindStringSubmatch(name); sub != nil && sub[1] != "" {
			return sub[1], true
		}
	}
	return "", false
}
