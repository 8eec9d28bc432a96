package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/libscan/internal/core/domain"
)

func TestDedup(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, domain.Dedup([]string{"b", "a", "b", "c", "a"}))
	assert.Empty(t, domain.Dedup[string](nil))
}

func TestIntersect(t *testing.T) {
	got := domain.Intersect([]string{"numpy", "cv2", "numpy", "flask"}, []string{"flask", "numpy"})
	assert.Equal(t, []string{"numpy", "flask"}, got)
}

func TestDifference(t *testing.T) {
	got := domain.Difference([]string{"os", "yaml", "json", "yaml"}, []string{"os", "json"})
	assert.Equal(t, []string{"yaml"}, got)
	assert.Empty(t, domain.Difference([]string{"os"}, []string{"os"}))
}

func TestFrequencies(t *testing.T) {
	got := domain.Frequencies([]string{"a", "a", "b"}, []string{"a"}, []string{"c", "b"})
	assert.Equal(t, map[string]int{"a": 2, "b": 2, "c": 1}, got)
}

func TestSortedFrequencies(t *testing.T) {
	got := domain.SortedFrequencies(map[string]int{"zeta": 2, "alpha": 2, "mid": 3, "low": 1})
	assert.Equal(t, []domain.FrequencyEntry{
		{Name: "mid", Count: 3},
		{Name: "alpha", Count: 2},
		{Name: "zeta", Count: 2},
		{Name: "low", Count: 1},
	}, got)
}
