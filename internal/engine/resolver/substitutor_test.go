package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/libscan/internal/core/domain"
	"go.trai.ch/libscan/internal/engine/resolver"
	"go.trai.ch/zerr"
)

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name        string
		index       domain.ImportMap
		prefix      string
		imp         string
		wantLibs    []string
		wantStatus  domain.ResolutionStatus
		wantCycles  []string
		wantRevisit []string
	}{
		{
			name:       "third-party import passes through",
			index:      domain.ImportMap{"app/main.py": {"requests"}},
			prefix:     "app",
			imp:        "requests",
			wantLibs:   []string{"requests"},
			wantStatus: domain.Resolved,
		},
		{
			name:       "dotted third-party import passes through",
			index:      domain.ImportMap{"app/main.py": {"os.path"}},
			prefix:     "app",
			imp:        "os.path",
			wantLibs:   []string{"os.path"},
			wantStatus: domain.Resolved,
		},
		{
			name: "transitive chain A->B->C",
			index: domain.ImportMap{
				"app/a.py": {"b"},
				"app/b.py": {"c"},
				"app/c.py": {"requests"},
			},
			prefix:     "app",
			imp:        "a",
			wantLibs:   []string{"requests"},
			wantStatus: domain.Resolved,
		},
		{
			name: "two module cycle is cut",
			index: domain.ImportMap{
				"app/a.py": {"b", "numpy"},
				"app/b.py": {"a", "requests"},
			},
			prefix:     "app",
			imp:        "a",
			wantLibs:   []string{"requests", "numpy"},
			wantStatus: domain.CycleTruncated,
			wantCycles: []string{"app/a.py -> app/b.py -> app/a.py"},
		},
		{
			name:       "self import",
			index:      domain.ImportMap{"app/a.py": {"a"}},
			prefix:     "app",
			imp:        "a",
			wantLibs:   []string{},
			wantStatus: domain.CycleTruncated,
			wantCycles: []string{"app/a.py -> app/a.py"},
		},
		{
			name: "diamond expands shared module once without a cycle",
			index: domain.ImportMap{
				"app/a.py": {"b", "c"},
				"app/b.py": {"d"},
				"app/c.py": {"d", "flask"},
				"app/d.py": {"requests"},
			},
			prefix:      "app",
			imp:         "a",
			wantLibs:    []string{"requests", "flask"},
			wantStatus:  domain.Resolved,
			wantRevisit: []string{"app/d.py"},
		},
		{
			name:       "supermodule match",
			index:      domain.ImportMap{"app/pkg.py": {"yaml"}},
			prefix:     "app",
			imp:        "pkg.thing",
			wantLibs:   []string{"yaml"},
			wantStatus: domain.Resolved,
		},
		{
			name: "exact match wins over supermodule",
			index: domain.ImportMap{
				"app/pkg.py":     {"yaml"},
				"app/pkg/mod.py": {"serial"},
			},
			prefix:     "app",
			imp:        "pkg.mod",
			wantLibs:   []string{"serial"},
			wantStatus: domain.Resolved,
		},
		{
			name: "dotted exact match resolves children inside the package",
			index: domain.ImportMap{
				"app/pkg/mod.py":    {"helper", "json"},
				"app/pkg/helper.py": {"numpy"},
				"app/helper.py":     {"wrong"},
			},
			prefix:     "app",
			imp:        "pkg.mod",
			wantLibs:   []string{"numpy", "json"},
			wantStatus: domain.Resolved,
		},
		{
			name: "supermodule match resolves children at the same prefix",
			index: domain.ImportMap{
				"app/pkg.py":    {"helper"},
				"app/helper.py": {"smbus"},
			},
			prefix:     "app",
			imp:        "pkg.sub",
			wantLibs:   []string{"smbus"},
			wantStatus: domain.Resolved,
		},
		{
			name: "parent-relative import resolves above the package",
			index: domain.ImportMap{
				"app/pkg/mod.py": {"..shared", "..lib.io"},
				"app/shared.py":  {"numpy"},
				"app/lib/io.py":  {"serial"},
			},
			prefix:     "app",
			imp:        "pkg.mod",
			wantLibs:   []string{"numpy", "serial"},
			wantStatus: domain.Resolved,
		},
		{
			name:       "first-party module without imports contributes nothing",
			index:      domain.ImportMap{"app/consts.py": {}},
			prefix:     "app",
			imp:        "consts",
			wantLibs:   []string{},
			wantStatus: domain.Resolved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := resolver.NewSubstitutor(0)
			res := s.Substitute(tt.prefix, tt.imp, domain.NewImportIndex(tt.index))

			assert.Equal(t, tt.imp, res.Import)
			assert.Equal(t, tt.wantLibs, res.Libraries)
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.wantCycles, res.Cycles)
			assert.Equal(t, tt.wantRevisit, res.Revisited)
			assert.NoError(t, res.Err)
		})
	}
}

func TestSubstitute_DepthExceeded(t *testing.T) {
	index := domain.NewImportIndex(domain.ImportMap{
		"app/a.py": {"b"},
		"app/b.py": {"c"},
		"app/c.py": {"requests"},
	})

	s := resolver.NewSubstitutor(2)
	res := s.Substitute("app", "a", index)

	assert.Equal(t, domain.DepthExceeded, res.Status)
	require.Error(t, res.Err)
	require.ErrorIs(t, res.Err, domain.ErrDepthExceeded)

	zErr, ok := res.Err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", res.Err)
	meta := zErr.Metadata()
	assert.Equal(t, "a", meta["import"])
	assert.Equal(t, 3, meta["depth"])
}

func TestSubstitute_DepthBoundAllowsExactDepth(t *testing.T) {
	index := domain.NewImportIndex(domain.ImportMap{
		"app/a.py": {"b"},
		"app/b.py": {"c"},
		"app/c.py": {"requests"},
	})

	res := resolver.NewSubstitutor(3).Substitute("app", "a", index)

	assert.Equal(t, domain.Resolved, res.Status)
	assert.Equal(t, []string{"requests"}, res.Libraries)
}

func TestSubstitute_IndexIsNotMutated(t *testing.T) {
	raw := domain.ImportMap{
		"app/a.py": {"b", "numpy"},
		"app/b.py": {"a"},
	}
	index := domain.NewImportIndex(raw)
	s := resolver.NewSubstitutor(0)

	first := s.Substitute("app", "a", index)
	second := s.Substitute("app", "a", index)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"b", "numpy"}, raw["app/a.py"])
	assert.Equal(t, 2, index.Len())
}

func TestNewSubstitutor_DefaultDepth(t *testing.T) {
	assert.Equal(t, domain.DefaultMaxDepth, resolver.NewSubstitutor(0).MaxDepth())
	assert.Equal(t, domain.DefaultMaxDepth, resolver.NewSubstitutor(-3).MaxDepth())
	assert.Equal(t, 7, resolver.NewSubstitutor(7).MaxDepth())
}
