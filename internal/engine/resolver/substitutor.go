// Package resolver implements first-party import substitution.
package resolver

import (
	"slices"
	"strings"

	"go.trai.ch/libscan/internal/core/domain"
	"go.trai.ch/zerr"
)

// Substitutor replaces first-party imports with the transitive imports of the files they refer to.
type Substitutor struct {
	maxDepth int
}

// NewSubstitutor creates a Substitutor whose expansion stack may hold at most maxDepth files.
// A non-positive maxDepth selects domain.DefaultMaxDepth.
func NewSubstitutor(maxDepth int) *Substitutor {
	if maxDepth <= 0 {
		maxDepth = domain.DefaultMaxDepth
	}
	return &Substitutor{maxDepth: maxDepth}
}

// MaxDepth returns the depth bound.
func (s *Substitutor) MaxDepth() int {
	return s.maxDepth
}

// frame is one first-party file being expanded.
type frame struct {
	key     string
	prefix  string
	imports []string
	next    int
}

// Substitute resolves one raw import found in a file under prefix.
//
// A name that matches no known first-party file is third-party and comes back unchanged.
// Otherwise the matched file's imports are expanded depth-first, in order, each resolved
// against the prefix of the file that imports it. A file is expanded at most once per call;
// re-entering a file still on the expansion stack is a cycle and that branch yields nothing.
// Reaching an already expanded file again is recorded in Revisited.
func (s *Substitutor) Substitute(prefix, name string, index *domain.ImportIndex) domain.Resolution {
	res := domain.Resolution{Import: name, Status: domain.Resolved}

	key, childPrefix, ok := match(prefix, name, index)
	if !ok {
		res.Libraries = []string{name}
		return res
	}

	// 0: unvisited, 1: on the expansion stack, 2: expanded
	state := map[string]int{key: 1}
	imports, _ := index.Imports(key)
	stack := []frame{{key: key, prefix: childPrefix, imports: imports}}
	res.Libraries = []string{}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.imports) {
			state[top.key] = 2
			stack = stack[:len(stack)-1]
			continue
		}

		imp := top.imports[top.next]
		top.next++
		k, cp, firstParty := match(top.prefix, imp, index)
		if !firstParty {
			res.Libraries = append(res.Libraries, imp)
			continue
		}

		switch state[k] {
		case 1:
			res.Status = domain.CycleTruncated
			res.Cycles = append(res.Cycles, cyclePath(stack, k))
			continue
		case 2:
			if !slices.Contains(res.Revisited, k) {
				res.Revisited = append(res.Revisited, k)
			}
			continue
		}

		if len(stack) >= s.maxDepth {
			res.Status = domain.DepthExceeded
			err := zerr.Wrap(domain.ErrDepthExceeded, "failed to substitute first-party import")
			err = zerr.With(err, "import", name)
			res.Err = zerr.With(err, "depth", len(stack)+1)
			return res
		}

		state[k] = 1
		childImports, _ := index.Imports(k)
		stack = append(stack, frame{key: k, prefix: cp, imports: childImports})
	}

	return res
}

// match finds the first-party file an import refers to.
// The exact module file takes priority over the supermodule file.
func match(prefix, name string, index *domain.ImportIndex) (key, childPrefix string, ok bool) {
	exact, super := domain.Candidates(prefix, name)
	switch {
	case index.Has(exact):
		return exact, domain.ChildPrefix(prefix, name, false), true
	case super != "" && index.Has(super):
		return super, domain.ChildPrefix(prefix, name, true), true
	default:
		return "", "", false
	}
}

// cyclePath renders the part of the expansion stack that loops back to key.
func cyclePath(stack []frame, key string) string {
	start := 0
	for i, f := range stack {
		if f.key == key {
			start = i
			break
		}
	}
	parts := make([]string, 0, len(stack)-start+1)
	for _, f := range stack[start:] {
		parts = append(parts, f.key)
	}
	parts = append(parts, key)
	return strings.Join(parts, " -> ")
}
