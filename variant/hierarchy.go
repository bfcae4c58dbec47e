// SPDX-License-Identifier: MIT
//
// File: hierarchy.go
// Role: Per-category subtype relation over axis values, closed transitively.
// Determinism:
//   - Ancestors/Values/Categories return sorted slices.
// Concurrency:
//   - Immutable after NewHierarchy; safe for concurrent readers without locks.

package variant

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	set "github.com/hashicorp/go-set/v2"

	"github.com/katalvlaran/reductions/core"
	"github.com/katalvlaran/reductions/dfs"
)

var (
	// ErrConflictingParents indicates a value was registered twice with different parents.
	ErrConflictingParents = errors.New("variant: conflicting parent declarations")

	// ErrHierarchyCycle indicates parent declarations form a cycle.
	ErrHierarchyCycle = errors.New("variant: cycle in parent declarations")

	// ErrEmptyValue indicates an empty category or value in a TypeEntry.
	ErrEmptyValue = errors.New("variant: empty category or value")
)

// TypeEntry declares one axis value and its direct parents (supertypes).
type TypeEntry struct {
	Category string
	Value    string
	Parents  []string
}

// CycleError reports the values of one category caught in a parent cycle.
type CycleError struct {
	Category string
	// Values lists every value that is its own ancestor, sorted.
	Values []string
	// Cycles lists the canonical closed cycles, e.g. [[A B A]].
	Cycles [][]string
}

func (e *CycleError) Error() string {
	parts := make([]string, len(e.Cycles))
	for i, c := range e.Cycles {
		parts[i] = strings.Join(c, " -> ")
	}

	return fmt.Sprintf("variant: cycle in %q parent declarations among %v: %s",
		e.Category, e.Values, strings.Join(parts, "; "))
}

// Is matches ErrHierarchyCycle.
func (e *CycleError) Is(target error) bool { return target == ErrHierarchyCycle }

// axis holds one category: declared parents and the memoized closure.
type axis struct {
	parents   map[string][]string // value → sorted distinct direct parents
	explicit  map[string]bool     // value was declared, not just referenced
	ancestors map[string]*set.Set[string]
}

// Hierarchy is the closed subtype relation of every registered category.
type Hierarchy struct {
	axes map[string]*axis
}

// NewHierarchy registers every entry in order, then computes the closure.
//
// Registration is idempotent for identical facts. Re-registering a value with
// different parents is ErrConflictingParents. Parents that are referenced but
// never declared become implicit roots; declaring them later is not a conflict.
//
// Errors: ErrEmptyValue, ErrConflictingParents, *CycleError (ErrHierarchyCycle).
func NewHierarchy(entries ...TypeEntry) (*Hierarchy, error) {
	h := &Hierarchy{axes: make(map[string]*axis)}
	for _, e := range entries {
		if err := h.register(e); err != nil {
			return nil, err
		}
	}
	for _, c := range h.Categories() {
		if err := h.axes[c].close(c); err != nil {
			return nil, err
		}
	}

	return h, nil
}

// MustHierarchy is NewHierarchy that panics on error.
func MustHierarchy(entries ...TypeEntry) *Hierarchy {
	h, err := NewHierarchy(entries...)
	if err != nil {
		panic(err)
	}

	return h
}

func (h *Hierarchy) register(e TypeEntry) error {
	if e.Category == "" || e.Value == "" {
		return fmt.Errorf("%w: %+v", ErrEmptyValue, e)
	}
	ax, ok := h.axes[e.Category]
	if !ok {
		ax = &axis{parents: make(map[string][]string), explicit: make(map[string]bool)}
		h.axes[e.Category] = ax
	}

	parents := make([]string, 0, len(e.Parents))
	for _, p := range e.Parents {
		if p == "" {
			return fmt.Errorf("%w: empty parent of %s/%s", ErrEmptyValue, e.Category, e.Value)
		}
		parents = append(parents, p)
	}
	sort.Strings(parents)
	parents = slices.Compact(parents)

	if ax.explicit[e.Value] {
		if !slices.Equal(ax.parents[e.Value], parents) {
			return fmt.Errorf("%w: %s/%s declared with parents %v and %v",
				ErrConflictingParents, e.Category, e.Value, ax.parents[e.Value], parents)
		}

		return nil
	}
	ax.explicit[e.Value] = true
	ax.parents[e.Value] = parents
	for _, p := range parents {
		if _, known := ax.parents[p]; !known {
			ax.parents[p] = nil
		}
	}

	return nil
}

// close computes ancestors by fixed-point iteration over the parent edges.
//
// Each round unions every value's ancestor set with its ancestors' sets.
// The sets only grow and are bounded, so the iteration stabilizes within
// |values|+1 rounds even in the presence of a cycle; cycles are then the
// values that ended up in their own ancestor set.
func (ax *axis) close(category string) error {
	values := sortedKeys(ax.parents)
	ax.ancestors = make(map[string]*set.Set[string], len(values))
	for _, v := range values {
		ax.ancestors[v] = set.From(ax.parents[v])
	}

	stable := false
	for round := 0; round <= len(values) && !stable; round++ {
		stable = true
		for _, v := range values {
			anc := ax.ancestors[v]
			for _, a := range anc.Slice() {
				if anc.InsertSet(ax.ancestors[a]) {
					stable = false
				}
			}
		}
	}

	var looped []string
	for _, v := range values {
		if ax.ancestors[v].Contains(v) {
			looped = append(looped, v)
		}
	}
	if !stable || len(looped) > 0 {
		return &CycleError{Category: category, Values: looped, Cycles: ax.cycles()}
	}

	return nil
}

// cycles enumerates the parent cycles for error reporting.
func (ax *axis) cycles() [][]string {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	for _, v := range sortedKeys(ax.parents) {
		_ = g.AddVertex(v)
		for _, p := range ax.parents[v] {
			_, _ = g.AddEdge(v, p)
		}
	}
	_, cycles, _ := dfs.DetectCycles(g)

	return cycles
}

// IsSubtype reports a == b or b ∈ ancestors(a) within category.
// Unknown values are only subtypes of themselves.
func (h *Hierarchy) IsSubtype(category, a, b string) bool {
	if a == b {
		return true
	}
	ax, ok := h.axes[category]
	if !ok {
		return false
	}
	anc, ok := ax.ancestors[a]

	return ok && anc.Contains(b)
}

// Ancestors returns every strict supertype of value, sorted.
func (h *Hierarchy) Ancestors(category, value string) []string {
	ax, ok := h.axes[category]
	if !ok {
		return nil
	}
	anc, ok := ax.ancestors[value]
	if !ok || anc.Size() == 0 {
		return nil
	}
	out := anc.Slice()
	sort.Strings(out)

	return out
}

// Parents returns the declared direct parents of value.
func (h *Hierarchy) Parents(category, value string) []string {
	ax, ok := h.axes[category]
	if !ok {
		return nil
	}

	return slices.Clone(ax.parents[value])
}

// Categories returns every registered category, sorted.
func (h *Hierarchy) Categories() []string { return sortedKeys(h.axes) }

// Values returns every value known in category (declared or implicit roots), sorted.
func (h *Hierarchy) Values(category string) []string {
	ax, ok := h.axes[category]
	if !ok {
		return nil
	}

	return sortedKeys(ax.parents)
}

// VariantIsSubtype reports whether a can be used wherever b is expected:
// both declare the same axes and every axis of a is subtype-or-equal of b's.
func (h *Hierarchy) VariantIsSubtype(a, b Variant) bool {
	if !a.sameAxes(b) {
		return false
	}
	for c, av := range a {
		if !h.IsSubtype(c, av, b[c]) {
			return false
		}
	}

	return true
}

// CommonSubtype reports whether some value is subtype-or-equal of both a and b.
func (h *Hierarchy) CommonSubtype(category, a, b string) bool {
	if h.IsSubtype(category, a, b) || h.IsSubtype(category, b, a) {
		return true
	}
	ax, ok := h.axes[category]
	if !ok {
		return false
	}
	for _, anc := range ax.ancestors {
		if anc.Contains(a) && anc.Contains(b) {
			return true
		}
	}

	return false
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
