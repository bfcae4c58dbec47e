// SPDX-License-Identifier: MIT
//
// File: catalog.go
// Role: Catalog construction: provider collection, hierarchy closure, rule
//       parsing and indexing, ambiguity detection.
// Determinism:
//   - Rules are kept in a B-tree keyed by (source, target, source key, target key).
//   - Providers are read in the order given; the first failing fact aborts.

package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/btree"

	"github.com/katalvlaran/reductions/overhead"
	"github.com/katalvlaran/reductions/variant"
)

// Sentinel errors for catalog construction.
var (
	// ErrEmptyName indicates a rule, variant or cast with an empty problem name.
	ErrEmptyName = errors.New("catalog: empty problem name")

	// ErrDuplicateRule indicates two rules with the same (source, target) name and variant.
	ErrDuplicateRule = errors.New("catalog: duplicate reduction rule")

	// ErrDuplicateCast indicates two casts registered for one problem name.
	ErrDuplicateCast = errors.New("catalog: duplicate cast")

	// ErrMalformedOverhead indicates an overhead formula that does not parse.
	ErrMalformedOverhead = errors.New("catalog: malformed overhead")

	// ErrOverheadFieldMismatch indicates an overhead referencing size fields
	// the source problem does not declare.
	ErrOverheadFieldMismatch = overhead.ErrFieldMismatch

	// ErrAmbiguousRules indicates, in strict mode, two rules that could both be
	// the most specific match for one caller variant.
	ErrAmbiguousRules = errors.New("catalog: ambiguous reduction rules")

	// ErrProvider wraps a provider's own failure.
	ErrProvider = errors.New("catalog: provider failed")
)

// Catalog is the immutable set of reduction facts. Safe for concurrent reads.
type Catalog struct {
	hier     *variant.Hierarchy
	rules    *btree.BTree
	names    []string
	variants map[string][]variant.Variant
	concrete []ConcreteVariant
	casts    map[string]CastFunc
	sizes    map[string][]string
	ambig    []Ambiguity
	logger   *slog.Logger
}

// New collects facts from every provider in order and builds the catalog.
//
// Steps:
//  1. Read all providers.
//  2. Build and close the variant hierarchy.
//  3. Parse, validate and index every rule.
//  4. Record concrete variants and casts.
//  5. Settle every name's size fields.
//  6. Detect ambiguous rule pairs (fatal under WithStrictAmbiguity).
func New(providers []Provider, opts ...Option) (*Catalog, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1) Collect
	var all Facts
	for i, p := range providers {
		f, err := p.Facts()
		if err != nil {
			return nil, fmt.Errorf("%w: #%d: %w", ErrProvider, i, err)
		}
		all.Types = append(all.Types, f.Types...)
		all.Problems = append(all.Problems, f.Problems...)
		all.Rules = append(all.Rules, f.Rules...)
		all.Variants = append(all.Variants, f.Variants...)
		all.Casts = append(all.Casts, f.Casts...)
	}

	// 2) Hierarchy
	h, err := variant.NewHierarchy(all.Types...)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	c := &Catalog{
		hier:     h,
		rules:    btree.New(btreeDegree),
		variants: make(map[string][]variant.Variant),
		casts:    make(map[string]CastFunc),
		sizes:    make(map[string][]string),
		logger:   o.logger,
	}
	seen := make(map[string]map[string]bool)
	addVariant := func(name string, v variant.Variant) {
		if seen[name] == nil {
			seen[name] = make(map[string]bool)
		}
		if k := v.Key(); !seen[name][k] {
			seen[name][k] = true
			c.variants[name] = append(c.variants[name], v)
		}
	}

	// 3) Rules
	for _, e := range all.Rules {
		r, err := parseEntry(e)
		if err != nil {
			return nil, err
		}
		it := itemFor(r)
		if c.rules.Has(it) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRule, r)
		}
		c.rules.ReplaceOrInsert(it)
		addVariant(r.SourceName, r.SourceVariant)
		addVariant(r.TargetName, r.TargetVariant)
	}

	// 4) Concrete variants and casts
	for _, cv := range all.Variants {
		if cv.Name == "" {
			return nil, fmt.Errorf("%w: concrete variant %s", ErrEmptyName, cv.Variant)
		}
		cv.Variant = cv.Variant.Clone()
		c.concrete = append(c.concrete, cv)
		addVariant(cv.Name, cv.Variant)
	}
	for _, ce := range all.Casts {
		if ce.Name == "" {
			return nil, fmt.Errorf("%w: cast", ErrEmptyName)
		}
		if _, dup := c.casts[ce.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCast, ce.Name)
		}
		c.casts[ce.Name] = ce.Cast
	}
	for name, vs := range c.variants {
		sort.Slice(vs, func(i, j int) bool { return vs[i].Key() < vs[j].Key() })
		c.names = append(c.names, name)
	}
	sort.Strings(c.names)

	// 5) Size fields
	for _, p := range all.Problems {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: size fields", ErrEmptyName)
		}
		c.sizes[p.Name] = append([]string(nil), p.SizeFields...)
	}
	for _, name := range c.names {
		if _, ok := c.sizes[name]; !ok {
			c.sizes[name] = c.deriveSizeFields(name)
		}
	}

	// 6) Ambiguity
	c.ambig = c.findAmbiguities()
	if len(c.ambig) > 0 && o.strict {
		a := c.ambig[0]
		return nil, fmt.Errorf("%w: %s and %s (%d pair(s))", ErrAmbiguousRules, a.A, a.B, len(c.ambig))
	}

	c.logger.Debug("catalog built",
		slog.Int("rules", c.rules.Len()),
		slog.Int("names", len(c.names)),
		slog.Int("casts", len(c.casts)),
		slog.Int("ambiguities", len(c.ambig)))

	return c, nil
}

// MustNew is New that panics on error. Intended for package-level fact sets.
func MustNew(providers []Provider, opts ...Option) *Catalog {
	c, err := New(providers, opts...)
	if err != nil {
		panic(err)
	}

	return c
}

// parseEntry turns one declared Entry into an immutable Rule.
func parseEntry(e Entry) (*Rule, error) {
	if e.SourceName == "" || e.TargetName == "" {
		return nil, fmt.Errorf("%w: rule %q -> %q", ErrEmptyName, e.SourceName, e.TargetName)
	}
	r := &Rule{
		SourceName:    e.SourceName,
		SourceVariant: e.SourceVariant.Clone(),
		TargetName:    e.TargetName,
		TargetVariant: e.TargetVariant.Clone(),
		Reduce:        e.Reduce,
		Origin:        e.Origin,
	}
	if e.SourceFields != nil {
		r.SourceFields = append([]string(nil), e.SourceFields...)
	}
	oh, err := overhead.New(e.Overhead...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedOverhead, r, err)
	}
	r.Overhead = oh
	if r.SourceFields != nil {
		if err := oh.Validate(r.SourceFields); err != nil {
			return nil, fmt.Errorf("catalog: %s: %w", r, err)
		}
	}

	return r, nil
}

// deriveSizeFields infers the size fields of an undeclared name from its
// rules, sorted. The first non-empty source wins: declared source fields of
// rules leaving name, output fields of rules entering name, then the inputs
// referenced by rules leaving name.
func (c *Catalog) deriveSizeFields(name string) []string {
	var from, into, refs []string
	c.rules.Ascend(func(i btree.Item) bool {
		r := i.(ruleItem).rule
		if r.SourceName == name {
			from = append(from, r.SourceFields...)
			refs = append(refs, r.Overhead.Variables()...)
		}
		if r.TargetName == name {
			for _, f := range r.Overhead.Fields() {
				into = append(into, f.Name)
			}
		}

		return true
	})
	for _, fields := range [][]string{from, into, refs} {
		if len(fields) > 0 {
			return uniqueSorted(fields)
		}
	}

	return nil
}

func uniqueSorted(in []string) []string {
	sort.Strings(in)
	out := in[:0]
	for _, s := range in {
		if len(out) == 0 || s != out[len(out)-1] {
			out = append(out, s)
		}
	}

	return out
}

// findAmbiguities lists rule pairs on one name pair whose source variants
// are equal, or incomparable yet share a common lower bound on every axis.
// Rules from a name to itself are keyed by their target variant and never
// compete on equal sources.
func (c *Catalog) findAmbiguities() []Ambiguity {
	var out []Ambiguity
	var group []*Rule
	flush := func() {
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				a, b := group[i], group[j]
				same := a.SourceName != a.TargetName && a.SourceVariant.Equal(b.SourceVariant)
				if same || c.overlaps(a.SourceVariant, b.SourceVariant) {
					out = append(out, Ambiguity{A: a, B: b})
				}
			}
		}
		group = group[:0]
	}
	c.rules.Ascend(func(i btree.Item) bool {
		r := i.(ruleItem).rule
		if len(group) > 0 && (group[0].SourceName != r.SourceName || group[0].TargetName != r.TargetName) {
			flush()
		}
		group = append(group, r)

		return true
	})
	flush()

	return out
}

// overlaps reports whether a and b are incomparable but some variant could be
// a subtype of both.
func (c *Catalog) overlaps(a, b variant.Variant) bool {
	if c.hier.VariantIsSubtype(a, b) || c.hier.VariantIsSubtype(b, a) {
		return false
	}
	if len(a) != len(b) {
		return false
	}
	for cat, av := range a {
		bv, ok := b[cat]
		if !ok || !c.hier.CommonSubtype(cat, av, bv) {
			return false
		}
	}

	return true
}
