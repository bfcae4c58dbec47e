package catalog

import (
	"log/slog"

	"github.com/google/btree"

	"github.com/katalvlaran/reductions/variant"
)

// Hierarchy returns the closed variant hierarchy.
func (c *Catalog) Hierarchy() *variant.Hierarchy { return c.hier }

// NumRules returns the number of registered rules.
func (c *Catalog) NumRules() int { return c.rules.Len() }

// Rules returns every rule in index order.
func (c *Catalog) Rules() []*Rule {
	out := make([]*Rule, 0, c.rules.Len())
	c.rules.Ascend(func(i btree.Item) bool {
		out = append(out, i.(ruleItem).rule)
		return true
	})

	return out
}

// RulesBetween returns every rule from source to target, ordered by source
// then target variant key. No variant filtering is applied.
func (c *Catalog) RulesBetween(source, target string) []*Rule {
	var out []*Rule
	pairRange(c.rules, source, target, func(r *Rule) { out = append(out, r) })

	return out
}

// Lookup returns the rule registered for the exact 4-tuple.
func (c *Catalog) Lookup(source string, sv variant.Variant, target string, tv variant.Variant) (*Rule, bool) {
	it := c.rules.Get(ruleItem{src: source, tgt: target, srcKey: sv.Key(), tgtKey: tv.Key()})
	if it == nil {
		return nil, false
	}

	return it.(ruleItem).rule, true
}

// FindBestEntry picks the most specific rule from source to target that
// accepts an instance of variant current.
//
// Candidates are rules whose source variant is a supertype-or-equal of
// current. The winner is the candidate whose source variant is
// subtype-or-equal of every other candidate's. When several candidates are
// most specific, either mutually incomparable or sharing one source variant
// with different targets, the first in index order (source key, then target
// key) wins and a warning is logged.
func (c *Catalog) FindBestEntry(source, target string, current variant.Variant) (*Rule, bool) {
	// 1) Filter
	var cands []*Rule
	pairRange(c.rules, source, target, func(r *Rule) {
		if c.hier.VariantIsSubtype(current, r.SourceVariant) {
			cands = append(cands, r)
		}
	})
	if len(cands) == 0 {
		return nil, false
	}

	// 2) Keep the minimal ones: no other candidate strictly below them.
	var minimal []*Rule
	for _, r := range cands {
		strictlyBelow := false
		for _, o := range cands {
			if o.SourceVariant.Equal(r.SourceVariant) {
				continue
			}
			if c.hier.VariantIsSubtype(o.SourceVariant, r.SourceVariant) {
				strictlyBelow = true
				break
			}
		}
		if !strictlyBelow {
			minimal = append(minimal, r)
		}
	}

	// 3) Index order already sorts by source key, then target key.
	best := minimal[0]
	if len(minimal) > 1 {
		c.logger.Warn("ambiguous reduction rules, picking first in index order",
			slog.String("source", source),
			slog.String("target", target),
			slog.String("current", current.Key()),
			slog.String("picked", best.String()),
			slog.String("other", minimal[1].String()))
	}

	return best, true
}

// Names returns every problem name appearing in a rule or concrete variant, sorted.
func (c *Catalog) Names() []string { return append([]string(nil), c.names...) }

// Variants returns every known variant of name, sorted by key.
func (c *Catalog) Variants(name string) []variant.Variant {
	vs := c.variants[name]
	if len(vs) == 0 {
		return nil
	}
	out := make([]variant.Variant, len(vs))
	for i, v := range vs {
		out[i] = v.Clone()
	}

	return out
}

// ConcreteVariants returns the declared concrete variants in declaration order.
func (c *Catalog) ConcreteVariants() []ConcreteVariant {
	out := make([]ConcreteVariant, len(c.concrete))
	for i, cv := range c.concrete {
		out[i] = ConcreteVariant{Name: cv.Name, Variant: cv.Variant.Clone()}
	}

	return out
}

// Cast returns the widening conversion registered for name.
func (c *Catalog) Cast(name string) (CastFunc, bool) {
	f, ok := c.casts[name]

	return f, ok
}

// Ambiguities returns the rule pairs that could tie in FindBestEntry.
func (c *Catalog) Ambiguities() []Ambiguity { return append([]Ambiguity(nil), c.ambig...) }

// SizeFields returns the size fields of name: the last declaration among
// the facts, else the fields its rules imply. Unknown names yield nil.
func (c *Catalog) SizeFields(name string) []string { return append([]string(nil), c.sizes[name]...) }

// NaturalEdges derives, for every name, an edge between each ordered pair of
// distinct known variants where the first is a subtype of the second. Each
// edge carries the identity overhead over the name's size fields.
// Output is ordered by name, then From key, then To key.
func (c *Catalog) NaturalEdges() []NaturalEdge {
	var out []NaturalEdge
	for _, name := range c.names {
		vs := c.variants[name]
		for _, a := range vs {
			for _, b := range vs {
				if a.Equal(b) || !c.hier.VariantIsSubtype(a, b) {
					continue
				}
				out = append(out, NaturalEdge{Name: name, From: a.Clone(), To: b.Clone()})
			}
		}
	}

	return out
}
