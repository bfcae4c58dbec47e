// SPDX-License-Identifier: MIT
//
// File: resolve.go
// Role: PathResolver: turn a name path into exact variant steps, inserting
//       natural casts wherever a rule needs a more general variant.

package reduction

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/reductions/catalog"
	"github.com/katalvlaran/reductions/overhead"
	"github.com/katalvlaran/reductions/problem"
	"github.com/katalvlaran/reductions/variant"
)

// EdgeKind distinguishes rule applications from variant widenings.
type EdgeKind int

const (
	// KindReduction applies a catalog rule.
	KindReduction EdgeKind = iota
	// KindNaturalCast widens a variant of one problem; size is unchanged.
	KindNaturalCast
)

func (k EdgeKind) String() string {
	switch k {
	case KindReduction:
		return "reduction"
	case KindNaturalCast:
		return "cast"
	default:
		return fmt.Sprintf("EdgeKind(%d)", int(k))
	}
}

// Step is one exact (name, variant) on a resolved path.
type Step struct {
	Name    string
	Variant variant.Variant
}

// String renders "Name{axes}".
func (s Step) String() string { return s.Name + s.Variant.String() }

// Edge joins two consecutive steps. Rule is nil for casts.
type Edge struct {
	Kind EdgeKind
	Rule *catalog.Rule

	cast *overhead.Overhead
}

// Overhead returns the rule's overhead. A cast yields the identity over the
// problem's size fields, which is empty when none are known.
func (e Edge) Overhead() *overhead.Overhead {
	if e.Rule != nil {
		return e.Rule.Overhead
	}
	if e.cast == nil {
		return overhead.Identity()
	}

	return e.cast
}

// ResolvedPath is a name path with every step pinned to an exact variant.
// len(Steps) == len(Edges)+1.
type ResolvedPath struct {
	Steps []Step
	Edges []Edge
}

// Len returns the number of edges.
func (rp *ResolvedPath) Len() int { return len(rp.Edges) }

// NumReductions counts rule applications.
func (rp *ResolvedPath) NumReductions() int { return rp.count(KindReduction) }

// NumCasts counts natural casts.
func (rp *ResolvedPath) NumCasts() int { return rp.count(KindNaturalCast) }

func (rp *ResolvedPath) count(k EdgeKind) int {
	n := 0
	for _, e := range rp.Edges {
		if e.Kind == k {
			n++
		}
	}

	return n
}

// Source returns the first step.
func (rp *ResolvedPath) Source() Step { return rp.Steps[0] }

// Target returns the last step.
func (rp *ResolvedPath) Target() Step { return rp.Steps[len(rp.Steps)-1] }

// ComposedOverhead folds every reduction's overhead into one, mapping source
// size fields straight to target size fields. Casts are identities and are
// skipped. Returns nil for a path without reductions.
//
// Evaluating the result matches EstimateSize only while every intermediate
// formula yields whole numbers: EstimateSize rounds after each step, the
// composed formula rounds once at the end.
func (rp *ResolvedPath) ComposedOverhead() *overhead.Overhead {
	var acc *overhead.Overhead
	for _, e := range rp.Edges {
		if e.Kind != KindReduction {
			continue
		}
		if acc == nil {
			acc = e.Rule.Overhead
			continue
		}
		acc = acc.Compose(e.Rule.Overhead)
	}

	return acc
}

// EstimateSize evaluates every reduction's overhead in turn starting from input.
func (rp *ResolvedPath) EstimateSize(input problem.Size) (problem.Size, error) {
	cur := input.Clone()
	for i, e := range rp.Edges {
		if e.Kind != KindReduction {
			continue
		}
		next, err := e.Rule.Overhead.Evaluate(cur)
		if err != nil {
			return nil, fmt.Errorf("reduction: step %d (%s): %w", i, e.Rule, err)
		}
		cur = next
	}

	return cur, nil
}

// String renders steps joined by their edge kind, e.g.
// "A{x=1} =cast=> A{x=2} -> B{}".
func (rp *ResolvedPath) String() string {
	var b strings.Builder
	for i, s := range rp.Steps {
		if i > 0 {
			if rp.Edges[i-1].Kind == KindNaturalCast {
				b.WriteString(" =cast=> ")
			} else {
				b.WriteString(" -> ")
			}
		}
		b.WriteString(s.String())
	}

	return b.String()
}

// ResolvePath pins p to exact variants, starting at source and ending at target.
//
// Steps:
//  1. current := source; the first step is (p[0], source).
//  2. For each hop a→b take FindBestEntry(a, b, current). If the rule wants a
//     more general source variant, insert a cast to it first. Then apply the
//     rule; current becomes the rule's target variant.
//  3. If current differs from target, append one trailing cast when current
//     is a subtype of target, otherwise fail.
//
// Errors: ErrUnresolvable (wrapped with the failing hop).
func (g *Graph) ResolvePath(p Path, source, target variant.Variant) (rp *ResolvedPath, err error) {
	defer func() { resolveTotal.WithLabelValues(outcomeOf(err, ErrUnresolvable)).Inc() }()

	if p.IsEmpty() {
		return nil, fmt.Errorf("%w: empty path", ErrUnresolvable)
	}

	// 1) Seed
	current := source.Clone()
	rp = &ResolvedPath{Steps: []Step{{Name: p.Names[0], Variant: current}}}

	// 2) Hops
	for i := 0; i+1 < len(p.Names); i++ {
		a, b := p.Names[i], p.Names[i+1]
		r, ok := g.cat.FindBestEntry(a, b, current)
		if !ok {
			return nil, fmt.Errorf("%w: no rule %s%s -> %s", ErrUnresolvable, a, current, b)
		}
		if !r.SourceVariant.Equal(current) {
			rp.Edges = append(rp.Edges, g.castEdge(a))
			rp.Steps = append(rp.Steps, Step{Name: a, Variant: r.SourceVariant.Clone()})
		}
		rp.Edges = append(rp.Edges, Edge{Kind: KindReduction, Rule: r})
		rp.Steps = append(rp.Steps, Step{Name: b, Variant: r.TargetVariant.Clone()})
		current = r.TargetVariant
	}

	// 3) Trailing cast
	if !current.Equal(target) {
		if !g.cat.Hierarchy().VariantIsSubtype(current, target) {
			return nil, fmt.Errorf("%w: %s%s does not widen to %s", ErrUnresolvable, p.Target(), current, target)
		}
		rp.Edges = append(rp.Edges, g.castEdge(p.Target()))
		rp.Steps = append(rp.Steps, Step{Name: p.Target(), Variant: target.Clone()})
	}

	g.opts.logger.Debug("path resolved",
		slog.String("path", rp.String()),
		slog.Int("reductions", rp.NumReductions()),
		slog.Int("casts", rp.NumCasts()))

	return rp, nil
}

func (g *Graph) castEdge(name string) Edge {
	return Edge{Kind: KindNaturalCast, cast: overhead.Identity(g.cat.SizeFields(name)...)}
}
