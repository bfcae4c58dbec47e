// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Registration surface (Entry, ConcreteVariant, CastEntry, Facts, Provider),
//       parsed Rule, and the transform closures bound to rules and casts.

package catalog

import (
	"github.com/katalvlaran/reductions/overhead"
	"github.com/katalvlaran/reductions/problem"
	"github.com/katalvlaran/reductions/variant"
)

// ExtractFunc maps a solution of the produced instance back to the source instance.
type ExtractFunc func(target problem.Config) (problem.Config, error)

// ReduceFunc transforms a source instance into the rule's target instance and
// returns the extractor for mapping solutions back.
type ReduceFunc func(src problem.Problem) (problem.Problem, ExtractFunc, error)

// CastFunc widens an instance to a more general variant of the same problem
// without changing its solution space.
type CastFunc func(src problem.Problem, to variant.Variant) (problem.Problem, error)

// Entry declares one reduction rule between two exact (name, variant) pairs.
type Entry struct {
	SourceName    string
	SourceVariant variant.Variant
	TargetName    string
	TargetVariant variant.Variant

	// Overhead lists the target size fields as formulas over source size fields.
	Overhead []overhead.Spec

	// SourceFields, when set, are the size fields the source problem exposes;
	// formulas referencing anything else are rejected at build time.
	SourceFields []string

	// Reduce is the forward transform. Rules without one can be routed and
	// resolved but not executed.
	Reduce ReduceFunc

	// Origin is free-form provenance, e.g. the package or file declaring the rule.
	Origin string
}

// ConcreteVariant declares a constructible (name, variant) that no rule touches,
// so it still appears as a node and takes part in natural-edge derivation.
type ConcreteVariant struct {
	Name    string
	Variant variant.Variant
}

// CastEntry registers the widening conversion for every variant of one problem name.
type CastEntry struct {
	Name string
	Cast CastFunc
}

// ProblemFields declares the size fields one problem exposes. A later
// declaration of the same name replaces an earlier one.
type ProblemFields struct {
	Name       string
	SizeFields []string
}

// Facts is one provider's contribution.
type Facts struct {
	Types    []variant.TypeEntry
	Problems []ProblemFields
	Rules    []Entry
	Variants []ConcreteVariant
	Casts    []CastEntry
}

// Provider supplies facts. Providers are read once, in order, by New.
type Provider interface {
	Facts() (Facts, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func() (Facts, error)

// Facts implements Provider.
func (f ProviderFunc) Facts() (Facts, error) { return f() }

// Static returns a Provider that always yields f.
func Static(f Facts) Provider {
	return ProviderFunc(func() (Facts, error) { return f, nil })
}

// Rule is a registered, parsed, immutable reduction rule.
type Rule struct {
	SourceName    string
	SourceVariant variant.Variant
	TargetName    string
	TargetVariant variant.Variant
	Overhead      *overhead.Overhead
	SourceFields  []string
	Reduce        ReduceFunc
	Origin        string
}

// String renders "Src{axes} -> Tgt{axes}".
func (r *Rule) String() string {
	return r.SourceName + r.SourceVariant.String() + " -> " + r.TargetName + r.TargetVariant.String()
}

// IsBase reports whether both endpoints are unweighted (weight axis One or absent).
func (r *Rule) IsBase() bool {
	unweighted := func(v variant.Variant) bool {
		w, ok := v["weight"]

		return !ok || w == "One"
	}

	return unweighted(r.SourceVariant) && unweighted(r.TargetVariant)
}

// NaturalEdge is a derived widening between two variants of one problem name.
// Overhead is the identity over the name's size fields.
type NaturalEdge struct {
	Name     string
	From     variant.Variant
	To       variant.Variant
	Overhead *overhead.Overhead
}

// Ambiguity records two rules on the same name pair that can both be the most
// specific match for one caller variant: their source variants are equal, or
// incomparable yet share a common subtype.
type Ambiguity struct {
	A, B *Rule
}
