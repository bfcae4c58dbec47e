// Package catalog holds the ReductionCatalog: the immutable set of reduction
// rules, concrete variants, casts and variant hierarchy facts a reduction
// graph is built from.
//
// Facts arrive through an ordered list of Providers and are validated once,
// in New. Every build problem is an error from New:
//
//	ErrEmptyName, ErrDuplicateRule, ErrDuplicateCast
//	ErrMalformedOverhead       (wraps *expr.ParseError)
//	ErrOverheadFieldMismatch   (entry declared SourceFields)
//	variant.ErrHierarchyCycle, variant.ErrConflictingParents
//	ErrAmbiguousRules          (WithStrictAmbiguity only)
//
// Rule selection:
//
//	FindBestEntry(source, target, current) keeps the rules whose source
//	variant accepts current and returns the tightest one. When two rules
//	are equally specific (incomparable sources, or one source with two
//	targets) the first in index order wins and a warning is logged;
//	Ambiguities lists such pairs ahead of time.
//
// Natural edges (variant widening within one name) are never stored; they
// are derived by NaturalEdges on demand and carry the identity overhead over
// the name's size fields. Those come from Facts.Problems, or else from the
// rules touching the name.
package catalog
