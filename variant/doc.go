// Package variant models the axes that specialize a problem name into a
// concrete type, and the subtype relation between axis values.
//
// A Hierarchy is built once from TypeEntry facts:
//
//	h, err := variant.NewHierarchy(
//	    variant.TypeEntry{Category: "graph", Value: "SimpleGraph"},
//	    variant.TypeEntry{Category: "graph", Value: "PlanarGraph", Parents: []string{"SimpleGraph"}},
//	    variant.TypeEntry{Category: "weight", Value: "i32", Parents: []string{"f64"}},
//	)
//
// Parents may form a DAG (several independent supertype claims). Ancestor
// sets are computed once by fixed-point iteration and memoized; a cycle among
// parent declarations fails construction with a *CycleError naming it.
//
// A Variant is one point in axis space, e.g. {graph: PlanarGraph, weight: i32}.
// VariantIsSubtype compares two variants axis by axis; variants with
// different axis sets are never comparable.
package variant
