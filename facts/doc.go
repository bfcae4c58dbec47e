// Package facts reads reduction facts from YAML.
//
// A document lists problem size fields, hierarchy values, rules and
// concrete variants:
//
//	problems:
//	  - {name: MaximumIndependentSet, size_fields: [num_vertices, num_edges]}
//	hierarchy:
//	  - {category: graph, value: PlanarGraph, parents: [SimpleGraph]}
//	rules:
//	  - source: {name: MaximumIndependentSet, variant: {graph: SimpleGraph, weight: i32}}
//	    target: {name: MinimumVertexCover, variant: {graph: SimpleGraph, weight: i32}}
//	    overhead:
//	      - {field: num_vertices, formula: num_vertices}
//	variants:
//	  - {name: MaxCut, variant: {graph: SimpleGraph, weight: One}}
//
// Decoding rejects unknown keys (ErrDecode); struct validation with
// go-playground/validator rejects missing names, empty axis values and
// non-identifier field names (ErrInvalid). Formulas are parsed later, when
// the resulting Document is handed to catalog.New as a Provider; rules whose
// source problem declares size_fields are then checked against them.
package facts
