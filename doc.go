// Package reductions routes instances of NP-hard problems between
// formulations: given a catalog of reduction rules (A → B, with a formula
// for how instance size grows), it finds chains from the problem you have
// to the problem your solver accepts, pins every step to an exact variant,
// and runs the chain on a live instance so a solution can be mapped back.
//
// What is in the box?
//
//	A small in-memory engine built in layers:
//		• Variants: per-axis subtype hierarchies (GridGraph ⊑ UnitDiskGraph ⊑ SimpleGraph)
//		• Catalog: rules indexed by (source, target, variants), natural casts derived
//		• Overheads: arithmetic formulas over size fields, evaluated and composed
//		• Routing: cheapest path under a pluggable cost, hop count, all paths
//		• Resolution: name paths turned into exact variant steps with casts
//		• Execution: transforms chained, solutions extracted in reverse
//
// Packages:
//
//	variant/   — axis values, subtype closure, variant comparison
//	expr/      — overhead expression parser and evaluator
//	overhead/  — per-field size formulas, evaluation, composition
//	problem/   — the Problem contract, sizes and solution configs
//	catalog/   — rule registration, indexing, best-match lookup
//	facts/     — YAML fact documents as catalog providers
//	builtin/   — the standard problem hierarchy and rule set
//	cost/      — edge cost strategies for the path finder
//	reduction/ — name graph, path finding, resolution, execution, export
//	core/      — thread-safe directed graph primitives
//	bfs/, dfs/, dijkstra/ — the traversals the routing layer runs on
//
// Quick ASCII example:
//
//	KSatisfiability{k=K3} =cast=> KSatisfiability{k=KN}
//	    -> Satisfiability{} -> MaximumIndependentSet{graph=SimpleGraph,weight=i32}
//
// is a resolved path with one cast and two reductions.
//
//	go get github.com/katalvlaran/reductions
package reductions
