// Package cost provides the edge cost strategies used by the cheapest-path
// search of a reduction graph.
//
//	Minimize(field)                  value of one output field
//	MinimizeWeighted(terms...)       weighted sum
//	MinimizeMax(fields...)           largest field
//	MinimizeLexicographic(fields...) priority order via 1e-10 scaling
//	MinimizeSteps{}                  constant 1 (hop count)
//	Custom(fn)                       caller-supplied
//
// Costs must be non-negative; the search rejects a negative or NaN cost
// with dijkstra.ErrNegativeCost.
package cost
