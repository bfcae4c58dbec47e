// Package dijkstra implements a generic, stateful Dijkstra search over
// core.Graph.
//
// The graph stores no weights. Instead the caller supplies a Relaxer that
// prices an edge at the moment its tail is settled, seeing the state S that
// was accumulated along the cheapest path to the tail (for example the
// instance size after every reduction applied so far). The relaxer may also
// declare an edge inadmissible for that state.
//
// Complexity:
//
//	– Time:  O((V + E) log E)  lazy decrease-key: stale heap entries are skipped
//	– Space: O(V + E)
//
// Options:
//
//	– WithTarget(id):   stop once id is settled.
//	– WithMaxCost(x):   prune tentative distances above x (x ≥ 0, panics otherwise).
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the graph pointer is nil.
//	– ErrNilRelaxer     if relax is nil.
//	– ErrVertexNotFound if the source vertex does not exist.
//	– ErrNegativeCost   if the relaxer priced an edge below zero or as NaN.
//
// Example usage:
//
//	res, err := dijkstra.Search(g, "A", 0.0,
//	    func(_ string, acc float64, e dijkstra.Edge) (float64, float64, bool, error) {
//	        return 1, acc + 1, true, nil
//	    },
//	    dijkstra.WithTarget("D"),
//	)
//	path, err := res.PathTo("D")
package dijkstra
