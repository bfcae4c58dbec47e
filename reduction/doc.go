// Package reduction answers routing questions over a catalog of reduction
// rules: which chain of reductions turns an instance of one problem into an
// instance of another, which exact variants every step uses, and how a
// solution of the final instance maps back to the original.
//
// The workflow has three stages:
//
//	FindCheapestPath(src, dst, size, cost)  name path minimizing a cost.Function
//	ResolvePath(path, srcVariant, dstVariant)  exact variants, casts inserted
//	ReduceAlongPath(ctx, resolved, instance)   run transforms, get a *Chain
//
// followed by Chain.ExtractSolution on the final configuration.
//
// Name-level queries (FindShortestPathByName, FindAllPaths, ReachableFrom,
// HasDirectReduction) work on the NameGraph: one vertex per problem name and
// one directed edge per (source, target) pair with at least one rule. It is
// built lazily, once per Graph.
//
// Outcomes versus failures:
//
//	ErrNoPath, ErrUnresolvable     ordinary "no route" answers
//	expr/overhead/cost errors      hard failures, never coerced to a size
//	ErrExecution and friends       a chain could not be built; no partial chain
//
// Every method is safe for concurrent use. Search and resolution are pure
// over the immutable catalog; execution is as pure as the registered
// transforms are.
//
// Observability: Prometheus counters and histograms for searches,
// resolutions and chains (promauto, default registry), an OpenTelemetry span
// per ReduceAlongPath, and slog debug records via WithLogger.
package reduction
