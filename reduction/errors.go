package reduction

import "errors"

var (
	// ErrNilCatalog indicates New was called without a catalog.
	ErrNilCatalog = errors.New("reduction: catalog is nil")

	// ErrUnknownProblem indicates a problem name the catalog never mentions.
	ErrUnknownProblem = errors.New("reduction: unknown problem")

	// ErrNoPath indicates no admissible route exists. This is an ordinary
	// outcome, not a malfunction.
	ErrNoPath = errors.New("reduction: no path found")

	// ErrNilCostFunction indicates FindCheapestPath was called without a cost function.
	ErrNilCostFunction = errors.New("reduction: cost function is nil")

	// ErrUnresolvable indicates a name path for which no compatible rule
	// exists at some hop, or whose final variant cannot widen to the target.
	ErrUnresolvable = errors.New("reduction: path not resolvable for variant")

	// ErrSourceMismatch indicates the instance handed to ReduceAlongPath is not
	// the resolved path's first step.
	ErrSourceMismatch = errors.New("reduction: source instance does not match path")

	// ErrNoTransform indicates a reduction step whose rule has no transform.
	ErrNoTransform = errors.New("reduction: no transform registered")

	// ErrNoCast indicates a cast step for a problem with neither a registered
	// cast nor a Widen method.
	ErrNoCast = errors.New("reduction: no cast registered")

	// ErrExecution indicates a transform or cast failed, or produced an
	// instance other than the expected next step.
	ErrExecution = errors.New("reduction: execution failed")
)
