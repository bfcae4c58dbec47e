// SPDX-License-Identifier: MIT
//
// File: cost.go
// Role: Edge cost strategies for the cheapest-path search.
// Contract:
//   - EdgeCost evaluates the rule's overhead against the current size and
//     reduces the output size to one non-negative scalar.
//   - Output fields absent from the evaluated size count as 0.
//   - Evaluation errors are returned, never mapped to a cost.

package cost

import (
	"fmt"
	"math"

	"github.com/katalvlaran/reductions/overhead"
	"github.com/katalvlaran/reductions/problem"
)

// lexScale is the weight ratio between consecutive priorities in MinimizeLexicographic.
const lexScale = 1e-10

// Function scores one reduction step.
type Function interface {
	EdgeCost(o *overhead.Overhead, size problem.Size) (float64, error)
}

// Func adapts a plain function to Function.
type Func func(o *overhead.Overhead, size problem.Size) (float64, error)

// EdgeCost implements Function.
func (f Func) EdgeCost(o *overhead.Overhead, size problem.Size) (float64, error) { return f(o, size) }

// Custom wraps fn as a Function. Panics if fn is nil.
func Custom(fn func(o *overhead.Overhead, size problem.Size) (float64, error)) Function {
	if fn == nil {
		panic("cost: Custom(nil)")
	}

	return Func(fn)
}

// output evaluates o against size.
func output(o *overhead.Overhead, size problem.Size) (problem.Size, error) {
	out, err := o.Evaluate(size)
	if err != nil {
		return nil, fmt.Errorf("cost: %w", err)
	}

	return out, nil
}

type minimize struct{ field string }

// Minimize scores a step by the value of one output field.
func Minimize(field string) Function { return minimize{field: field} }

func (m minimize) EdgeCost(o *overhead.Overhead, size problem.Size) (float64, error) {
	out, err := output(o, size)
	if err != nil {
		return 0, err
	}

	return float64(out[m.field]), nil
}

// Weighted pairs an output field with its weight.
type Weighted struct {
	Field  string
	Weight float64
}

type minimizeWeighted struct{ terms []Weighted }

// MinimizeWeighted scores a step by the weighted sum of output fields.
// Panics on a negative or non-finite weight.
func MinimizeWeighted(terms ...Weighted) Function {
	for _, t := range terms {
		if t.Weight < 0 || math.IsNaN(t.Weight) || math.IsInf(t.Weight, 0) {
			panic(fmt.Sprintf("cost: MinimizeWeighted(%s: %v): weight must be finite and >= 0", t.Field, t.Weight))
		}
	}

	return minimizeWeighted{terms: append([]Weighted(nil), terms...)}
}

func (m minimizeWeighted) EdgeCost(o *overhead.Overhead, size problem.Size) (float64, error) {
	out, err := output(o, size)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, t := range m.terms {
		sum += t.Weight * float64(out[t.Field])
	}

	return sum, nil
}

type minimizeMax struct{ fields []string }

// MinimizeMax scores a step by the largest of the given output fields.
func MinimizeMax(fields ...string) Function {
	return minimizeMax{fields: append([]string(nil), fields...)}
}

func (m minimizeMax) EdgeCost(o *overhead.Overhead, size problem.Size) (float64, error) {
	out, err := output(o, size)
	if err != nil {
		return 0, err
	}
	var best int
	for _, f := range m.fields {
		best = max(best, out[f])
	}

	return float64(best), nil
}

type minimizeLexicographic struct{ fields []string }

// MinimizeLexicographic minimizes the first field and breaks ties with the
// following ones. Priority i is scaled by 1e-10^i, so a lower-priority field
// above ~1e10 can outweigh the one before it, and float64 precision limits
// how far down the list ties are actually broken.
func MinimizeLexicographic(fields ...string) Function {
	return minimizeLexicographic{fields: append([]string(nil), fields...)}
}

func (m minimizeLexicographic) EdgeCost(o *overhead.Overhead, size problem.Size) (float64, error) {
	out, err := output(o, size)
	if err != nil {
		return 0, err
	}
	var sum float64
	scale := 1.0
	for _, f := range m.fields {
		sum += scale * float64(out[f])
		scale *= lexScale
	}

	return sum, nil
}

// MinimizeSteps scores every step as 1, i.e. minimizes hop count.
// The overhead is not evaluated.
type MinimizeSteps struct{}

// EdgeCost implements Function.
func (MinimizeSteps) EdgeCost(*overhead.Overhead, problem.Size) (float64, error) { return 1, nil }
