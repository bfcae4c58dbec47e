// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, Relaxer contract, Options and Result for Search.

package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates the provided graph pointer is nil.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilRelaxer indicates Search was called without an edge relaxer.
	ErrNilRelaxer = errors.New("dijkstra: relaxer is nil")

	// ErrVertexNotFound indicates the source vertex is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found")

	// ErrNegativeCost indicates a relaxer produced a negative or NaN edge cost.
	ErrNegativeCost = errors.New("dijkstra: negative or NaN edge cost")

	// ErrUnreachable is returned by Result.PathTo for vertices never settled.
	ErrUnreachable = errors.New("dijkstra: vertex unreachable")
)

// Relaxer prices one edge on demand.
//
// It receives the edge leaving from together with the state S that from was
// settled with, and returns the edge cost plus the state the far endpoint
// would carry if reached through this edge. ok == false marks the edge as
// inadmissible for this state (skipped, not an error). A non-nil error aborts
// the whole search.
type Relaxer[S any] func(from string, state S, e Edge) (cost float64, next S, ok bool, err error)

// Edge is the view of a graph edge offered to a Relaxer.
type Edge struct {
	ID    string
	From  string
	To    string
	Label string
}

// Options configures a Search run.
type Options struct {
	// Target, when non-empty, stops the search as soon as it is settled.
	Target string

	// MaxCost prunes every tentative distance above it. +Inf = no limit.
	MaxCost float64
}

// Option mutates Options. Constructors panic on invalid arguments.
type Option func(*Options)

// DefaultOptions returns an unbounded, full single-source search.
func DefaultOptions() Options {
	return Options{MaxCost: math.Inf(1)}
}

// WithTarget enables early exit once target is settled.
func WithTarget(target string) Option {
	return func(o *Options) { o.Target = target }
}

// WithMaxCost prunes paths whose accumulated cost exceeds limit.
// Panics if limit is negative or NaN.
func WithMaxCost(limit float64) Option {
	if limit < 0 || math.IsNaN(limit) {
		panic(fmt.Sprintf("dijkstra: WithMaxCost(%v): limit must be a non-negative number", limit))
	}

	return func(o *Options) { o.MaxCost = limit }
}

// Result holds the settled search tree.
//
// Dist and State contain only settled vertices; Prev maps each settled
// vertex except the source to its predecessor on a cheapest path.
type Result[S any] struct {
	Source string
	Dist   map[string]float64
	Prev   map[string]string
	State  map[string]S
}

// Reached reports whether id was settled.
func (r *Result[S]) Reached(id string) bool {
	_, ok := r.Dist[id]

	return ok
}

// PathTo reconstructs the cheapest path Source → dst, inclusive.
func (r *Result[S]) PathTo(dst string) ([]string, error) {
	if !r.Reached(dst) {
		return nil, fmt.Errorf("%w: %q", ErrUnreachable, dst)
	}
	var path []string
	for cur := dst; ; {
		path = append(path, cur)
		if cur == r.Source {
			break
		}
		cur = r.Prev[cur]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
