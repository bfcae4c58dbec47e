// Package dfs defines visitation states, errors and options shared by
// cycle enumeration and simple-path enumeration.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

// Vertex visitation states.
const (
	White = iota // not visited yet
	Gray         // on the current recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to AllSimplePaths.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrPathLimit is returned when AllSimplePaths produced more than
	// the configured number of paths.
	ErrPathLimit = errors.New("dfs: path limit exceeded")
)

// Option configures AllSimplePaths.
type Option func(*Options)

// Options bounds simple-path enumeration, which is exponential in the worst case.
type Options struct {
	// Ctx allows cancellation; checked on every vertex entry.
	Ctx context.Context

	// MaxDepth limits path length in edges. Zero means unlimited.
	MaxDepth int

	// MaxPaths aborts with ErrPathLimit once more paths than this were found.
	// Zero means unlimited.
	MaxPaths int

	err error
}

// DefaultOptions returns unbounded Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits enumerated paths to at most limit edges.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)

			return
		}
		o.MaxDepth = limit
	}
}

// WithMaxPaths caps the number of enumerated paths.
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxPaths = n
	}
}
