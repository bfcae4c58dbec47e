// SPDX-License-Identifier: MIT
//
// File: execute.go
// Role: Executor: run the transforms of a resolved path and keep what is
//       needed to map a solution of the final instance back to the source.
// Contract:
//   - All-or-nothing: any failing step returns no chain.
//   - ctx carries tracing only; there is no cancellation at this layer.

package reduction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/reductions/catalog"
	"github.com/katalvlaran/reductions/problem"
)

// Chain is the result of executing a resolved path: every intermediate
// instance plus one extractor per edge (nil for casts).
type Chain struct {
	id         uuid.UUID
	path       *ResolvedPath
	instances  []problem.Problem
	extractors []catalog.ExtractFunc
}

// ID identifies the chain in logs and traces.
func (c *Chain) ID() uuid.UUID { return c.id }

// Path returns the resolved path the chain was built from.
func (c *Chain) Path() *ResolvedPath { return c.path }

// Source returns the instance the chain started from.
func (c *Chain) Source() problem.Problem { return c.instances[0] }

// Target returns the final instance.
func (c *Chain) Target() problem.Problem { return c.instances[len(c.instances)-1] }

// Instances returns every instance, source first. len == Path().Len()+1.
func (c *Chain) Instances() []problem.Problem { return append([]problem.Problem(nil), c.instances...) }

// ExtractSolution maps a configuration of Target back to Source by running
// the extractors in reverse. Cast steps pass the configuration through.
func (c *Chain) ExtractSolution(cfg problem.Config) (problem.Config, error) {
	cur := cfg.Clone()
	for i := len(c.extractors) - 1; i >= 0; i-- {
		ext := c.extractors[i]
		if ext == nil {
			continue
		}
		next, err := ext(cur)
		if err != nil {
			return nil, fmt.Errorf("reduction: chain %s: extract step %d (%s): %w", c.id, i, c.path.Edges[i].Rule, err)
		}
		cur = next
	}

	return cur, nil
}

// ReduceAlongPath runs every edge of rp starting from src.
//
// Steps:
//  1. src must match the first step exactly (name and variant).
//  2. Reduction edges: look up the rule by its exact 4-tuple, check the
//     instance's size fields cover the overhead, run Reduce.
//  3. Cast edges: use the catalog cast for the name, else src's own Widen.
//  4. Every produced instance must equal the next step exactly.
//
// Errors: ErrSourceMismatch, ErrNoTransform, ErrNoCast,
// catalog.ErrOverheadFieldMismatch, ErrExecution (wrapping the transform's
// own error unchanged).
func (g *Graph) ReduceAlongPath(ctx context.Context, rp *ResolvedPath, src problem.Problem) (chain *Chain, err error) {
	id := uuid.New()
	_, span := g.opts.tracer.Start(ctx, "reduction.ReduceAlongPath", trace.WithAttributes(
		attribute.String("reduction.chain_id", id.String()),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			chainTotal.WithLabelValues(outcomeError).Inc()
		} else {
			chainTotal.WithLabelValues(outcomeFound).Inc()
		}
		span.End()
	}()

	// 1) Source check
	if rp == nil || len(rp.Steps) == 0 {
		return nil, fmt.Errorf("%w: empty resolved path", ErrExecution)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil source instance", ErrSourceMismatch)
	}
	first := rp.Steps[0]
	if src.Name() != first.Name || !src.Variant().Equal(first.Variant) {
		return nil, fmt.Errorf("%w: got %s%s, path starts at %s", ErrSourceMismatch, src.Name(), src.Variant(), first)
	}
	span.SetAttributes(
		attribute.String("reduction.source", first.String()),
		attribute.String("reduction.target", rp.Target().String()),
		attribute.Int("reduction.steps", rp.Len()),
	)

	c := &Chain{
		id:         id,
		path:       rp,
		instances:  make([]problem.Problem, 0, len(rp.Steps)),
		extractors: make([]catalog.ExtractFunc, 0, len(rp.Edges)),
	}
	c.instances = append(c.instances, src)

	// 2-4) Edges
	cur := src
	for i, e := range rp.Edges {
		from, to := rp.Steps[i], rp.Steps[i+1]
		next, ext, err := g.runEdge(i, e, from, to, cur)
		if err != nil {
			return nil, err
		}
		if next == nil {
			return nil, fmt.Errorf("%w: step %d produced no instance", ErrExecution, i)
		}
		if next.Name() != to.Name || !next.Variant().Equal(to.Variant) {
			return nil, fmt.Errorf("%w: step %d produced %s%s, want %s",
				ErrExecution, i, next.Name(), next.Variant(), to)
		}
		chainSteps.WithLabelValues(e.Kind.String()).Inc()
		g.opts.logger.Debug("chain step",
			slog.String("chain", id.String()),
			slog.Int("step", i),
			slog.String("kind", e.Kind.String()),
			slog.String("to", to.String()))
		c.instances = append(c.instances, next)
		c.extractors = append(c.extractors, ext)
		cur = next
	}

	return c, nil
}

// runEdge performs one edge and returns the next instance and its extractor.
func (g *Graph) runEdge(i int, e Edge, from, to Step, cur problem.Problem) (problem.Problem, catalog.ExtractFunc, error) {
	switch e.Kind {
	case KindReduction:
		r, ok := g.cat.Lookup(from.Name, from.Variant, to.Name, to.Variant)
		if !ok {
			return nil, nil, fmt.Errorf("%w: step %d: no rule %s -> %s", ErrNoTransform, i, from, to)
		}
		if r.Reduce == nil {
			return nil, nil, fmt.Errorf("%w: step %d: %s", ErrNoTransform, i, r)
		}
		if err := r.Overhead.Validate(cur.Size().Names()); err != nil {
			return nil, nil, fmt.Errorf("reduction: step %d (%s): %w", i, r, err)
		}
		next, ext, err := r.Reduce(cur)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: step %d (%s): %w", ErrExecution, i, r, err)
		}

		return next, ext, nil

	case KindNaturalCast:
		if cast, ok := g.cat.Cast(from.Name); ok && cast != nil {
			next, err := cast(cur, to.Variant.Clone())
			if err != nil {
				return nil, nil, fmt.Errorf("%w: step %d cast %s -> %s: %w", ErrExecution, i, from, to, err)
			}

			return next, nil, nil
		}
		if w, ok := cur.(problem.Widener); ok {
			next, err := w.Widen(to.Variant.Clone())
			if err != nil {
				return nil, nil, fmt.Errorf("%w: step %d cast %s -> %s: %w", ErrExecution, i, from, to, err)
			}

			return next, nil, nil
		}

		return nil, nil, fmt.Errorf("%w: step %d: %s", ErrNoCast, i, from.Name)

	default:
		return nil, nil, fmt.Errorf("%w: step %d: unknown edge kind %s", ErrExecution, i, e.Kind)
	}
}
