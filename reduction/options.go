package reduction

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/katalvlaran/reductions/reduction"

// Option configures a Graph.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	maxCost float64
	tracer  trace.Tracer
}

func defaultOptions() options {
	return options{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxCost: math.Inf(1),
		tracer:  otel.Tracer(instrumentationName),
	}
}

// WithLogger sets the structured logger. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("reduction: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}

// WithMaxCost bounds the accumulated cost FindCheapestPath explores.
// Panics if limit is negative or NaN.
func WithMaxCost(limit float64) Option {
	if limit < 0 || math.IsNaN(limit) {
		panic(fmt.Sprintf("reduction: WithMaxCost(%v): limit must be a non-negative number", limit))
	}

	return func(o *options) { o.maxCost = limit }
}

// WithTracerProvider sets where chain execution spans go. The global
// provider is used otherwise. Panics if tp is nil.
func WithTracerProvider(tp trace.TracerProvider) Option {
	if tp == nil {
		panic("reduction: WithTracerProvider(nil)")
	}

	return func(o *options) { o.tracer = tp.Tracer(instrumentationName) }
}
