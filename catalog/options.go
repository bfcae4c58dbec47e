package catalog

import (
	"io"
	"log/slog"
)

// Option configures catalog construction.
type Option func(*options)

type options struct {
	strict bool
	logger *slog.Logger
}

func defaultOptions() options {
	return options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithStrictAmbiguity rejects catalogs containing ambiguous rule pairs with
// ErrAmbiguousRules instead of resolving them by source-variant key order.
func WithStrictAmbiguity() Option {
	return func(o *options) { o.strict = true }
}

// WithLogger sets the logger used for build summaries and tie-break warnings.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("catalog: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}
