package reduction

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	outcomeFound  = "found"
	outcomeNoPath = "no_path"
	outcomeError  = "error"
)

var (
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reductions",
		Name:      "path_searches_total",
		Help:      "Path searches by search kind and outcome.",
	}, []string{"kind", "outcome"})

	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "reductions",
		Name:      "path_search_duration_seconds",
		Help:      "Latency of path searches.",
		Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
	}, []string{"kind"})

	resolveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reductions",
		Name:      "path_resolutions_total",
		Help:      "Variant resolutions by outcome.",
	}, []string{"outcome"})

	chainSteps = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reductions",
		Name:      "chain_steps_total",
		Help:      "Executed chain steps by edge kind.",
	}, []string{"kind"})

	chainTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reductions",
		Name:      "chains_total",
		Help:      "Chain executions by outcome.",
	}, []string{"outcome"})
)

// outcomeOf maps a search or resolve error to its label.
func outcomeOf(err error, noResult error) string {
	switch {
	case err == nil:
		return outcomeFound
	case noResult != nil && errors.Is(err, noResult):
		return outcomeNoPath
	default:
		return outcomeError
	}
}
