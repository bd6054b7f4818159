package strategy

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors a Selector updates per route.
type Metrics struct {
	queries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	hops     prometheus.Histogram
}

// NewMetrics creates and registers the route collectors on reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		queries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gridroute",
			Name:      "route_queries_total",
			Help:      "Route queries by strategy and outcome.",
		}, []string{"strategy", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gridroute",
			Name:      "route_duration_seconds",
			Help:      "Time spent computing a route.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"strategy"}),
		hops: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gridroute",
			Name:      "route_hops",
			Help:      "Moves in returned routes.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}
}

func (m *Metrics) observe(kind Kind, outcome Outcome, hops int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(kind.String(), string(outcome)).Inc()
	m.duration.WithLabelValues(kind.String()).Observe(elapsed.Seconds())
	m.hops.Observe(float64(hops))
}

func (m *Metrics) observeError(kind Kind) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(kind.String(), "error").Inc()
}
