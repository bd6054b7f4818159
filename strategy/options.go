package strategy

import (
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridroute/dijkstra"
	"github.com/katalvlaran/gridroute/walk"
)

// Option configures a Selector.
type Option func(*Selector)

// WithLogger sets the logger used for per-route debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Selector) {
		s.logger = l
	}
}

// WithMetrics attaches Prometheus collectors built by NewMetrics.
// A nil *Metrics disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(s *Selector) {
		s.metrics = m
	}
}

// WithTracer sets the tracer used for the "strategy.Route" span.
// A nil tracer is ignored.
func WithTracer(t trace.Tracer) Option {
	return func(s *Selector) {
		if t != nil {
			s.tracer = t
		}
	}
}

// WithCost sets the move cost used by the weighted search.
// Panics if fn is nil.
func WithCost(fn dijkstra.CostFunc) Option {
	if fn == nil {
		panic("strategy: WithCost(nil)")
	}
	return func(s *Selector) {
		s.cost = fn
	}
}

// WithWalkMode picks the random-walk variant.
func WithWalkMode(m WalkMode) Option {
	if m != WalkMulti && m != WalkSingle {
		panic("strategy: WithWalkMode: unknown mode")
	}
	return func(s *Selector) {
		s.walkMode = m
	}
}

// WithMaxSteps caps the multi-step walk. Panics if n <= 0.
func WithMaxSteps(n int) Option {
	if n <= 0 {
		panic("strategy: WithMaxSteps requires n > 0")
	}
	return func(s *Selector) {
		s.maxSteps = n
	}
}

func defaultSelector() Selector {
	return Selector{
		logger:   zerolog.Nop(),
		cost:     dijkstra.UnitCost,
		walkMode: WalkMulti,
		maxSteps: walk.DefaultMaxSteps,
	}
}
