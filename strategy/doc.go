// Package strategy picks one of the three routing algorithms for a query
// and runs it.
//
// Selection is a priority chain, not a set of independent chances:
//
//	useBFS          → bfs.Search
//	else useDijkstra → dijkstra.Search
//	else             → walk.Walk (or walk.StepPath in single-step mode)
//
// Exactly one algorithm runs per call. The two flags are opaque inputs; the
// selector itself draws no random numbers other than those the random walk
// consumes from the caller's source. DrawFlags is the separate sampler the
// demo uses to produce the flags (50% and 80% by default).
//
// Selector adds the ambient concerns around a route query:
//
//   - a zerolog debug event per route (strategy, endpoints, hops, outcome),
//   - Prometheus counters and histograms (see NewMetrics),
//   - an OpenTelemetry span named "strategy.Route".
//
// All three are optional; the zero configuration logs nothing, records no
// metrics and uses the global tracer provider.
package strategy
