package strategy

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridroute/bfs"
	"github.com/katalvlaran/gridroute/dijkstra"
	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/walk"
)

const tracerName = "github.com/katalvlaran/gridroute/strategy"

// Selector runs exactly one routing algorithm per query.
// It is immutable after New and safe for concurrent use, provided each
// goroutine passes its own Request.Rand.
type Selector struct {
	logger   zerolog.Logger
	metrics  *Metrics
	tracer   trace.Tracer
	cost     dijkstra.CostFunc
	walkMode WalkMode
	maxSteps int
}

// New builds a Selector. Without options it logs nothing, records no
// metrics, uses unit move costs, the multi-step walk capped at
// walk.DefaultMaxSteps, and the global OpenTelemetry tracer provider.
func New(opts ...Option) *Selector {
	s := defaultSelector()
	s.tracer = otel.Tracer(tracerName)
	for _, opt := range opts {
		opt(&s)
	}
	return &s
}

// CalculateMove runs the algorithm chosen by Select(useBFS, useDijkstra)
// with a default Selector and returns its path. An empty path means the
// search found no route, or the walk was rejected.
func CalculateMove(start, goal grid.Coord, g *grid.Grid, useBFS, useDijkstra bool, rng *rand.Rand) (grid.Path, error) {
	res, err := New().Route(context.Background(), Request{
		Grid:        g,
		Start:       start,
		Goal:        goal,
		UseBFS:      useBFS,
		UseDijkstra: useDijkstra,
		Rand:        rng,
	})
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// Route selects an algorithm from req's flags and runs it.
//
// Errors: ErrGridNil, a context error from the BFS, or ErrNegativeCost from
// the weighted search when the configured cost function misbehaves.
// A missing route is not an error; see Result.Outcome.
func (s *Selector) Route(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	kind := Select(req.UseBFS, req.UseDijkstra)

	ctx, span := s.tracer.Start(ctx, "strategy.Route", trace.WithAttributes(
		attribute.String("strategy", kind.String()),
		attribute.String("start", req.Start.String()),
		attribute.String("goal", req.Goal.String()),
	))
	defer span.End()

	if req.Grid == nil {
		return s.fail(span, kind, req, ErrGridNil)
	}

	began := time.Now()
	res, err := s.run(ctx, kind, req)
	if err != nil {
		return s.fail(span, kind, req, err)
	}
	elapsed := time.Since(began)
	hops := res.Path.Hops()

	span.SetAttributes(
		attribute.Int("hops", hops),
		attribute.String("outcome", string(res.Outcome)),
	)
	s.metrics.observe(kind, res.Outcome, hops, elapsed)
	s.logger.Debug().
		Str("strategy", kind.String()).
		Stringer("start", req.Start).
		Stringer("goal", req.Goal).
		Int("hops", hops).
		Int64("cost", res.Cost).
		Str("outcome", string(res.Outcome)).
		Dur("elapsed", elapsed).
		Msg("route computed")

	return res, nil
}

func (s *Selector) fail(span trace.Span, kind Kind, req Request, err error) (Result, error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.metrics.observeError(kind)
	s.logger.Warn().
		Err(err).
		Str("strategy", kind.String()).
		Stringer("start", req.Start).
		Stringer("goal", req.Goal).
		Msg("route failed")
	return Result{Kind: kind}, err
}

func (s *Selector) run(ctx context.Context, kind Kind, req Request) (Result, error) {
	res := Result{Kind: kind}
	switch kind {
	case KindBFS:
		path, err := bfs.Search(req.Grid, req.Start, req.Goal, bfs.WithContext(ctx))
		if err != nil {
			return res, err
		}
		res.Path, res.Cost = path, int64(path.Hops())
		res.Outcome = searchOutcome(req, path)

	case KindDijkstra:
		path, cost, err := dijkstra.Search(req.Grid, req.Start, req.Goal, dijkstra.WithCost(s.cost))
		if err != nil {
			return res, err
		}
		res.Path, res.Cost = path, cost
		res.Outcome = searchOutcome(req, path)

	default:
		if s.walkMode == WalkSingle {
			res.Path, res.Outcome = singleStep(req)
		} else {
			wr := walk.Walk(req.Grid, req.Start, req.Goal, req.Rand, walk.WithMaxSteps(s.maxSteps))
			res.Path, res.Outcome = wr.Path, walkOutcome(wr.Outcome)
		}
		res.Cost = int64(res.Path.Hops())
	}
	return res, nil
}

func searchOutcome(req Request, path grid.Path) Outcome {
	switch {
	case len(path) > 0:
		return OutcomeReached
	case !req.Grid.Admissible(req.Start) || !req.Grid.Admissible(req.Goal):
		return OutcomeRejected
	default:
		return OutcomeNoPath
	}
}

// singleStep takes one random move. Standing on the goal already counts as reached.
func singleStep(req Request) (grid.Path, Outcome) {
	if req.Start == req.Goal && req.Grid.Admissible(req.Start) {
		return grid.Path{req.Start}, OutcomeReached
	}
	path := walk.StepPath(req.Grid, req.Start, req.Rand)
	switch {
	case len(path) == 0:
		return path, OutcomeRejected
	case path.Reaches(req.Goal):
		return path, OutcomeReached
	case len(path) == 1:
		return path, OutcomeStuck
	default:
		return path, OutcomeMoved
	}
}

func walkOutcome(o walk.Outcome) Outcome {
	switch o {
	case walk.OutcomeReached:
		return OutcomeReached
	case walk.OutcomeStuck:
		return OutcomeStuck
	case walk.OutcomeGaveUp:
		return OutcomeGaveUp
	default:
		return OutcomeRejected
	}
}
