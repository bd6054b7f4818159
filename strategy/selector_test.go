package strategy_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/katalvlaran/gridroute/bfs"
	"github.com/katalvlaran/gridroute/dijkstra"
	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/strategy"
	"github.com/katalvlaran/gridroute/walk"
)

func at(r, c int) grid.Coord { return grid.Coord{Row: r, Col: c} }

// walled is a 10×10 board with a wall on column 4, rows 3–5.
func walled(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(10, 10, at(3, 4), at(4, 4), at(5, 4))
	require.NoError(t, err)
	return g
}

func TestSelect(t *testing.T) {
	cases := []struct {
		useBFS, useDijkstra bool
		want                strategy.Kind
	}{
		{true, true, strategy.KindBFS},
		{true, false, strategy.KindBFS},
		{false, true, strategy.KindDijkstra},
		{false, false, strategy.KindRandomWalk},
	}
	for _, tc := range cases {
		got := strategy.Select(tc.useBFS, tc.useDijkstra)
		assert.Equal(t, tc.want, got, "Select(%v, %v)", tc.useBFS, tc.useDijkstra)

		b, d := got.Flags()
		assert.Equal(t, got, strategy.Select(b, d), "Flags must round-trip through Select")
	}
}

func TestKind_StringAndParse(t *testing.T) {
	for _, k := range []strategy.Kind{strategy.KindBFS, strategy.KindDijkstra, strategy.KindRandomWalk} {
		parsed, err := strategy.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	parsed, err := strategy.ParseKind(" Walk ")
	require.NoError(t, err)
	assert.Equal(t, strategy.KindRandomWalk, parsed)

	_, err = strategy.ParseKind("astar")
	assert.ErrorIs(t, err, strategy.ErrUnknownKind)
	assert.Equal(t, "kind(9)", strategy.Kind(9).String())
}

func TestParseWalkMode(t *testing.T) {
	m, err := strategy.ParseWalkMode("")
	require.NoError(t, err)
	assert.Equal(t, strategy.WalkMulti, m)

	m, err = strategy.ParseWalkMode("SINGLE")
	require.NoError(t, err)
	assert.Equal(t, strategy.WalkSingle, m)
	assert.Equal(t, "single", m.String())

	_, err = strategy.ParseWalkMode("double")
	assert.Error(t, err)
}

func TestCalculateMove_BFSTakesPriority(t *testing.T) {
	g := walled(t)
	want, err := bfs.Search(g, at(4, 2), at(4, 6))
	require.NoError(t, err)

	for _, useDijkstra := range []bool{true, false} {
		got, err := strategy.CalculateMove(at(4, 2), at(4, 6), g, true, useDijkstra, nil)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestCalculateMove_DijkstraWhenBFSOff(t *testing.T) {
	g := walled(t)
	want, _, err := dijkstra.Search(g, at(4, 2), at(4, 6))
	require.NoError(t, err)

	got, err := strategy.CalculateMove(at(4, 2), at(4, 6), g, false, true, nil)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 8, got.Hops())
}

func TestCalculateMove_RandomWalkOtherwise(t *testing.T) {
	g, err := grid.New(1, 6)
	require.NoError(t, err)

	got, err := strategy.CalculateMove(at(0, 0), at(0, 5), g, false, false, walk.NewRand(3))
	require.NoError(t, err)
	require.NoError(t, got.Validate(g))
	assert.Equal(t, at(0, 0), got[0])
	assert.True(t, got.Reaches(at(0, 5)))

	// The selector consumes the caller's stream exactly like walk.Walk does.
	want := walk.Walk(g, at(0, 0), at(0, 5), walk.NewRand(3))
	assert.Equal(t, want.Path, got)
}

func TestCalculateMove_NilGrid(t *testing.T) {
	_, err := strategy.CalculateMove(at(0, 0), at(0, 0), nil, true, false, nil)
	assert.ErrorIs(t, err, strategy.ErrGridNil)
}

func TestRoute_Outcomes(t *testing.T) {
	enclosed, err := grid.FromMatrix([][]int{
		{0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
	})
	require.NoError(t, err)
	sealed, err := grid.FromMatrix([][]int{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	})
	require.NoError(t, err)

	cases := []struct {
		name        string
		g           *grid.Grid
		start, goal grid.Coord
		kind        strategy.Kind
		want        strategy.Outcome
	}{
		{"BFSReached", enclosed, at(0, 0), at(3, 4), strategy.KindBFS, strategy.OutcomeReached},
		{"BFSNoPath", enclosed, at(0, 0), at(2, 2), strategy.KindBFS, strategy.OutcomeNoPath},
		{"DijkstraNoPath", enclosed, at(0, 0), at(2, 2), strategy.KindDijkstra, strategy.OutcomeNoPath},
		{"BFSBlockedGoal", enclosed, at(0, 0), at(1, 2), strategy.KindBFS, strategy.OutcomeRejected},
		{"DijkstraOutOfBounds", enclosed, at(0, 0), at(9, 9), strategy.KindDijkstra, strategy.OutcomeRejected},
		{"WalkBlockedStart", enclosed, at(1, 2), at(0, 0), strategy.KindRandomWalk, strategy.OutcomeRejected},
		{"WalkStuck", sealed, at(1, 1), at(0, 0), strategy.KindRandomWalk, strategy.OutcomeStuck},
		{"WalkAtGoal", sealed, at(1, 1), at(1, 1), strategy.KindRandomWalk, strategy.OutcomeReached},
	}

	sel := strategy.New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			useBFS, useDijkstra := tc.kind.Flags()
			res, err := sel.Route(context.Background(), strategy.Request{
				Grid: tc.g, Start: tc.start, Goal: tc.goal,
				UseBFS: useBFS, UseDijkstra: useDijkstra,
				Rand: walk.NewRand(11),
			})
			require.NoError(t, err)
			assert.Equal(t, tc.kind, res.Kind)
			assert.Equal(t, tc.want, res.Outcome)
			if tc.want == strategy.OutcomeReached {
				assert.True(t, res.Path.Reaches(tc.goal))
			}
		})
	}
}

func TestRoute_WeightedCost(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	toll := func(_, to grid.Coord) int64 {
		if to == at(0, 1) {
			return 100
		}
		return 1
	}
	sel := strategy.New(strategy.WithCost(toll))

	res, err := sel.Route(context.Background(), strategy.Request{
		Grid: g, Start: at(0, 0), Goal: at(0, 2), UseDijkstra: true,
	})
	require.NoError(t, err)
	assert.Equal(t, grid.Path{at(0, 0), at(1, 0), at(1, 1), at(1, 2), at(0, 2)}, res.Path)
	assert.Equal(t, int64(4), res.Cost)

	// BFS ignores costs.
	res, err = sel.Route(context.Background(), strategy.Request{
		Grid: g, Start: at(0, 0), Goal: at(0, 2), UseBFS: true, UseDijkstra: true,
	})
	require.NoError(t, err)
	assert.Equal(t, grid.Path{at(0, 0), at(0, 1), at(0, 2)}, res.Path)
	assert.Equal(t, int64(2), res.Cost)
}

func TestRoute_NegativeCost(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	sel := strategy.New(strategy.WithCost(func(_, _ grid.Coord) int64 { return -1 }))

	res, err := sel.Route(context.Background(), strategy.Request{
		Grid: g, Start: at(0, 0), Goal: at(1, 1), UseDijkstra: true,
	})
	assert.ErrorIs(t, err, dijkstra.ErrNegativeCost)
	assert.Equal(t, strategy.KindDijkstra, res.Kind)
	assert.Empty(t, res.Path)
}

func TestRoute_SingleStepMode(t *testing.T) {
	g, err := grid.New(1, 3)
	require.NoError(t, err)
	sel := strategy.New(strategy.WithWalkMode(strategy.WalkSingle))

	route := func(start, goal grid.Coord) strategy.Result {
		t.Helper()
		res, err := sel.Route(context.Background(), strategy.Request{
			Grid: g, Start: start, Goal: goal, Rand: walk.NewRand(5),
		})
		require.NoError(t, err)
		return res
	}

	res := route(at(0, 0), at(0, 1))
	assert.Equal(t, grid.Path{at(0, 0), at(0, 1)}, res.Path)
	assert.Equal(t, strategy.OutcomeReached, res.Outcome)

	res = route(at(0, 0), at(0, 2))
	assert.Equal(t, grid.Path{at(0, 0), at(0, 1)}, res.Path)
	assert.Equal(t, strategy.OutcomeMoved, res.Outcome)
	assert.Equal(t, int64(1), res.Cost)

	res = route(at(0, 2), at(0, 2))
	assert.Equal(t, grid.Path{at(0, 2)}, res.Path)
	assert.Equal(t, strategy.OutcomeReached, res.Outcome)

	lone, err := grid.New(1, 1)
	require.NoError(t, err)
	res, err = sel.Route(context.Background(), strategy.Request{Grid: lone, Start: at(0, 0), Goal: at(3, 3)})
	require.NoError(t, err)
	assert.Equal(t, grid.Path{at(0, 0)}, res.Path)
	assert.Equal(t, strategy.OutcomeStuck, res.Outcome)
}

func TestRoute_MaxSteps(t *testing.T) {
	g, err := grid.New(1, 50)
	require.NoError(t, err)
	sel := strategy.New(strategy.WithMaxSteps(3))

	res, err := sel.Route(context.Background(), strategy.Request{
		Grid: g, Start: at(0, 0), Goal: at(0, 49), Rand: walk.NewRand(2),
	})
	require.NoError(t, err)
	assert.Equal(t, strategy.OutcomeGaveUp, res.Outcome)
	assert.Len(t, res.Path, 4)
	assert.Equal(t, int64(3), res.Cost)
}

func TestRoute_Cancelled(t *testing.T) {
	g := walled(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := strategy.New().Route(ctx, strategy.Request{
		Grid: g, Start: at(0, 0), Goal: at(9, 9), UseBFS: true,
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRoute_Logging(t *testing.T) {
	var buf bytes.Buffer
	sel := strategy.New(strategy.WithLogger(zerolog.New(&buf)))

	g, err := grid.New(1, 3)
	require.NoError(t, err)
	_, err = sel.Route(context.Background(), strategy.Request{
		Grid: g, Start: at(0, 0), Goal: at(0, 2), UseBFS: true,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"level":"debug"`)
	assert.Contains(t, out, `"strategy":"bfs"`)
	assert.Contains(t, out, `"start":"(0,0)"`)
	assert.Contains(t, out, `"goal":"(0,2)"`)
	assert.Contains(t, out, `"hops":2`)
	assert.Contains(t, out, `"outcome":"reached"`)
	assert.Contains(t, out, `"message":"route computed"`)

	buf.Reset()
	_, err = sel.Route(context.Background(), strategy.Request{Start: at(0, 0), Goal: at(0, 2)})
	require.ErrorIs(t, err, strategy.ErrGridNil)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"strategy":"random_walk"`)
}

func TestRoute_WithTracer(t *testing.T) {
	tracer := noop.NewTracerProvider().Tracer("test")
	sel := strategy.New(strategy.WithTracer(tracer), strategy.WithTracer(nil))

	g, err := grid.New(2, 2)
	require.NoError(t, err)
	res, err := sel.Route(context.Background(), strategy.Request{
		Grid: g, Start: at(0, 0), Goal: at(1, 1), UseDijkstra: true,
	})
	require.NoError(t, err)
	assert.Equal(t, strategy.OutcomeReached, res.Outcome)
	assert.Equal(t, int64(2), res.Cost)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { strategy.WithCost(nil) })
	assert.Panics(t, func() { strategy.WithMaxSteps(0) })
	assert.Panics(t, func() { strategy.WithWalkMode(strategy.WalkMode(7)) })
	assert.NotPanics(t, func() { strategy.WithMetrics(nil) })
}
