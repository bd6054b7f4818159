package walk

import (
	"math/rand"

	"github.com/katalvlaran/gridroute/grid"
)

// Step returns a uniformly random admissible 4-neighbour of current,
// or current itself when no neighbour is admissible.
// A nil rng uses the default deterministic stream.
func Step(g *grid.Grid, current grid.Coord, rng *rand.Rand) grid.Coord {
	moves := g.Neighbors(current)
	if len(moves) == 0 {
		return current
	}
	return moves[orDefault(rng).Intn(len(moves))]
}

// StepPath is the single-step route: [start, Step(start)], or [start] when
// the walker cannot move. An inadmissible start yields an empty path.
func StepPath(g *grid.Grid, start grid.Coord, rng *rand.Rand) grid.Path {
	if !g.Admissible(start) {
		return grid.Path{}
	}
	next := Step(g, start, rng)
	if next == start {
		return grid.Path{start}
	}
	return grid.Path{start, next}
}

// Walk applies Step from start until it lands on goal, cannot move, or has
// made MaxSteps moves. The returned path starts at start and records every
// cell landed on, revisits included.
func Walk(g *grid.Grid, start, goal grid.Coord, rng *rand.Rand, opts ...Option) Result {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !g.Admissible(start) {
		return Result{Path: grid.Path{}, Outcome: OutcomeRejected}
	}
	r := orDefault(rng)

	path := grid.Path{start}
	current := start
	for current != goal {
		if len(path)-1 >= cfg.MaxSteps {
			return Result{Path: path, Outcome: OutcomeGaveUp, Steps: path.Hops()}
		}
		next := Step(g, current, r)
		if next == current {
			return Result{Path: path, Outcome: OutcomeStuck, Steps: path.Hops()}
		}
		path = append(path, next)
		current = next
	}

	return Result{Path: path, Outcome: OutcomeReached, Steps: path.Hops()}
}
