package strategy

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/gridroute/grid"
)

// Sentinel errors for strategy selection.
var (
	// ErrGridNil is returned when a route is requested on a nil grid.
	ErrGridNil = errors.New("strategy: grid is nil")

	// ErrUnknownKind is returned for a Kind or name outside the known strategies.
	ErrUnknownKind = errors.New("strategy: unknown strategy")

	// ErrInvalidOdds is returned when a percentage lies outside [0,100].
	ErrInvalidOdds = errors.New("strategy: odds must be within [0,100]")
)

// Kind names a routing algorithm.
type Kind int

const (
	// KindBFS is the unweighted shortest-path search.
	KindBFS Kind = iota
	// KindDijkstra is the weighted shortest-path search.
	KindDijkstra
	// KindRandomWalk is the unguided random walk.
	KindRandomWalk
)

// String returns the label used in logs, metrics and configuration.
func (k Kind) String() string {
	switch k {
	case KindBFS:
		return "bfs"
	case KindDijkstra:
		return "dijkstra"
	case KindRandomWalk:
		return "random_walk"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps a label back to a Kind. "walk" is accepted for KindRandomWalk.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return KindBFS, nil
	case "dijkstra":
		return KindDijkstra, nil
	case "random_walk", "walk", "random":
		return KindRandomWalk, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Select applies the priority chain: BFS, else Dijkstra, else random walk.
func Select(useBFS, useDijkstra bool) Kind {
	switch {
	case useBFS:
		return KindBFS
	case useDijkstra:
		return KindDijkstra
	default:
		return KindRandomWalk
	}
}

// Flags returns the (useBFS, useDijkstra) pair that Select maps back to k.
func (k Kind) Flags() (useBFS, useDijkstra bool) {
	switch k {
	case KindBFS:
		return true, false
	case KindDijkstra:
		return false, true
	default:
		return false, false
	}
}

// Request is a single route query.
type Request struct {
	Grid        *grid.Grid
	Start, Goal grid.Coord
	UseBFS      bool
	UseDijkstra bool
	// Rand drives the random walk; nil selects the walk package's default stream.
	Rand *rand.Rand
}

// Outcome classifies a routed query.
type Outcome string

const (
	// OutcomeReached: the path ends on the goal.
	OutcomeReached Outcome = "reached"
	// OutcomeNoPath: a search exhausted the grid without reaching the goal.
	OutcomeNoPath Outcome = "no_path"
	// OutcomeRejected: start (or, for searches, goal) is blocked or out of bounds.
	OutcomeRejected Outcome = "rejected"
	// OutcomeStuck: the random walker had no admissible move.
	OutcomeStuck Outcome = "stuck"
	// OutcomeGaveUp: the random walk used up its step budget.
	OutcomeGaveUp Outcome = "gave_up"
	// OutcomeMoved: a single random step was taken without reaching the goal.
	OutcomeMoved Outcome = "moved"
)

// Result is what a routed query produced.
type Result struct {
	Kind    Kind
	Path    grid.Path
	Cost    int64 // total move cost for KindDijkstra; hop count otherwise
	Outcome Outcome
}

// WalkMode chooses which random-walk variant KindRandomWalk runs.
type WalkMode int

const (
	// WalkMulti walks until the goal, a dead end, or the step cap.
	WalkMulti WalkMode = iota
	// WalkSingle takes one random step: [start, next].
	WalkSingle
)

// String returns "multi" or "single".
func (m WalkMode) String() string {
	if m == WalkSingle {
		return "single"
	}
	return "multi"
}

// ParseWalkMode maps "multi"/"single" (case-insensitive, empty = multi) to a WalkMode.
func ParseWalkMode(s string) (WalkMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "multi":
		return WalkMulti, nil
	case "single":
		return WalkSingle, nil
	default:
		return 0, fmt.Errorf("strategy: unknown walk mode %q", s)
	}
}
