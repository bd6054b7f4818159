package walk

import (
	"fmt"

	"github.com/katalvlaran/gridroute/grid"
)

// DefaultMaxSteps bounds a Walk when no WithMaxSteps option is given.
const DefaultMaxSteps = 10000

// Outcome classifies how a Walk ended.
type Outcome int

const (
	// OutcomeReached means the walk ended on the goal.
	OutcomeReached Outcome = iota
	// OutcomeStuck means the walker had no admissible move.
	OutcomeStuck
	// OutcomeGaveUp means the step budget ran out first.
	OutcomeGaveUp
	// OutcomeRejected means the start cell was not admissible.
	OutcomeRejected
)

// String returns a lower-case label, suitable for logs and metric labels.
func (o Outcome) String() string {
	switch o {
	case OutcomeReached:
		return "reached"
	case OutcomeStuck:
		return "stuck"
	case OutcomeGaveUp:
		return "gave_up"
	case OutcomeRejected:
		return "rejected"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is the outcome of a multi-step Walk.
type Result struct {
	Path    grid.Path
	Outcome Outcome
	Steps   int // number of moves made, Path.Hops()
}

// Options configures Walk.
type Options struct {
	// MaxSteps is the most moves a walk may make before giving up. Always > 0.
	MaxSteps int
}

// Option is a functional option for Walk.
type Option func(*Options)

// DefaultOptions returns Options{MaxSteps: DefaultMaxSteps}.
func DefaultOptions() Options {
	return Options{MaxSteps: DefaultMaxSteps}
}

// WithMaxSteps caps the number of moves. Panics on n ≤ 0.
func WithMaxSteps(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("walk: WithMaxSteps(%d): must be positive", n))
	}
	return func(o *Options) {
		o.MaxSteps = n
	}
}
