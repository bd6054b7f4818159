// Package dijkstra defines configuration options and sentinel errors
// for weighted routing on a grid.Grid.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridroute/grid"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrGridNil indicates that a nil *grid.Grid was passed to Search.
	ErrGridNil = errors.New("dijkstra: grid is nil")

	// ErrNegativeCost indicates that the cost function produced a negative move cost.
	ErrNegativeCost = errors.New("dijkstra: negative move cost encountered")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

	// ErrBadImpassableCost indicates that ImpassableCost was set to zero or negative,
	// which would turn every move into a wall.
	ErrBadImpassableCost = errors.New("dijkstra: ImpassableCost must be positive")
)

// CostFunc returns the cost of moving from one admissible cell to an
// adjacent admissible cell. It must be pure and must not return a negative value.
type CostFunc func(from, to grid.Coord) int64

// UnitCost charges 1 for every move.
func UnitCost(_, _ grid.Coord) int64 { return 1 }

// Options configures the behavior of Search.
//
// Cost           – per-move cost; default UnitCost.
// MaxCost        – optional cap on route cost; cells beyond it are not explored.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// ImpassableCost – moves whose cost is ≥ this threshold are skipped.
//
//	Must be > 0. Default is math.MaxInt64 (no walls beyond the grid's own).
type Options struct {
	Cost           CostFunc
	MaxCost        int64
	ImpassableCost int64
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithCost sets the per-move cost function. Panics on nil.
func WithCost(fn CostFunc) Option {
	if fn == nil {
		panic("dijkstra: WithCost(nil)")
	}
	return func(o *Options) {
		o.Cost = fn
	}
}

// WithMaxCost sets a maximum route cost.
// Cells whose cheapest cost would exceed this value are not explored.
// Panics with ErrBadMaxCost on negative values.
func WithMaxCost(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxCost.Error())
	}
	return func(o *Options) {
		o.MaxCost = max
	}
}

// WithImpassableCost defines a cost threshold at or above which a move is
// considered non-traversable. Panics with ErrBadImpassableCost on values ≤ 0.
func WithImpassableCost(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadImpassableCost.Error())
	}
	return func(o *Options) {
		o.ImpassableCost = threshold
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Cost:           UnitCost.
//   - MaxCost:        math.MaxInt64 (no cap).
//   - ImpassableCost: math.MaxInt64 (no extra walls).
func DefaultOptions() Options {
	return Options{
		Cost:           UnitCost,
		MaxCost:        math.MaxInt64,
		ImpassableCost: math.MaxInt64,
	}
}
