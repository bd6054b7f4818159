package board

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/gridroute/grid"
)

// Sentinel errors for board construction and parsing.
var (
	// ErrTooSmall indicates the requested dimensions cannot hold the tanks.
	ErrTooSmall = errors.New("board: dimensions too small")

	// ErrSyntax indicates an unknown symbol or a repeated S/G marker in map text.
	ErrSyntax = errors.New("board: invalid map text")
)

// Render symbols.
const (
	SymbolFree     = '.'
	SymbolObstacle = 'O'
	SymbolRoute    = '*'
	SymbolStart    = 'S'
	SymbolGoal     = 'G'
)

// Tank labels in placement order: top-left, top-right, bottom-left, bottom-right.
var TankLabels = [4]rune{'A', 'B', 'C', 'D'}

// Tank is a labelled group of cells occupied by one tank.
type Tank struct {
	Label rune
	Cells []grid.Coord
}

// Board is a grid with tanks and, when parsed, optional S/G markers.
type Board struct {
	Grid    *grid.Grid
	Tanks   []Tank
	markers map[rune]grid.Coord
}

// Rows returns the number of rows of the underlying grid.
func (b *Board) Rows() int { return b.Grid.Rows }

// Cols returns the number of columns of the underlying grid.
func (b *Board) Cols() int { return b.Grid.Cols }

// TankAt returns the label of the tank occupying c.
func (b *Board) TankAt(c grid.Coord) (rune, bool) {
	for _, t := range b.Tanks {
		for _, tc := range t.Cells {
			if tc == c {
				return t.Label, true
			}
		}
	}
	return 0, false
}

// Tank returns the tank with the given label.
func (b *Board) Tank(label rune) (Tank, bool) {
	for _, t := range b.Tanks {
		if t.Label == label {
			return t, true
		}
	}
	return Tank{}, false
}

// Marker returns the coordinate of an S or G marker read by Parse.
func (b *Board) Marker(symbol rune) (grid.Coord, bool) {
	c, ok := b.markers[symbol]
	return c, ok
}

// Option customizes Generate.
type Option func(*config)

type config struct {
	obstaclePercent int
	margin          int
	tanks           bool
	rng             *rand.Rand
}

const (
	// DefaultObstaclePercent is the chance, in percent, that an interior cell is blocked.
	DefaultObstaclePercent = 10
	// DefaultMargin is the width of the obstacle-free border ring.
	DefaultMargin = 2

	defaultSeed int64 = 1
)

func newConfig(opts ...Option) config {
	cfg := config{
		obstaclePercent: DefaultObstaclePercent,
		margin:          DefaultMargin,
		tanks:           true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}
	return cfg
}

// WithObstaclePercent sets the obstacle probability in percent.
// Panics if p is outside [0,100].
func WithObstaclePercent(p int) Option {
	if p < 0 || p > 100 {
		panic("board: WithObstaclePercent requires 0 <= p <= 100")
	}
	return func(c *config) {
		c.obstaclePercent = p
	}
}

// WithMargin sets the width of the obstacle-free ring. Panics if m < 0.
func WithMargin(m int) Option {
	if m < 0 {
		panic("board: WithMargin requires m >= 0")
	}
	return func(c *config) {
		c.margin = m
	}
}

// WithTanks enables or disables tank placement (enabled by default).
func WithTanks(enabled bool) Option {
	return func(c *config) {
		c.tanks = enabled
	}
}

// WithRand provides the random source for obstacle draws. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("board: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed draws obstacles from a fresh source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
