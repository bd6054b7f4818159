// Package grid defines core types and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridroute.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside [0,Rows)×[0,Cols).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrBrokenPath indicates a path that skips a cell or steps onto a blocked one.
	ErrBrokenPath = errors.New("grid: path is not a chain of admissible 4-neighbour steps")
)

// Coord is a zero-based (Row, Col) cell coordinate.
// Two coordinates are equal iff both components match, so Coord is usable
// as a map key.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Less reports whether c precedes o in row-major order:
// lower row first, then lower column.
// Used for deterministic ordering only; no algorithm depends on it.
func (c Coord) Less(o Coord) bool {
	if c.Row == o.Row {
		return c.Col < o.Col
	}
	return c.Row < o.Row
}

// Compare is the three-way form of Less, suitable for slices.SortFunc.
func Compare(a, b Coord) int {
	switch {
	case a == b:
		return 0
	case a.Less(b):
		return -1
	default:
		return 1
	}
}

// Adjacent reports whether a and b differ by exactly one orthogonal step.
func Adjacent(a, b Coord) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// Direction offsets in the fixed enumeration order used by every algorithm.
var (
	Up    = Coord{Row: -1, Col: 0}
	Down  = Coord{Row: 1, Col: 0}
	Left  = Coord{Row: 0, Col: -1}
	Right = Coord{Row: 0, Col: 1}
)

// Directions lists the 4-connected moves in enumeration order: up, down, left, right.
// The order only decides which of several equal-length paths a search returns.
var Directions = [4]Coord{Up, Down, Left, Right}

// Grid is a Rows×Cols occupancy map. It is immutable once built and safe
// for concurrent readers.
// blocked[r*Cols+c] is true when cell (r,c) is impassable.
type Grid struct {
	Rows, Cols int
	blocked    []bool
}
