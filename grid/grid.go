// Package grid provides the occupancy model and move validator shared by the
// routing algorithms. Cells are either traversable or blocked; movement is
// 4-connected.
package grid

import "fmt"

// New builds an all-traversable rows×cols grid and then marks every
// coordinate in blocked as impassable.
// Returns ErrEmptyGrid if rows or cols is not positive,
// ErrOutOfBounds if any blocked coordinate lies outside the grid.
// Complexity: O(rows×cols + len(blocked)).
func New(rows, cols int, blocked ...Coord) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		Rows:    rows,
		Cols:    cols,
		blocked: make([]bool, rows*cols),
	}
	for _, c := range blocked {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: blocked cell %v on %dx%d grid", ErrOutOfBounds, c, rows, cols)
		}
		g.blocked[g.index(c)] = true
	}

	return g, nil
}

// FromMatrix builds a grid from a non-empty, rectangular matrix where 0 marks
// a traversable cell and any other value marks an obstacle.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func FromMatrix(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{
		Rows:    rows,
		Cols:    cols,
		blocked: make([]bool, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.blocked[r*cols+c] = values[r][c] != 0
		}
	}

	return g, nil
}

// FromBlocked builds a grid from a rectangular matrix of blocked flags.
// Same validation as FromMatrix.
func FromBlocked(blocked [][]bool) (*Grid, error) {
	if len(blocked) == 0 || len(blocked[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(blocked), len(blocked[0])
	g := &Grid{
		Rows:    rows,
		Cols:    cols,
		blocked: make([]bool, rows*cols),
	}
	for r, row := range blocked {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
		copy(g.blocked[r*cols:(r+1)*cols], row)
	}

	return g, nil
}

// InBounds reports whether c lies within [0,Rows)×[0,Cols).
// A nil grid contains no cells.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return g != nil && c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Traversable reports whether c is in bounds and not blocked.
// Complexity: O(1).
func (g *Grid) Traversable(c Coord) bool {
	return g.InBounds(c) && !g.blocked[g.index(c)]
}

// Blocked reports whether an in-bounds cell is an obstacle.
// Out-of-bounds coordinates report false; pair with InBounds when it matters.
func (g *Grid) Blocked(c Coord) bool {
	return g.InBounds(c) && g.blocked[g.index(c)]
}

// Admissible is the move validator: it reports whether an agent may occupy c.
// Bounds are checked before the occupancy lookup, so any Coord is safe to pass.
// Every algorithm in this module calls this and nothing else.
// Complexity: O(1).
func (g *Grid) Admissible(c Coord) bool {
	return g.Traversable(c)
}

// Neighbors returns the admissible 4-neighbours of c in Directions order.
// The result is freshly allocated; callers may keep it.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(Directions))
	for _, d := range Directions {
		n := c.Add(d)
		if g.Admissible(n) {
			out = append(out, n)
		}
	}
	return out
}

// Size returns the number of cells, Rows×Cols.
func (g *Grid) Size() int {
	if g == nil {
		return 0
	}
	return g.Rows * g.Cols
}

// BlockedCount returns the number of obstacle cells.
// Complexity: O(Rows×Cols).
func (g *Grid) BlockedCount() int {
	if g == nil {
		return 0
	}
	n := 0
	for _, b := range g.blocked {
		if b {
			n++
		}
	}
	return n
}

// index maps c to a row-major index: Row*Cols + Col.
// Complexity: O(1).
func (g *Grid) index(c Coord) int {
	return c.Row*g.Cols + c.Col
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.Cols, Col: idx % g.Cols}
}

// Index exposes the row-major index of an in-bounds coordinate.
// It returns -1 for coordinates outside the grid.
func (g *Grid) Index(c Coord) int {
	if !g.InBounds(c) {
		return -1
	}
	return g.index(c)
}
