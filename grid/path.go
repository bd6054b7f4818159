package grid

import "fmt"

// Path is an ordered start→goal sequence of coordinates, both ends inclusive.
// An empty Path means no route exists.
type Path []Coord

// Hops returns the number of moves in the path (len-1), or 0 for an empty path.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Last returns the final coordinate and false for an empty path.
func (p Path) Last() (Coord, bool) {
	if len(p) == 0 {
		return Coord{}, false
	}
	return p[len(p)-1], true
}

// Reaches reports whether the path is non-empty and ends at goal.
// A random walk that got stuck ends elsewhere.
func (p Path) Reaches(goal Coord) bool {
	last, ok := p.Last()
	return ok && last == goal
}

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Validate checks the path invariants against g: every coordinate is
// admissible and consecutive coordinates are 4-adjacent.
// An empty path is valid.
// Returns ErrBrokenPath wrapped with the first offending position.
func (p Path) Validate(g *Grid) error {
	for i, c := range p {
		if !g.Admissible(c) {
			return fmt.Errorf("%w: step %d at %v is not admissible", ErrBrokenPath, i, c)
		}
		if i > 0 && !Adjacent(p[i-1], c) {
			return fmt.Errorf("%w: step %d jumps %v→%v", ErrBrokenPath, i, p[i-1], c)
		}
	}
	return nil
}

// noPred marks a slot with no predecessor: unvisited cells and the start cell.
const noPred = -1

// Predecessors records, for each cell, the cell it was first reached from.
// It is allocated per search call and owned by that call.
type Predecessors struct {
	g    *Grid
	prev []int
}

// NewPredecessors allocates a table with one slot per cell of g,
// every slot set to the "none" sentinel.
// Complexity: O(Rows×Cols).
func NewPredecessors(g *Grid) *Predecessors {
	prev := make([]int, g.Size())
	for i := range prev {
		prev[i] = noPred
	}
	return &Predecessors{g: g, prev: prev}
}

// Set records from as the predecessor of to. Both must be in bounds.
func (p *Predecessors) Set(to, from Coord) {
	p.prev[p.g.index(to)] = p.g.index(from)
}

// Get returns the predecessor of c and whether one is recorded.
func (p *Predecessors) Get(c Coord) (Coord, bool) {
	if !p.g.InBounds(c) {
		return Coord{}, false
	}
	i := p.prev[p.g.index(c)]
	if i == noPred {
		return Coord{}, false
	}
	return p.g.Coordinate(i), true
}

// Has reports whether a predecessor is recorded for c.
func (p *Predecessors) Has(c Coord) bool {
	_, ok := p.Get(c)
	return ok
}

// Reconstruct walks predecessors backward from goal until the sentinel is
// reached, then reverses the collected cells into start→goal order.
// When goal has no predecessor the result is [goal], which is exactly the
// start == goal case; callers only invoke this once goal has been reached.
// Complexity: O(L), L = path length.
func (p *Predecessors) Reconstruct(goal Coord) Path {
	if !p.g.InBounds(goal) {
		return Path{}
	}
	path := Path{}
	for at := p.g.index(goal); at != noPred; at = p.prev[at] {
		path = append(path, p.g.Coordinate(at))
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
