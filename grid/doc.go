// Package grid models a fixed-size rectangular board of traversable and
// blocked cells, and holds the pieces every routing algorithm shares.
//
// What:
//
//   - Grid wraps a Rows×Cols occupancy map. It is immutable once built.
//   - Coord is a zero-based (Row, Col) pair; origin top-left, rows grow
//     downward and columns grow rightward.
//   - Admissible is the single move validator: in bounds AND traversable.
//   - Neighbors enumerates admissible 4-neighbours in a fixed order
//     (up, down, left, right) so every search is reproducible.
//   - Predecessors is the per-search parent table; Reconstruct walks it back
//     from the goal and reverses it into start→goal order.
//   - Path is the start→goal sequence every algorithm returns.
//
// Why:
//
//   - bfs, dijkstra and walk all need the same bounds/occupancy check; any
//     change to admissibility is made once, here.
//   - A flat row-major layout keeps lookups O(1) and allocation-free.
//
// Complexity:
//
//   - Admissible, InBounds, Traversable: O(1).
//   - Neighbors:                         O(1), at most 4 results.
//   - Reconstruct:                       O(L), L = path length.
//   - New, FromMatrix:                   O(Rows×Cols) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid:      zero rows or zero columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrOutOfBounds:    a coordinate handed to a constructor lies outside the grid.
//   - ErrBrokenPath:     Path.Validate found a gap or a blocked step.
package grid
