// Package dijkstra finds a minimum-cost route between two cells of a
// grid.Grid using priority-ordered relaxation (Dijkstra's algorithm).
//
// Overview:
//
//   - The frontier is a binary min-heap keyed by tentative total cost.
//   - A neighbour's cost and predecessor are updated only when the candidate
//     cost is strictly lower than the best known one.
//   - The search stops as soon as the goal is extracted: with non-negative
//     edge costs, a cell's cost is final once it leaves the heap.
//   - Edge cost is a parameter (CostFunc). The default, UnitCost, charges 1 per
//     move, which makes the result as short as a bfs route; any other
//     non-negative cost function still yields an optimal route.
//
// Key features:
//
//   - WithCost(fn):            plug in a per-move cost.
//   - WithMaxCost(c):          do not explore cells costlier than c.
//   - WithImpassableCost(t):   moves costing ≥ t are treated as walls.
//
// Outcomes:
//
//   - Goal reachable:               the route and its total cost.
//   - start == goal (admissible):   [start], cost 0.
//   - Goal unreachable:             an empty route, cost 0, nil error.
//   - start or goal not admissible: an empty route, cost 0, nil error.
//
// Performance and complexity (N = Rows×Cols, E ≤ 4N):
//
//   - Time:  O(E log N)
//   - Each cell is finalised at most once.
//   - Each successful relaxation pushes one heap entry (lazy decrease-key).
//   - Space: O(N + E)
//
// Errors (sentinel):
//
//   - ErrGridNil       if the provided grid pointer is nil.
//   - ErrNegativeCost  if the cost function returns a negative value for any move.
//
// Example usage:
//
//	path, cost, err := dijkstra.Search(g, start, goal,
//	    dijkstra.WithCost(func(from, to grid.Coord) int64 { return 1 + int64(to.Row) }),
//	)
package dijkstra
