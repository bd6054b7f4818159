// Package bfs finds a minimum-hop route between two cells of a grid.Grid
// by breadth-first expansion over the 4-connected grid graph.
//
// What
//
//   - Explore cells in non-decreasing hop distance from the start cell.
//   - Stop as soon as the goal is dequeued and rebuild the route from the
//     predecessor table (grid.Predecessors).
//   - Neighbours are enqueued in the fixed grid.Directions order (up, down,
//     left, right); among several equally short routes the one found first
//     under that order is returned, every time.
//   - Supports functional hooks:
//   - OnEnqueue (when a cell is first reached)
//   - OnVisit   (when a cell is dequeued; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Every move costs the same, so the first time a cell is reached is the
//     shortest way to reach it. That invariant is what makes BFS optimal here.
//
// Outcomes
//
//   - Goal reachable:               the route, start and goal inclusive.
//   - start == goal (admissible):   the single-cell route [start].
//   - Goal unreachable:             an empty route and a nil error.
//   - start or goal not admissible: an empty route and a nil error.
//
// Complexity (N = Rows×Cols)
//
//   - Time:   O(N)   (each cell enqueued at most once, 4 edges per cell)
//   - Memory: O(N)   (queue, visited flags, predecessor table)
//
// Usage
//
//	path, err := bfs.Search(g, start, goal)
//	if err != nil {
//		// ErrGridNil, ErrOptionViolation, a context error, or a hook error
//	}
//	if len(path) == 0 {
//		// no route
//	}
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit.
//   - WithContext(ctx):  set a custom context for cancellation.
//   - WithMaxDepth(d):   do not expand beyond d hops (d>0).
//   - WithOnEnqueue(fn): hook when a cell is first reached.
//   - WithOnVisit(fn):   hook when a cell is dequeued; returning error aborts.
package bfs
