// Package gridroute computes movement routes for tanks on a rectangular
// board of free and blocked cells.
//
// Packages:
//
//	grid/     — occupancy grid, move validator, paths and predecessor tables
//	bfs/      — minimum-hop route (breadth-first search)
//	dijkstra/ — minimum-cost route with a pluggable move cost
//	walk/     — unguided random walk, single step or until goal/dead end/cap
//	strategy/ — picks exactly one of the above per query; logging, metrics, tracing
//	board/    — seeded board generation with corner tanks, text render and parse
//	config/   — YAML scenarios validated against an embedded JSON Schema
//
// Movement is 4-connected. Neighbours are always considered in the order
// up, down, left, right, so searches are deterministic and random walks are
// reproducible from a seed.
//
// Quick start:
//
//	g, _ := grid.FromMatrix([][]int{
//		{0, 0, 0},
//		{0, 1, 0},
//		{0, 0, 0},
//	})
//	path, err := strategy.CalculateMove(
//		grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 2, Col: 2}, g,
//		true, false, nil) // BFS
//
// The gridroute command (cmd/gridroute) runs the whole pipeline from a
// scenario file.
package gridroute
