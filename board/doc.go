// Package board builds playable tank boards on top of grid.Grid and renders
// them as text.
//
// A board is a grid plus up to four two-cell tanks:
//
//	A A . . . . B B      row 0:      tanks A (left) and B (right)
//	. . . . . . . .
//	. . O . . O . .      obstacles only inside the margin ring
//	. . . . . . . .
//	C C . . . . D D      last row:   tanks C (left) and D (right)
//
// Generate draws every interior cell independently with probability
// ObstaclePercent/100 (default 10%), leaving a Margin-wide ring (default 2)
// obstacle-free so tanks can always leave their corners. Tank cells are
// traversable. Randomness is explicit: pass WithSeed or WithRand for
// reproducible boards; without either a fixed default seed is used.
//
// Render overlays a route on the board using the symbols
//
//	O obstacle   . free   * route   S start   G goal   A-D tanks
//
// separated by single spaces. Parse reads the same text back, accepting
// '#' and '1' for obstacles and '0' for free cells as well, so scenario files
// can embed literal maps.
package board
