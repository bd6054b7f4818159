package board

import (
	"fmt"

	"github.com/katalvlaran/gridroute/grid"
)

// Generate builds a rows×cols board: random obstacles strictly inside the
// margin ring, then the four corner tanks.
//
// Returns grid.ErrEmptyGrid for non-positive dimensions, and ErrTooSmall when
// tanks are enabled but the board has fewer than 2 rows or 4 columns.
// Complexity: O(rows×cols).
func Generate(rows, cols int, opts ...Option) (*Board, error) {
	cfg := newConfig(opts...)
	if rows <= 0 || cols <= 0 {
		return nil, grid.ErrEmptyGrid
	}
	if cfg.tanks && (rows < 2 || cols < 4) {
		return nil, fmt.Errorf("%w: %dx%d cannot hold four 2-cell tanks", ErrTooSmall, rows, cols)
	}

	blocked := make([][]bool, rows)
	for r := range blocked {
		blocked[r] = make([]bool, cols)
	}
	for r := cfg.margin; r < rows-cfg.margin; r++ {
		for c := cfg.margin; c < cols-cfg.margin; c++ {
			if cfg.rng.Intn(100) < cfg.obstaclePercent {
				blocked[r][c] = true
			}
		}
	}

	var tanks []Tank
	if cfg.tanks {
		tanks = cornerTanks(rows, cols)
		for _, t := range tanks {
			for _, c := range t.Cells {
				blocked[c.Row][c.Col] = false
			}
		}
	}

	g, err := grid.FromBlocked(blocked)
	if err != nil {
		return nil, err
	}
	return &Board{Grid: g, Tanks: tanks}, nil
}

// cornerTanks places A and B on the first row, C and D on the last, each two
// cells wide and flush with its corner.
func cornerTanks(rows, cols int) []Tank {
	top, bottom := 0, rows-1
	return []Tank{
		{Label: TankLabels[0], Cells: []grid.Coord{{Row: top, Col: 0}, {Row: top, Col: 1}}},
		{Label: TankLabels[1], Cells: []grid.Coord{{Row: top, Col: cols - 2}, {Row: top, Col: cols - 1}}},
		{Label: TankLabels[2], Cells: []grid.Coord{{Row: bottom, Col: 0}, {Row: bottom, Col: 1}}},
		{Label: TankLabels[3], Cells: []grid.Coord{{Row: bottom, Col: cols - 2}, {Row: bottom, Col: cols - 1}}},
	}
}
