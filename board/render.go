package board

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/gridroute/grid"
)

// String renders the board without a route or markers.
func (b *Board) String() string {
	return b.render(nil)
}

// Render draws path over the board and marks start and goal.
// Markers win over route cells, and route cells win over tanks.
// Coordinates outside the board are ignored.
func (b *Board) Render(path grid.Path, start, goal grid.Coord) string {
	overlay := make(map[grid.Coord]rune, len(path)+2)
	for _, c := range path {
		overlay[c] = SymbolRoute
	}
	overlay[start] = SymbolStart
	overlay[goal] = SymbolGoal
	return b.render(overlay)
}

func (b *Board) render(overlay map[grid.Coord]rune) string {
	var sb strings.Builder
	sb.Grow(b.Rows() * (2*b.Cols() + 1))
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(b.symbol(grid.Coord{Row: r, Col: c}, overlay))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) symbol(c grid.Coord, overlay map[grid.Coord]rune) rune {
	if s, ok := overlay[c]; ok {
		return s
	}
	if label, ok := b.TankAt(c); ok {
		return label
	}
	if b.Grid.Blocked(c) {
		return SymbolObstacle
	}
	return SymbolFree
}

// Parse reads a board from text, one row per non-blank line. Cells may be
// separated by whitespace or written back to back.
//
//	'.' '0'          free
//	'O' '#' '1'      obstacle
//	'A'..'D'         tank cell (free)
//	'S' 'G'          start/goal marker (free), at most one each
//	'*'              route cell (free)
//
// Returns ErrSyntax for unknown symbols or repeated markers, and the grid
// errors ErrEmptyGrid / ErrNonRectangular for empty or ragged input.
func Parse(text string) (*Board, error) {
	var blocked [][]bool
	tanks := map[rune][]grid.Coord{}
	markers := map[rune]grid.Coord{}

	row := 0
	for lineNo, line := range strings.Split(text, "\n") {
		cells := strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, line)
		if cells == "" {
			continue
		}

		flags := make([]bool, 0, len(cells))
		for col, sym := range []rune(cells) {
			at := grid.Coord{Row: row, Col: col}
			switch sym {
			case SymbolFree, '0', SymbolRoute:
				flags = append(flags, false)
			case SymbolObstacle, '#', '1':
				flags = append(flags, true)
			case SymbolStart, SymbolGoal:
				if prev, dup := markers[sym]; dup {
					return nil, fmt.Errorf("%w: line %d: second %q marker (first at %v)", ErrSyntax, lineNo+1, sym, prev)
				}
				markers[sym] = at
				flags = append(flags, false)
			default:
				if !isTankLabel(sym) {
					return nil, fmt.Errorf("%w: line %d: unknown symbol %q", ErrSyntax, lineNo+1, sym)
				}
				tanks[sym] = append(tanks[sym], at)
				flags = append(flags, false)
			}
		}
		blocked = append(blocked, flags)
		row++
	}

	g, err := grid.FromBlocked(blocked)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}

	b := &Board{Grid: g, markers: markers}
	for _, label := range TankLabels {
		if cells, ok := tanks[label]; ok {
			b.Tanks = append(b.Tanks, Tank{Label: label, Cells: cells})
		}
	}
	return b, nil
}

func isTankLabel(r rune) bool {
	for _, l := range TankLabels {
		if r == l {
			return true
		}
	}
	return false
}
