package walk_test

import (
	"fmt"

	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/walk"
)

// ExampleWalk shows the stuck exit: the only open cell has no open neighbour,
// so the walk ends immediately with the one-cell path.
func ExampleWalk() {
	g, _ := grid.FromMatrix([][]int{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	})

	res := walk.Walk(g, grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: 0, Col: 0}, walk.NewRand(1))
	fmt.Println(res.Path, res.Outcome)
	// Output:
	// [(1,1)] stuck
}

// ExampleWalk_corridor walks a one-cell-wide corridor: every move is forced
// at the ends, so the walk always reaches the goal given enough steps.
func ExampleWalk_corridor() {
	g, _ := grid.New(1, 3)

	res := walk.Walk(g, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 0, Col: 2}, walk.NewRand(1))
	fmt.Println(res.Outcome, res.Path.Reaches(grid.Coord{Row: 0, Col: 2}), res.Path[0])
	// Output:
	// reached true (0,0)
}
