package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/grid"
)

func c(r, col int) grid.Coord { return grid.Coord{Row: r, Col: col} }

func TestPredecessors_ReconstructChain(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	prev := grid.NewPredecessors(g)
	prev.Set(c(0, 1), c(0, 0))
	prev.Set(c(1, 1), c(0, 1))
	prev.Set(c(2, 1), c(1, 1))

	assert.Equal(t, grid.Path{c(0, 0), c(0, 1), c(1, 1), c(2, 1)}, prev.Reconstruct(c(2, 1)))

	p, ok := prev.Get(c(1, 1))
	assert.True(t, ok)
	assert.Equal(t, c(0, 1), p)

	_, ok = prev.Get(c(0, 0))
	assert.False(t, ok, "start has no predecessor")
	assert.True(t, prev.Has(c(2, 1)))
	assert.False(t, prev.Has(c(2, 2)))
	assert.False(t, prev.Has(c(-1, 0)))
}

func TestPredecessors_StartEqualsGoal(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	prev := grid.NewPredecessors(g)
	assert.Equal(t, grid.Path{c(1, 1)}, prev.Reconstruct(c(1, 1)))
	assert.Empty(t, prev.Reconstruct(c(5, 5)), "out-of-bounds goal yields an empty path")
}

func TestPath_Helpers(t *testing.T) {
	var empty grid.Path
	assert.Equal(t, 0, empty.Hops())
	_, ok := empty.Last()
	assert.False(t, ok)
	assert.False(t, empty.Reaches(c(0, 0)))
	assert.Nil(t, empty.Clone())

	p := grid.Path{c(0, 0), c(0, 1), c(1, 1)}
	assert.Equal(t, 2, p.Hops())
	assert.True(t, p.Reaches(c(1, 1)))
	assert.False(t, p.Reaches(c(0, 1)))

	cp := p.Clone()
	cp[0] = c(9, 9)
	assert.Equal(t, c(0, 0), p[0], "Clone must not alias")
}

func TestPath_Validate(t *testing.T) {
	g, err := grid.FromMatrix([][]int{
		{0, 0, 0},
		{0, 1, 0},
	})
	require.NoError(t, err)

	assert.NoError(t, grid.Path{}.Validate(g))
	assert.NoError(t, grid.Path{c(1, 0), c(0, 0), c(0, 1), c(0, 2), c(1, 2)}.Validate(g))

	assert.ErrorIs(t, grid.Path{c(0, 1), c(1, 1)}.Validate(g), grid.ErrBrokenPath, "blocked step")
	assert.ErrorIs(t, grid.Path{c(0, 0), c(0, 2)}.Validate(g), grid.ErrBrokenPath, "jump")
	assert.ErrorIs(t, grid.Path{c(0, 0), c(1, 1)}.Validate(g), grid.ErrBrokenPath, "diagonal")
	assert.ErrorIs(t, grid.Path{c(-1, 0)}.Validate(g), grid.ErrBrokenPath, "out of bounds")
	assert.ErrorIs(t, grid.Path{c(0, 0), c(0, 0)}.Validate(g), grid.ErrBrokenPath, "standing still is not a step")
}

func TestAdjacent(t *testing.T) {
	assert.True(t, grid.Adjacent(c(1, 1), c(0, 1)))
	assert.True(t, grid.Adjacent(c(1, 1), c(1, 2)))
	assert.False(t, grid.Adjacent(c(1, 1), c(2, 2)))
	assert.False(t, grid.Adjacent(c(1, 1), c(1, 1)))
	assert.False(t, grid.Adjacent(c(0, 0), c(0, 2)))
}
