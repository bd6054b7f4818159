package bfs_test

import (
	"testing"

	"github.com/katalvlaran/gridroute/bfs"
	"github.com/katalvlaran/gridroute/grid"
)

// BenchmarkSearch_Open measures corner-to-corner routing on an open N×N board.
func BenchmarkSearch_Open(b *testing.B) {
	const n = 256
	g, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup grid.New failed: %v", err)
	}
	start, goal := grid.Coord{}, grid.Coord{Row: n - 1, Col: n - 1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search(g, start, goal)
	}
}

// BenchmarkSearch_Serpentine forces the longest possible route by walling
// every other row except for an opening at alternating ends.
func BenchmarkSearch_Serpentine(b *testing.B) {
	const n = 128
	var walls []grid.Coord
	for r := 1; r < n; r += 2 {
		gap := n - 1
		if (r/2)%2 == 1 {
			gap = 0
		}
		for c := 0; c < n; c++ {
			if c != gap {
				walls = append(walls, grid.Coord{Row: r, Col: c})
			}
		}
	}
	g, err := grid.New(n, n, walls...)
	if err != nil {
		b.Fatalf("setup grid.New failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search(g, grid.Coord{}, grid.Coord{Row: n - 2, Col: 0})
	}
}
