// Package dijkstra implements Dijkstra's algorithm on a grid.Grid.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of every admissible move (O(N)) to detect
//     negative costs and fail fast.
//   - We treat any move costing ≥ ImpassableCost as a wall.
//   - We stop once the goal is extracted, or once the cheapest heap entry
//     exceeds MaxCost.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gridroute/grid"
)

// Search computes a minimum-cost route from start to goal on g.
//
// Returns:
//
//   - path: start→goal inclusive, or empty when no route exists (including
//     inadmissible endpoints and routes pruned by MaxCost).
//   - cost: total cost of path; 0 when path is empty or start == goal.
//   - err:  ErrGridNil, or ErrNegativeCost wrapped with the offending move.
//
// Complexity:
//
//   - Time:  O(E log N)
//   - Space: O(N + E)
func Search(g *grid.Grid, start, goal grid.Coord, opts ...Option) (grid.Path, int64, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate grid is non-nil
	if g == nil {
		return nil, 0, ErrGridNil
	}

	// 3) Pre-scan every admissible move for negative costs.
	if err := scanCosts(g, cfg.Cost); err != nil {
		return nil, 0, err
	}

	// 4) Blocked or out-of-bounds endpoints: nothing to search.
	if !g.Admissible(start) || !g.Admissible(goal) {
		return grid.Path{}, 0, nil
	}

	// 5) Prepare per-call state.
	n := g.Size()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		prev:    grid.NewPredecessors(g),
		done:    make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init(start)

	// 6) Run main loop.
	if !r.process(goal) {
		return grid.Path{}, 0, nil
	}

	return r.prev.Reconstruct(goal), r.dist[g.Index(goal)], nil
}

// scanCosts walks every admissible move once and reports the first negative cost.
func scanCosts(g *grid.Grid, cost CostFunc) error {
	for i := 0; i < g.Size(); i++ {
		from := g.Coordinate(i)
		if !g.Admissible(from) {
			continue
		}
		for _, to := range g.Neighbors(from) {
			if w := cost(from, to); w < 0 {
				return fmt.Errorf("%w: move %v→%v cost=%d", ErrNegativeCost, from, to, w)
			}
		}
	}
	return nil
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	g       *grid.Grid         // The input grid; read-only.
	options Options            // Configuration options.
	dist    []int64            // Row-major best known cost from start.
	prev    *grid.Predecessors // Predecessor on the cheapest known route.
	done    []bool             // Whether a cell's cost is finalised.
	pq      nodePQ             // Min-heap of *nodeItem for lazy priority queue.
}

// init sets every cost to +∞ (MaxInt64) and pushes start with cost 0.
func (r *runner) init(start grid.Coord) {
	for i := range r.dist {
		r.dist[i] = math.MaxInt64
	}
	r.dist[r.g.Index(start)] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{at: start, cost: 0})
}

// process repeatedly extracts the cheapest cell and relaxes its moves.
// It reports whether goal was extracted.
//
// Loop termination conditions:
//
//   - The goal is extracted (its cost is final).
//   - The heap becomes empty (goal unreachable).
//   - The cheapest heap entry exceeds MaxCost.
func (r *runner) process(goal grid.Coord) bool {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := r.g.Index(item.at)

		// Skip stale heap entries.
		if r.done[u] {
			continue
		}
		if item.cost > r.options.MaxCost {
			break
		}
		r.done[u] = true

		if item.at == goal {
			return true
		}
		r.relax(item.at)
	}
	return false
}

// relax examines each admissible move out of u and improves neighbour costs.
// Assumes dist[u] is finalised.
func (r *runner) relax(u grid.Coord) {
	du := r.dist[r.g.Index(u)]
	for _, v := range r.g.Neighbors(u) {
		vi := r.g.Index(v)
		if r.done[vi] {
			continue
		}

		w := r.options.Cost(u, v)
		// Moves at or above the threshold are walls.
		if w >= r.options.ImpassableCost {
			continue
		}
		// Saturate instead of overflowing.
		if w > math.MaxInt64-du {
			continue
		}
		newCost := du + w
		if newCost > r.options.MaxCost {
			continue
		}
		// Strictly better only.
		if newCost >= r.dist[vi] {
			continue
		}

		r.dist[vi] = newCost
		r.prev.Set(v, u)
		heap.Push(&r.pq, &nodeItem{at: v, cost: newCost})
	}
}

// nodeItem is a heap entry: a cell and the tentative cost it was pushed with.
type nodeItem struct {
	at   grid.Coord
	cost int64
}

// nodePQ is a min-heap of *nodeItem ordered by cost ascending.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
