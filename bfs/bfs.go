// Package bfs provides breadth-first routing over a grid.Grid,
// returning a minimum-hop path between two cells.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridroute/grid"
)

// queueItem pairs a cell with its hop distance from the start.
type queueItem struct {
	at    grid.Coord
	depth int
}

// walker encapsulates mutable BFS state for a single call.
type walker struct {
	grid    *grid.Grid
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited []bool
	prev    *grid.Predecessors
	goal    grid.Coord
}

// Search runs breadth-first search on g from start towards goal,
// applying any number of functional Options.
//
// Returns the minimum-hop path start→goal, inclusive. An empty path with a
// nil error means no route exists, including when start or goal is not
// admissible. Errors are reserved for ErrGridNil, ErrOptionViolation,
// context cancellation, and OnVisit hook failures.
func Search(g *grid.Grid, start, goal grid.Coord, opts ...Option) (grid.Path, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Blocked or out-of-bounds endpoints: nothing to search.
	if !g.Admissible(start) || !g.Admissible(goal) {
		return grid.Path{}, nil
	}

	w := &walker{
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, g.Size()),
		visited: make([]bool, g.Size()),
		prev:    grid.NewPredecessors(g),
		goal:    goal,
	}

	// Seed queue with start cell (no predecessor)
	w.enqueue(start, 0)
	found, err := w.loop()
	if err != nil {
		return nil, err
	}
	if !found {
		return grid.Path{}, nil
	}

	return w.prev.Reconstruct(goal), nil
}

// enqueue marks c visited at depth d, calls OnEnqueue and appends it to the queue.
func (w *walker) enqueue(c grid.Coord, d int) {
	w.visited[w.grid.Index(c)] = true
	w.opts.OnEnqueue(c, d)
	w.queue = append(w.queue, queueItem{at: c, depth: d})
}

// loop processes the queue until the goal is dequeued, the queue empties,
// a hook fails, or the context is cancelled.
func (w *walker) loop() (bool, error) {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return false, w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.opts.OnVisit(item.at, item.depth); err != nil {
			return false, fmt.Errorf("bfs: OnVisit error at %v: %w", item.at, err)
		}
		if item.at == w.goal {
			return true, nil
		}
		w.enqueueNeighbors(item)
	}
	return false, nil
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// enqueueNeighbors enqueues each admissible, unseen neighbour of item in
// grid.Directions order, recording item as its predecessor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, d := range grid.Directions {
		nbr := item.at.Add(d)
		if !w.grid.Admissible(nbr) {
			continue
		}
		// first time seen?
		if w.visited[w.grid.Index(nbr)] {
			continue
		}
		w.prev.Set(nbr, item.at)
		w.enqueue(nbr, nextDepth)
	}
}
