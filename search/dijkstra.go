// Dijkstra over the grid: uniform-cost expansion in non-decreasing distance.
//
// Every cell starts at Distance = +Inf except the start (0). The frontier is
// the same lazy-decrease-key min-heap A* uses, keyed by Distance. Cells that
// stay at +Inf never enter the heap, so heap exhaustion is the "extracted
// minimum is infinite" stop condition: everything reachable has been
// finalized and the goal was not among it.
package search

import (
	"container/heap"

	"github.com/katalvlaran/gridmaze/grid"
)

// dijkstraRunner holds the mutable state of one Dijkstra execution.
type dijkstraRunner struct {
	g       *grid.Grid
	opts    Options
	end     grid.Coord
	pq      cellPQ
	visited map[grid.Coord]bool
	res     *Result
	order   int
}

// Dijkstra runs uniform-cost search from the grid's start anchor to its end
// anchor. On this unit-cost grid it finalizes cells in the same distance
// layers BFS discovers, but through the relaxation contract: a neighbor's
// Distance and Parent update only on strict improvement.
// Returns ErrNilGrid for a nil grid; an unreachable goal is not an error.
func Dijkstra(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g.ResetTransient()

	n := g.Rows * g.Cols
	r := &dijkstraRunner{
		g:       g,
		opts:    o,
		end:     g.End(),
		pq:      make(cellPQ, 0, n/4),
		visited: make(map[grid.Coord]bool, n),
		res:     &Result{Visited: make([]grid.Coord, 0, n/4)},
	}
	r.init()
	r.process()

	return r.res, nil
}

// init zeroes the start distance and seeds the heap.
func (r *dijkstraRunner) init() {
	start := r.g.Start()
	r.g.CellAt(start).Distance = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, pqItem{coord: start, priority: 0})
}

// process extracts the minimum-Distance cell, finalizes it, and relaxes its
// neighbors until the goal is finalized or the frontier empties.
func (r *dijkstraRunner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(pqItem)
		cur := item.coord
		if r.visited[cur] {
			continue // stale lazy entry
		}
		r.visited[cur] = true

		cell := r.g.CellAt(cur)
		cell.VisitedAt = r.order
		r.res.Visited = append(r.res.Visited, cur)
		r.opts.OnExpand(cur, r.order)
		r.order++

		if cur == r.end {
			r.res.Path = ReconstructPath(r.g, r.end)

			return
		}
		r.relax(cur, cell)
	}
}

// relax updates each unfinalized neighbor whose distance strictly improves.
func (r *dijkstraRunner) relax(cur grid.Coord, cell *grid.Cell) {
	for _, nb := range r.g.Neighbors(cur) {
		if r.visited[nb] {
			continue
		}
		nbc := r.g.CellAt(nb)
		candidate := cell.Distance + 1
		if candidate < nbc.Distance {
			nbc.Distance = candidate
			nbc.Parent = cur
			nbc.HasParent = true
			heap.Push(&r.pq, pqItem{coord: nb, priority: candidate})
		}
	}
}
