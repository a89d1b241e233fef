// A* over the grid: informed best-first search with the Manhattan heuristic.
//
// The frontier is a container/heap min-queue on F = G + H using the
// lazy-decrease-key pattern: improving a cell's G pushes a duplicate entry
// and stale entries are skipped at pop time via the closed set. This changes
// the tie-break among equal-F cells from the original linear scan's
// first-minimum rule to heap order; tie-break determinism is not part of the
// contract.
//
// Complexity: O(N log N) time for N open cells, O(N) memory.
package search

import (
	"container/heap"

	"github.com/katalvlaran/gridmaze/grid"
)

// astarRunner holds the mutable state of one A* execution.
type astarRunner struct {
	g      *grid.Grid
	opts   Options
	end    grid.Coord
	open   cellPQ
	closed map[grid.Coord]bool
	res    *Result
	order  int
}

// AStar runs A* from the grid's start anchor to its end anchor.
//
// Result.Visited is the closed-set finalization order. Result.Path is the
// reconstructed start→goal route, or empty when the goal is unreachable —
// in which case Visited contains the entire reachable component.
// Returns ErrNilGrid for a nil grid; an unreachable goal is not an error.
func AStar(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g.ResetTransient()

	n := g.Rows * g.Cols
	r := &astarRunner{
		g:      g,
		opts:   o,
		end:    g.End(),
		open:   make(cellPQ, 0, n/4),
		closed: make(map[grid.Coord]bool, n),
		res:    &Result{Visited: make([]grid.Coord, 0, n/4)},
	}
	r.init()
	r.process()

	return r.res, nil
}

// init seeds the frontier with the start cell: G=0, H=Manhattan, F=H.
func (r *astarRunner) init() {
	start := r.g.Start()
	cell := r.g.CellAt(start)
	cell.G = 0
	cell.H = float64(start.ManhattanTo(r.end))
	cell.F = cell.H
	heap.Init(&r.open)
	heap.Push(&r.open, pqItem{coord: start, priority: cell.F})
}

// process extracts minimum-F cells until the goal is finalized or the
// frontier empties (goal unreachable).
func (r *astarRunner) process() {
	for r.open.Len() > 0 {
		item := heap.Pop(&r.open).(pqItem)
		cur := item.coord
		if r.closed[cur] {
			continue // stale lazy entry
		}
		r.closed[cur] = true

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

// relax offers tentative G = cur.G + 1 to each non-closed neighbor and
// (re)inserts improved neighbors into the frontier.
func (r *astarRunner) relax(cur grid.Coord, cell *grid.Cell) {
	for _, nb := range r.g.Neighbors(cur) {
		if r.closed[nb] {
			continue
		}
		nbc := r.g.CellAt(nb)
		tentative := cell.G + 1
		// Covers both "new to the frontier" (G starts at +Inf) and a strict
		// improvement of an already-frontier cell.
		if tentative < nbc.G {
			nbc.G = tentative
			nbc.H = float64(nb.ManhattanTo(r.end))
			nbc.F = tentative + nbc.H
			nbc.Parent = cur
			nbc.HasParent = true
			heap.Push(&r.open, pqItem{coord: nb, priority: nbc.F})
		}
	}
}
