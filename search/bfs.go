package search

import "github.com/katalvlaran/gridmaze/grid"

// BFS runs breadth-first search from the grid's start anchor to its end
// anchor over a FIFO frontier.
//
// VisitedAt is stamped at the moment a cell is enqueued — discovery time,
// not dequeue time — and Result.Visited follows that discovery order. The
// search stops when the dequeued cell is the goal; on a unit-cost grid the
// resulting path is a shortest one.
// Returns ErrNilGrid for a nil grid; an unreachable goal is not an error.
func BFS(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g.ResetTransient()

	start, end := g.Start(), g.End()
	n := g.Rows * g.Cols
	res := &Result{Visited: make([]grid.Coord, 0, n/4)}
	queue := make([]grid.Coord, 0, n/4)

	// Seed: the start is discovered at index 0.
	g.CellAt(start).VisitedAt = 0
	res.Visited = append(res.Visited, start)
	o.OnExpand(start, 0)
	queue = append(queue, start)
	order := 1

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur == end {
			res.Path = ReconstructPath(g, end)

			break
		}

		for _, nb := range g.Neighbors(cur) {
			nbc := g.CellAt(nb)
			if nbc.VisitedAt != grid.Unvisited {
				continue // already discovered
			}
			nbc.VisitedAt = order
			nbc.Parent = cur
			nbc.HasParent = true
			res.Visited = append(res.Visited, nb)
			o.OnExpand(nb, order)
			order++
			queue = append(queue, nb)
		}
	}

	return res, nil
}
