package search

import "github.com/katalvlaran/gridmaze/grid"

// DFS runs depth-first search from the grid's start anchor to its end
// anchor over a LIFO frontier.
//
// Unlike BFS, VisitedAt is stamped when a cell is popped — expansion time —
// and that stamp is the re-processing guard: neighbors may sit on the stack
// more than once (duplicates are not filtered at push time), but each cell
// expands at most once. A re-push refreshes the pending cell's Parent to the
// latest expander, which keeps parent links pointing at finalized cells.
// The search stops when the popped, not-yet-processed cell is the goal; the
// path found is valid but generally not shortest.
// Returns ErrNilGrid for a nil grid; an unreachable goal is not an error.
func DFS(g *grid.Grid, opts ...Option) (*Result, error) {
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
	stack := append(make([]grid.Coord, 0, n/4), start)
	order := 0

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cell := g.CellAt(cur)
		if cell.VisitedAt != grid.Unvisited {
			continue // duplicate stack entry, already expanded
		}
		cell.VisitedAt = order
		res.Visited = append(res.Visited, cur)
		o.OnExpand(cur, order)
		order++

		if cur == end {
			res.Path = ReconstructPath(g, end)

			break
		}

		for _, nb := range g.Neighbors(cur) {
			nbc := g.CellAt(nb)
			if nbc.VisitedAt != grid.Unvisited {
				continue
			}
			nbc.Parent = cur
			nbc.HasParent = true
			stack = append(stack, nb)
		}
	}

	return res, nil
}
