package search

import "github.com/katalvlaran/gridmaze/grid"

// ReconstructPath follows Parent links from goal backward to the cell with
// no parent (the start) and returns the sequence in start→goal order.
// It is called only after a strategy reaches the goal; strategies return an
// empty Path for unreachable goals without invoking it. Parent links form a
// forest rooted at the start by construction, so the walk always terminates.
// Complexity: O(len(path)).
func ReconstructPath(g *grid.Grid, goal grid.Coord) []grid.Coord {
	// Walk backward collecting goal→start.
	path := []grid.Coord{goal}
	for cur := g.CellAt(goal); cur != nil && cur.HasParent; cur = g.CellAt(cur.Parent) {
		path = append(path, cur.Parent)
	}
	// Reverse in place to get start→goal.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
