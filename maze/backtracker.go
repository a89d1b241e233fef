// Randomized backtracker: depth-first carving with explicit backtracking.
//
// The walk dives as deep as it can, carving wall+cell pairs, and pops back
// only when the current lattice cell has no unvisited lattice neighbors.
// The result is a spanning tree of long winding corridors with few
// branches. Terminates when the stack empties — every lattice cell
// reachable from the seed has been visited.
//
// Complexity: O(L) carves for L lattice cells; O(L) stack memory.
package maze

import "github.com/katalvlaran/gridmaze/grid"

// Backtracker generates a maze into g with the randomized DFS backtracker
// and returns the carve sequence. The grid is rewritten in place: all walls
// first, then corridors. Returns ErrNilGrid for a nil grid.
func Backtracker(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	rng := o.rng()

	c := newCarver(g)

	// Seed the walk at the top-left lattice cell.
	visited := map[grid.Coord]bool{latticeSeed: true}
	c.carve(latticeSeed)
	stack := []grid.Coord{latticeSeed}

	candidates := make([]grid.Coord, 0, len(latticeOffsets))
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, nb := range c.latticeNeighbors(cur) {
			if !visited[nb] {
				candidates = append(candidates, nb)
			}
		}
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1] // dead end: backtrack

			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		c.carve(wallBetween(cur, next))
		c.carve(next)
		visited[next] = true
		stack = append(stack, next)
	}

	return c.finish(), nil
}
