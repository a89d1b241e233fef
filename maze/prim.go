// Randomized Prim: frontier-wall expansion from a single carved seed.
//
// The frontier holds candidate walls, each remembering the carved lattice
// cell it extends from. Picking frontier entries uniformly at random grows
// the tree evenly in all directions, giving more organic, balanced branching
// than the backtracker's corridors. Terminates when the frontier empties.
//
// Complexity: O(L) carves, O(L) frontier memory for L lattice cells.
package maze

import "github.com/katalvlaran/gridmaze/grid"

// frontierWall is a candidate wall plus the already-carved lattice cell it
// would extend; the lattice cell on the wall's far side is derived by
// mirroring from across wall.
type frontierWall struct {
	wall, from grid.Coord
}

// farSide mirrors from across the wall to the lattice cell it would open.
func (f frontierWall) farSide() grid.Coord {
	return grid.Coord{
		Row: 2*f.wall.Row - f.from.Row,
		Col: 2*f.wall.Col - f.from.Col,
	}
}

// Prim generates a maze into g with randomized Prim and returns the carve
// sequence. The grid is rewritten in place. Returns ErrNilGrid for a nil
// grid.
func Prim(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	rng := o.rng()

	c := newCarver(g)

	// Seed: carve the first lattice cell and enqueue its frontier walls.
	c.carve(latticeSeed)
	frontier := make([]frontierWall, 0, g.Rows+g.Cols)
	frontier = appendFrontier(c, frontier, latticeSeed)

	for len(frontier) > 0 {
		// Pick a uniformly random frontier entry and swap-remove it.
		i := rng.Intn(len(frontier))
		fw := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		far := fw.farSide()
		if !c.g.CellAt(far).Wall {
			continue // far cell already joined the tree through another wall
		}
		c.carve(fw.wall)
		c.carve(far)
		frontier = appendFrontier(c, frontier, far)
	}

	return c.finish(), nil
}

// appendFrontier adds the walls bordering lattice cell co whose far side is
// in bounds and still walled.
func appendFrontier(c *carver, frontier []frontierWall, co grid.Coord) []frontierWall {
	for _, nb := range c.latticeNeighbors(co) {
		if !c.g.CellAt(nb).Wall {
			continue
		}
		frontier = append(frontier, frontierWall{wall: wallBetween(co, nb), from: co})
	}

	return frontier
}
