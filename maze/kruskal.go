// Randomized Kruskal: union-find over the lattice, walls knocked out in
// random order.
//
// Every lattice cell starts carved as its own disjoint-set singleton. Walls
// between lattice neighbors are removed in uniformly random order whenever
// the two sides belong to different sets, then the sets are unioned. Cycles
// can never form, so the surviving corridors are exactly a spanning tree —
// one with many short dead ends and a very uniform texture.
//
// The find operation is plain parent-chasing with no path compression and
// no union-by-rank. That is deliberate: lattice sizes here make the O(L)
// worst-case find irrelevant, and the contract never promises sub-linear
// union-find performance.
//
// Complexity: O(W·L) worst case for W walls and L lattice cells; in
// practice far lower. Memory: O(W + L).
package maze

import "github.com/katalvlaran/gridmaze/grid"

// latticeWall is a removable wall plus the two lattice cells it separates.
type latticeWall struct {
	wall, a, b grid.Coord
}

// Kruskal generates a maze into g with randomized Kruskal and returns the
// carve sequence; the sequence opens with every lattice cell (the singleton
// initialization), then the carved walls in removal order. The grid is
// rewritten in place. Returns ErrNilGrid for a nil grid.
func Kruskal(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	rng := o.rng()

	c := newCarver(g)

	// Every lattice cell: carved, appended, and its own set. The set id is
	// keyed by coordinate and scoped to this call.
	parent := make(map[grid.Coord]grid.Coord, g.Rows*g.Cols/4)
	walls := make([]latticeWall, 0, g.Rows*g.Cols/2)
	for r := 1; r < g.Rows-1; r += 2 {
		for col := 1; col < g.Cols-1; col += 2 {
			co := grid.Coord{Row: r, Col: col}
			parent[co] = co
			c.carve(co)

			// Collect east and south walls once per cell; that enumerates
			// every lattice-adjacent wall exactly once.
			if east := (grid.Coord{Row: r, Col: col + 2}); g.InBounds(east.Row, east.Col) {
				walls = append(walls, latticeWall{wall: wallBetween(co, east), a: co, b: east})
			}
			if south := (grid.Coord{Row: r + 2, Col: col}); g.InBounds(south.Row, south.Col) {
				walls = append(walls, latticeWall{wall: wallBetween(co, south), a: co, b: south})
			}
		}
	}

	// find chases parents to the set root. No compression on purpose.
	find := func(co grid.Coord) grid.Coord {
		for parent[co] != co {
			co = parent[co]
		}

		return co
	}

	// Knock out walls in uniformly random order until none remain.
	for len(walls) > 0 {
		i := rng.Intn(len(walls))
		w := walls[i]
		walls[i] = walls[len(walls)-1]
		walls = walls[:len(walls)-1]

		rootA, rootB := find(w.a), find(w.b)
		if rootA == rootB {
			continue // same set: carving would close a cycle
		}
		c.carve(w.wall)
		parent[rootA] = rootB
	}

	return c.finish(), nil
}
