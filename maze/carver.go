package maze

import "github.com/katalvlaran/gridmaze/grid"

// latticeOffsets are the 2-step deltas between adjacent lattice cells, in
// N, E, S, W order. Lattice cells sit at odd (row, col) positions; the cell
// midway between two lattice neighbors is the wall the carvers knock out.
var latticeOffsets = [4][2]int{{-2, 0}, {0, 2}, {2, 0}, {0, -2}}

// latticeSeed is where every generator's lattice anchors: the top-left
// lattice cell.
var latticeSeed = grid.Coord{Row: 1, Col: 1}

// carver accumulates a carve sequence while clearing walls on the grid.
// Each generator owns one carver per run; the visited/ownership bookkeeping
// specific to an algorithm stays in that algorithm's local state and is not
// persisted on the grid.
type carver struct {
	g   *grid.Grid
	seq []grid.Coord
}

// newCarver walls the entire grid and prepares an empty sequence, so that
// replaying the final sequence from an all-wall state is the identity.
func newCarver(g *grid.Grid) *carver {
	g.ResetTransient()
	g.FillWalls()

	return &carver{
		g:   g,
		seq: make([]grid.Coord, 0, g.Rows*g.Cols/2),
	}
}

// carve clears the wall at co and appends co to the sequence.
func (c *carver) carve(co grid.Coord) {
	c.g.CellAt(co).Wall = false
	c.seq = append(c.seq, co)
}

// finish force-carves the declared start and end anchors and appends both to
// the sequence, restoring the anchors-are-never-walls invariant. When an
// anchor sits off the lattice parity this can open a connection that is not
// part of the formal spanning tree; the shortcut is intentional — the
// anchors must always be reachable cells.
func (c *carver) finish() *Result {
	c.carve(c.g.Start())
	c.carve(c.g.End())

	return &Result{Grid: c.g, Sequence: c.seq}
}

// latticeNeighbors returns the in-bounds lattice cells 2 steps from co, in
// offset order. Odd dimensions guarantee these never land on the border.
func (c *carver) latticeNeighbors(co grid.Coord) []grid.Coord {
	out := make([]grid.Coord, 0, len(latticeOffsets))
	for _, d := range latticeOffsets {
		nb := grid.Coord{Row: co.Row + d[0], Col: co.Col + d[1]}
		if c.g.InBounds(nb.Row, nb.Col) {
			out = append(out, nb)
		}
	}

	return out
}

// wallBetween returns the cell midway between two lattice neighbors.
func wallBetween(a, b grid.Coord) grid.Coord {
	return grid.Coord{Row: (a.Row + b.Row) / 2, Col: (a.Col + b.Col) / 2}
}
