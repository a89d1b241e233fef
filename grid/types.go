// Package grid defines the core types for the gridmaze engine:
// Coord, Cell, Anchor, and the dimension/sentinel constants shared by
// the search and maze subpackages.
package grid

import "math"

// Dimension bounds for a Grid. Requested sizes outside this range are
// clamped, never rejected; both bounds are odd so clamping preserves the
// odd-dimension invariant required by the maze lattice.
const (
	// MinDimension is the smallest supported row or column count.
	MinDimension = 5
	// MaxDimension is the largest supported row or column count.
	MaxDimension = 499
)

// Unvisited is the sentinel VisitedAt value for a cell no search run has
// reached yet.
const Unvisited = -1

// Coord identifies a cell by its (Row, Col) position within a Grid.
// Coords are plain values and safe to use as map keys.
type Coord struct {
	Row, Col int
}

// ManhattanTo returns the Manhattan distance from c to other: the sum of
// absolute row and column differences. Used as the A* heuristic.
// Complexity: O(1).
func (c Coord) ManhattanTo(other Coord) int {
	dr := c.Row - other.Row
	if dr < 0 {
		dr = -dr
	}
	dc := c.Col - other.Col
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// Anchor selects which endpoint SetAnchor moves.
type Anchor int

const (
	// AnchorStart designates the search origin cell.
	AnchorStart Anchor = iota
	// AnchorEnd designates the search goal cell.
	AnchorEnd
)

// Cell is a single grid position. Its identity (Row, Col) is immutable;
// everything else is transient run state or editable layout.
//
// Layout fields (Wall, Start, End) survive ResetTransient. Exactly one cell
// in a Grid carries Start and exactly one carries End, and neither is ever a
// Wall once a public Grid operation returns.
//
// Metric fields (G, H, F, Distance, VisitedAt, Parent) belong to a single
// search run and are re-initialized by ResetTransient. Parent is stored as a
// coordinate key rather than a live pointer, so parent chains are trivially
// acyclic to serialize and compare; HasParent distinguishes "no parent yet"
// from a parent at the zero Coord.
type Cell struct {
	Row, Col int

	Wall  bool
	Start bool
	End   bool

	G, H, F  float64 // A* metrics: cost from start, heuristic, and their sum
	Distance float64 // Dijkstra tentative distance

	VisitedAt int   // discovery/finalization index, or Unvisited
	Parent    Coord // backtracking edge toward the start
	HasParent bool
}

// Coord returns the cell's position as a Coord key.
func (c *Cell) Coord() Coord {
	return Coord{Row: c.Row, Col: c.Col}
}

// resetTransient restores the cell's per-run metrics to their defaults.
func (c *Cell) resetTransient() {
	inf := math.Inf(1)
	c.G, c.H, c.F = inf, inf, inf
	c.Distance = inf
	c.VisitedAt = Unvisited
	c.Parent = Coord{}
	c.HasParent = false
}
