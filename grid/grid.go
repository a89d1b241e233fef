package grid

import "strings"

// neighborOffsets lists the 4-directional adjacency deltas: N, E, S, W.
// Diagonal movement is not supported anywhere in the engine.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Grid is a rectangular Rows×Cols field of cells. Both dimensions are always
// odd, so the maze lattice of odd (row, col) centers has a walled border and
// a uniform center-to-center spacing of 2.
//
// A Grid is not safe for concurrent mutation; the engine runs algorithms to
// completion on a single goroutine and only playback delivery is async.
type Grid struct {
	Rows, Cols int

	cells      [][]Cell
	start, end Coord
}

// clampDimension coerces d into [MinDimension, MaxDimension] and then to the
// next odd value. Out-of-range input is clamped rather than rejected.
// Complexity: O(1).
func clampDimension(d int) int {
	if d < MinDimension {
		d = MinDimension
	}
	if d > MaxDimension {
		d = MaxDimension
	}
	if d%2 == 0 {
		d++ // MaxDimension is odd, so this never overshoots the bound
	}

	return d
}

// New builds a Grid with rows×cols cells (each dimension clamped per
// clampDimension), all transient metrics reset, no walls, the start anchor
// at (1,1) and the end anchor at (rows-2, cols-2).
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) *Grid {
	rows = clampDimension(rows)
	cols = clampDimension(cols)

	cells := make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]Cell, cols)
		for c := 0; c < cols; c++ {
			cell := &cells[r][c]
			cell.Row, cell.Col = r, c
			cell.resetTransient()
		}
	}

	g := &Grid{
		Rows:  rows,
		Cols:  cols,
		cells: cells,
		start: Coord{Row: 1, Col: 1},
		end:   Coord{Row: rows - 2, Col: cols - 2},
	}
	g.cells[g.start.Row][g.start.Col].Start = true
	g.cells[g.end.Row][g.end.Col].End = true

	return g
}

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// At returns the cell at (row, col), or nil when out of bounds.
// The pointer stays valid for the lifetime of the Grid.
// Complexity: O(1).
func (g *Grid) At(row, col int) *Cell {
	if !g.InBounds(row, col) {
		return nil
	}

	return &g.cells[row][col]
}

// CellAt returns the cell at Coord co, or nil when out of bounds.
func (g *Grid) CellAt(co Coord) *Cell {
	return g.At(co.Row, co.Col)
}

// Start returns the coordinate of the current start anchor.
func (g *Grid) Start() Coord { return g.start }

// End returns the coordinate of the current end anchor.
func (g *Grid) End() Coord { return g.end }

// Neighbors returns the up-to-4 axis-aligned neighbors of co that are in
// bounds and not walls, in N, E, S, W order. Out-of-bounds and wall cells
// are never returned.
// Complexity: O(1).
func (g *Grid) Neighbors(co Coord) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		nr, nc := co.Row+d[0], co.Col+d[1]
		if !g.InBounds(nr, nc) || g.cells[nr][nc].Wall {
			continue
		}
		out = append(out, Coord{Row: nr, Col: nc})
	}

	return out
}

// ToggleWall flips the wall flag at (row, col) and reports whether the edit
// was applied. Edits targeting the start or end anchor, or an out-of-bounds
// position, are rejected no-ops.
// Complexity: O(1).
func (g *Grid) ToggleWall(row, col int) bool {
	cell := g.At(row, col)
	if cell == nil || cell.Start || cell.End {
		return false
	}
	cell.Wall = !cell.Wall

	return true
}

// SetAnchor moves the start or end anchor to (row, col), clearing the
// previous anchor and forcing the target's wall flag off. The move is
// rejected (false, grid unchanged) when the target is out of bounds or
// already holds the other anchor. Re-anchoring onto the anchor's own current
// cell is accepted and leaves the grid unchanged.
// Complexity: O(1).
func (g *Grid) SetAnchor(row, col int, kind Anchor) bool {
	cell := g.At(row, col)
	if cell == nil {
		return false
	}
	switch kind {
	case AnchorStart:
		if cell.End {
			return false
		}
		g.cells[g.start.Row][g.start.Col].Start = false
		cell.Start = true
		cell.Wall = false
		g.start = cell.Coord()
	case AnchorEnd:
		if cell.Start {
			return false
		}
		g.cells[g.end.Row][g.end.Col].End = false
		cell.End = true
		cell.Wall = false
		g.end = cell.Coord()
	default:
		return false
	}

	return true
}

// ResetTransient restores every cell's per-run metrics (G, H, F, Distance to
// +Inf; VisitedAt to Unvisited; Parent cleared) while leaving the wall and
// anchor layout untouched. Search and maze runs call this before starting.
// Complexity: O(Rows×Cols).
func (g *Grid) ResetTransient() {
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			g.cells[r][c].resetTransient()
		}
	}
}

// FillWalls marks every cell — anchors included — as a wall. Maze generation
// seeds its carve phase with this; generators re-carve both anchors before
// returning, so the anchors-are-never-walls invariant holds again once any
// public maze operation completes.
// Complexity: O(Rows×Cols).
func (g *Grid) FillWalls() {
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			g.cells[r][c].Wall = true
		}
	}
}

// Clone returns a deep copy of the grid, layout and transient state alike.
// Complexity: O(Rows×Cols).
func (g *Grid) Clone() *Grid {
	cp := &Grid{
		Rows:  g.Rows,
		Cols:  g.Cols,
		cells: make([][]Cell, g.Rows),
		start: g.start,
		end:   g.end,
	}
	for r := 0; r < g.Rows; r++ {
		cp.cells[r] = make([]Cell, g.Cols)
		copy(cp.cells[r], g.cells[r])
	}

	return cp
}

// SameWalls reports whether g and other share identical dimensions and wall
// layout. Transient metrics and anchors are ignored.
// Complexity: O(Rows×Cols).
func (g *Grid) SameWalls(other *Grid) bool {
	if other == nil || g.Rows != other.Rows || g.Cols != other.Cols {
		return false
	}
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.cells[r][c].Wall != other.cells[r][c].Wall {
				return false
			}
		}
	}

	return true
}

// String renders the grid as ASCII rows: '#' wall, '.' open, 'S' start,
// 'E' end. Intended for examples and debugging, not as a wire format.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Cols + 1) * g.Rows)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			cell := &g.cells[r][c]
			switch {
			case cell.Start:
				b.WriteByte('S')
			case cell.End:
				b.WriteByte('E')
			case cell.Wall:
				b.WriteByte('#')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
