package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridmaze/grid"
)

// TestNew_Clamping verifies dimension coercion: minimum bound, maximum
// bound, and even→odd promotion.
func TestNew_Clamping(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		wantR      int
		wantC      int
	}{
		{"below minimum", 0, -3, grid.MinDimension, grid.MinDimension},
		{"even promoted to odd", 10, 16, 11, 17},
		{"odd kept", 7, 9, 7, 9},
		{"above maximum", 10_000, 1_000, grid.MaxDimension, grid.MaxDimension},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := grid.New(tc.rows, tc.cols)
			assert.Equal(t, tc.wantR, g.Rows)
			assert.Equal(t, tc.wantC, g.Cols)
			assert.Equal(t, 1, g.Rows%2, "rows must be odd")
			assert.Equal(t, 1, g.Cols%2, "cols must be odd")
		})
	}
}

// TestNew_DefaultAnchors checks the (1,1) / (rows-2, cols-2) placement and
// the fresh transient state of every cell.
func TestNew_DefaultAnchors(t *testing.T) {
	g := grid.New(9, 9)
	require.Equal(t, grid.Coord{Row: 1, Col: 1}, g.Start())
	require.Equal(t, grid.Coord{Row: 7, Col: 7}, g.End())

	assert.True(t, g.CellAt(g.Start()).Start)
	assert.True(t, g.CellAt(g.End()).End)

	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			cell := g.At(r, c)
			assert.False(t, cell.Wall)
			assert.True(t, math.IsInf(cell.G, 1))
			assert.True(t, math.IsInf(cell.Distance, 1))
			assert.Equal(t, grid.Unvisited, cell.VisitedAt)
			assert.False(t, cell.HasParent)
		}
	}
}

// TestToggleWall_ProtectedTargets: toggling the current start or end is a
// no-op, as is toggling out of bounds.
func TestToggleWall_ProtectedTargets(t *testing.T) {
	g := grid.New(5, 5)

	assert.False(t, g.ToggleWall(g.Start().Row, g.Start().Col))
	assert.False(t, g.CellAt(g.Start()).Wall)

	assert.False(t, g.ToggleWall(g.End().Row, g.End().Col))
	assert.False(t, g.CellAt(g.End()).Wall)

	assert.False(t, g.ToggleWall(-1, 2))
	assert.False(t, g.ToggleWall(2, 99))

	// A plain cell toggles on and back off.
	assert.True(t, g.ToggleWall(2, 2))
	assert.True(t, g.At(2, 2).Wall)
	assert.True(t, g.ToggleWall(2, 2))
	assert.False(t, g.At(2, 2).Wall)
}

// TestSetAnchor_MoveAndReject exercises anchor moves, the opposite-anchor
// rejection, and the forced wall clearing on the new anchor.
func TestSetAnchor_MoveAndReject(t *testing.T) {
	g := grid.New(7, 7)

	// Wall a cell, then anchor onto it: the wall must be forced off.
	require.True(t, g.ToggleWall(3, 3))
	require.True(t, g.SetAnchor(3, 3, grid.AnchorStart))
	assert.Equal(t, grid.Coord{Row: 3, Col: 3}, g.Start())
	assert.False(t, g.At(3, 3).Wall)
	assert.False(t, g.At(1, 1).Start, "previous anchor must be cleared")

	// Moving the end onto the start is rejected, grid unchanged.
	before := g.End()
	assert.False(t, g.SetAnchor(3, 3, grid.AnchorEnd))
	assert.Equal(t, before, g.End())
	assert.True(t, g.CellAt(before).End)

	// Same for moving the start onto the end.
	assert.False(t, g.SetAnchor(before.Row, before.Col, grid.AnchorStart))
	assert.Equal(t, grid.Coord{Row: 3, Col: 3}, g.Start())

	// Out of bounds is rejected.
	assert.False(t, g.SetAnchor(7, 0, grid.AnchorEnd))
}

// TestNeighbors_BoundsAndWalls: neighbors never include out-of-bounds or
// wall cells, across every cell of a grid with scattered walls.
func TestNeighbors_BoundsAndWalls(t *testing.T) {
	g := grid.New(7, 7)
	for _, co := range []grid.Coord{{Row: 0, Col: 3}, {Row: 3, Col: 3}, {Row: 6, Col: 2}, {Row: 2, Col: 5}} {
		require.True(t, g.ToggleWall(co.Row, co.Col))
	}

	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			for _, nb := range g.Neighbors(grid.Coord{Row: r, Col: c}) {
				require.True(t, g.InBounds(nb.Row, nb.Col), "neighbor %v of (%d,%d) out of bounds", nb, r, c)
				require.False(t, g.CellAt(nb).Wall, "neighbor %v of (%d,%d) is a wall", nb, r, c)
				dist := grid.Coord{Row: r, Col: c}.ManhattanTo(nb)
				require.Equal(t, 1, dist, "neighbor %v of (%d,%d) not axis-adjacent", nb, r, c)
			}
		}
	}

	// Corner cell has at most 2 neighbors.
	assert.LessOrEqual(t, len(g.Neighbors(grid.Coord{})), 2)
}

// TestResetTransient leaves layout intact while clearing metrics.
func TestResetTransient(t *testing.T) {
	g := grid.New(5, 5)
	require.True(t, g.ToggleWall(2, 2))

	cell := g.At(1, 2)
	cell.G, cell.H, cell.F = 1, 2, 3
	cell.Distance = 4
	cell.VisitedAt = 7
	cell.Parent = g.Start()
	cell.HasParent = true

	g.ResetTransient()

	assert.True(t, g.At(2, 2).Wall, "walls survive ResetTransient")
	assert.True(t, g.CellAt(g.Start()).Start)
	assert.True(t, math.IsInf(cell.G, 1))
	assert.True(t, math.IsInf(cell.F, 1))
	assert.True(t, math.IsInf(cell.Distance, 1))
	assert.Equal(t, grid.Unvisited, cell.VisitedAt)
	assert.False(t, cell.HasParent)
}

// TestFillWalls_And_SameWalls covers the maze seeding helper and the wall
// layout comparison used as the replay oracle.
func TestFillWalls_And_SameWalls(t *testing.T) {
	g := grid.New(5, 5)
	g.FillWalls()
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			require.True(t, g.At(r, c).Wall)
		}
	}
	assert.Empty(t, g.Neighbors(grid.Coord{Row: 2, Col: 2}))

	other := g.Clone()
	assert.True(t, g.SameWalls(other))
	other.At(1, 1).Wall = false
	assert.False(t, g.SameWalls(other))
	assert.False(t, g.SameWalls(nil))
	assert.False(t, g.SameWalls(grid.New(7, 7)))
}

// TestClone_Independent verifies the copy shares no cell storage.
func TestClone_Independent(t *testing.T) {
	g := grid.New(5, 5)
	cp := g.Clone()
	require.True(t, g.ToggleWall(2, 3))
	assert.False(t, cp.At(2, 3).Wall, "clone must not observe later edits")
	assert.Equal(t, g.Start(), cp.Start())
	assert.Equal(t, g.End(), cp.End())
}

func TestManhattanTo(t *testing.T) {
	a := grid.Coord{Row: 1, Col: 1}
	b := grid.Coord{Row: 3, Col: 3}
	assert.Equal(t, 4, a.ManhattanTo(b))
	assert.Equal(t, 4, b.ManhattanTo(a))
	assert.Equal(t, 0, a.ManhattanTo(a))
}
