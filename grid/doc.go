// Package grid provides the rectangular cell field underlying the gridmaze
// engine: coordinates, cells, wall editing, and start/end anchors.
//
// What
//
//   - Grid: a Rows×Cols field of Cell values, both dimensions always odd.
//   - Coord: a (Row, Col) key; Cell.Parent links are stored as Coords, not
//     pointers, so backtracking chains stay acyclic and easy to compare.
//   - Neighbors: 4-connected adjacency that never yields walls or
//     out-of-bounds cells.
//   - ToggleWall / SetAnchor: layout edits that silently reject protected
//     targets (the current anchors, the opposite anchor, out-of-bounds).
//   - ResetTransient: clears per-run search metrics between runs.
//
// Why
//
//	Search (package search) and maze carving (package maze) both operate on
//	the same mutable grid; this package owns the invariants they rely on:
//	exactly one start, exactly one end, anchors never walled, odd dimensions
//	with a walled border available for the maze lattice.
//
// Clamping
//
//	New(rows, cols) coerces each dimension to the nearest odd value within
//	[MinDimension, MaxDimension]. Odd dimensions give maze "rooms" at odd
//	coordinates spaced 2 apart, with walls on the even offsets between them.
//
// Errors
//
//	None. Invalid edits are rejected no-ops reported by a bool return;
//	invalid dimensions are clamped. There are no failure paths in this
//	package by design.
//
// Complexity
//
//   - New, ResetTransient, FillWalls, Clone, SameWalls: O(Rows×Cols)
//   - Neighbors, ToggleWall, SetAnchor, At, InBounds: O(1)
package grid
