// Package maze generates perfect mazes — spanning trees over a lattice of
// odd-coordinate grid cells — via three classical randomized algorithms.
//
// What
//
//   - Generate(g, method, opts...): dispatch by name (GenBacktracker,
//     GenPrim, GenKruskal), or call Backtracker/Prim/Kruskal directly.
//   - Result.Sequence is the deterministic carve order; Replay applies a
//     sequence to an all-wall grid and reproduces the layout exactly, which
//     is what playback uses for stepwise reveal.
//   - All three carve the same structure class: lattice "rooms" at odd
//     (row, col) positions spaced 2 apart, corridors one cell wide, a
//     walled border.
//
// Character of the three carvers
//
//   - Backtracker: long winding corridors, few branches (depth-first).
//   - Prim: evenly branching, organic texture (random frontier growth).
//   - Kruskal: many short dead ends, uniform structure (random wall
//     removal over union-find).
//
// Spanning-tree guarantee
//
//	Before the final forced carve of the start and end anchors, the carved
//	lattice cells form a single spanning tree: exactly one simple path
//	between any two of them. The forced anchor carve can add a shortcut
//	when an anchor sits off the lattice parity; that deviation is
//	intentional — anchors must always end up reachable.
//
// Determinism
//
//	All randomness flows through one injectable source. WithSeed(s) makes a
//	run reproducible (seed 0 selects a fixed library default); WithRand
//	hands over a caller-owned *rand.Rand. Same seed ⇒ identical Sequence.
//
// Usage
//
//	g := grid.New(21, 21)
//	res, err := maze.Generate(g, maze.GenPrim, maze.WithSeed(42))
//	if err != nil {
//	    // ErrNilGrid or ErrUnknownGenerator
//	}
//	// res.Sequence drives playback; g now holds the carved layout.
//
// Errors
//
//   - ErrNilGrid           if the grid pointer is nil.
//   - ErrUnknownGenerator  if Generate is given an unrecognized name.
package maze
