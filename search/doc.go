// Package search provides four interchangeable traversal strategies over a
// grid.Grid — A*, Dijkstra, BFS, DFS — sharing one result contract.
//
// What
//
//   - Run(g, algorithm, opts...): dispatch by name (AlgAStar, AlgDijkstra,
//     AlgBFS, AlgDFS), or call AStar/Dijkstra/BFS/DFS directly.
//   - Every strategy returns a Result with:
//   - Path:    start→goal cell sequence, empty when unreachable
//   - Visited: every expanded cell in the strategy's own order
//   - All strategies use uniform edge cost 1 and 4-directional adjacency via
//     grid.Neighbors, which already excludes walls and out-of-bounds cells.
//   - ReconstructPath walks Parent coordinate links goal→start and returns
//     the forward sequence.
//
// Visit order semantics
//
//	A* and Dijkstra record cells in finalization order (closed-set / heap
//	extraction). BFS records at enqueue — discovery time. DFS records at pop
//	— expansion time — and uses the VisitedAt stamp to ignore duplicate
//	stack entries. These orders are what playback replays.
//
// Determinism
//
//	BFS and DFS are fully deterministic: grid.Neighbors yields N, E, S, W.
//	A* and Dijkstra are deterministic for a fixed grid, but the tie-break
//	among equal-priority frontier cells is an artifact of the binary heap
//	and is not a contractual guarantee — do not assert on it.
//
// Complexity (N = Rows×Cols)
//
//   - BFS, DFS:       O(N) time, O(N) memory
//   - A*, Dijkstra:   O(N log N) time (lazy-decrease-key heap), O(N) memory
//
// Usage
//
//	g := grid.New(15, 15)
//	g.ToggleWall(3, 4)
//	res, err := search.Run(g, search.AlgAStar)
//	if err != nil {
//	    // ErrNilGrid or ErrUnknownAlgorithm
//	}
//	if !res.Found() {
//	    // goal unreachable: res.Visited is the whole reachable component
//	}
//
// Options
//
//   - WithOnExpand(fn): hook fired once per visited cell, in Visited order.
//
// Errors
//
//   - ErrNilGrid           if the grid pointer is nil.
//   - ErrUnknownAlgorithm  if Run is given an unrecognized name.
//   - An unreachable goal is not an error: Path is simply empty.
package search
