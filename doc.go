// Package gridmaze is an in-memory engine for grid pathfinding and
// procedural maze generation — compute once, replay step by step.
//
// 🚀 What is gridmaze?
//
//	A small, deterministic library that brings together:
//		• Grid primitives: walls, start/end anchors, 4-connected adjacency
//		• Traversals: A* (Manhattan heuristic), Dijkstra, BFS, DFS
//		• Maze carving: randomized backtracker, Prim, Kruskal (union-find)
//		• Playback: timed, cancellable replay of visit/carve sequences
//
// ✨ Why choose gridmaze?
//
//   - Deterministic – injectable seeded RNG; same seed ⇒ same maze
//   - Replayable – every run yields an ordered sequence for stepwise reveal
//   - Pure Go – no cgo, no hidden deps
//   - Presentation-agnostic – the engine never draws; it hands you events
//
// Everything is organized under five subpackages:
//
//	grid/     — Cell, Coord and Grid types; wall and anchor invariants
//	search/   — A*, Dijkstra, BFS, DFS over a shared result contract
//	maze/     — three spanning-tree carvers with reproducible sequences
//	playback/ — event builders, caller-clock Feed, timed Scheduler
//	engine/   — configuration surface and a facade tying it all together
//
// Quick ASCII example (5×5, S=start, E=end, #=wall):
//
//	# # # # #
//	# S . . #
//	# . # . #
//	# . . E #
//	# # # # #
//
// A* walks S→E in four unit steps; the maze carvers would have produced the
// inner # layout in the first place.
//
//	go get github.com/katalvlaran/gridmaze
package gridmaze
