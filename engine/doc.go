// Package engine is the embedding facade: one grid, one playback scheduler,
// and the interaction rules a presentation layer relies on.
//
// What
//
//   - New(opts...): build an Engine from DefaultConfig plus functional
//     options (grid size, strategy names, playback intervals).
//   - ToggleWall / SetAnchor: guarded grid edits — rejected (false) while a
//     playback is outstanding, on top of the grid's own protection rules.
//   - RunSearch / RunMaze: synchronous execution of the configured strategy;
//     refused with playback.ErrBusy while a reveal is outstanding.
//   - PlaySearch / PlayMaze: timed disclosure of a computed result at the
//     configured interval.
//   - ResetGrid: abandon any playback and start over on a fresh grid.
//
// Why
//
//	The grid, search, maze and playback packages are each usable alone; the
//	engine exists to enforce the one cross-cutting rule none of them can
//	state by itself: while events are being revealed, the world they
//	describe must not change. Every mutation path therefore funnels through
//	the scheduler's busy flag.
//
// Usage
//
//	e := engine.New(
//	    engine.WithRows(15), engine.WithCols(25),
//	    engine.WithSearchAlgorithm(search.AlgDijkstra),
//	)
//	if _, err := e.RunMaze(maze.WithSeed(42)); err != nil { ... }
//	res, err := e.RunSearch()
//	if err != nil { ... }
//	handle, err := e.PlaySearch(res, paint)
//
// Errors
//
//	RunSearch/RunMaze surface playback.ErrBusy, search.ErrUnknownAlgorithm
//	and maze.ErrUnknownGenerator; Play* surface the playback package's
//	errors. Edits report rejection via their bool return instead.
package engine
