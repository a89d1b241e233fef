package engine

import (
	"github.com/katalvlaran/gridmaze/grid"
	"github.com/katalvlaran/gridmaze/maze"
	"github.com/katalvlaran/gridmaze/playback"
	"github.com/katalvlaran/gridmaze/search"
)

// Engine owns one grid and one playback scheduler and enforces the
// interaction rules between them: while a playback is outstanding, the grid
// cannot be edited and no new run can start. Algorithm computation itself
// is synchronous and run-to-completion; only event delivery is timed.
//
// Engine methods are meant to be driven from a single caller goroutine (the
// presentation layer's event loop); the scheduler internally synchronizes
// with its delivery goroutine.
type Engine struct {
	cfg   Config
	grid  *grid.Grid
	sched *playback.Scheduler
}

// New builds an Engine from DefaultConfig plus any options.
func New(opts ...Option) *Engine {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{
		cfg:   cfg,
		grid:  grid.New(cfg.Rows, cfg.Cols),
		sched: playback.NewScheduler(),
	}
}

// Config returns the engine's effective configuration.
func (e *Engine) Config() Config { return e.cfg }

// Grid exposes the engine's grid for rendering and inspection. Mutate it
// only through ToggleWall/SetAnchor so the busy guard applies.
func (e *Engine) Grid() *grid.Grid { return e.grid }

// Busy reports whether a playback is outstanding.
func (e *Engine) Busy() bool { return e.sched.Busy() }

// ToggleWall flips a wall unless the target is protected or a playback is
// outstanding. Returns whether the edit was applied.
func (e *Engine) ToggleWall(row, col int) bool {
	if e.sched.Busy() {
		return false
	}

	return e.grid.ToggleWall(row, col)
}

// SetAnchor moves the start or end anchor unless the move is invalid or a
// playback is outstanding. Returns whether the move was applied.
func (e *Engine) SetAnchor(row, col int, kind grid.Anchor) bool {
	if e.sched.Busy() {
		return false
	}

	return e.grid.SetAnchor(row, col, kind)
}

// ResetGrid replaces the grid with a fresh one of the configured size,
// abandoning any outstanding playback first.
func (e *Engine) ResetGrid() {
	e.sched.Cancel()
	e.grid = grid.New(e.cfg.Rows, e.cfg.Cols)
}

// RunSearch executes the configured search strategy synchronously.
// Returns playback.ErrBusy while a playback is outstanding, or
// search.ErrUnknownAlgorithm for a misconfigured strategy name.
func (e *Engine) RunSearch(opts ...search.Option) (*search.Result, error) {
	if e.sched.Busy() {
		return nil, playback.ErrBusy
	}

	return search.Run(e.grid, e.cfg.SearchAlgorithm, opts...)
}

// RunMaze executes the configured maze generator synchronously, rewriting
// the grid's wall layout. Returns playback.ErrBusy while a playback is
// outstanding, or maze.ErrUnknownGenerator for a misconfigured name.
func (e *Engine) RunMaze(opts ...maze.Option) (*maze.Result, error) {
	if e.sched.Busy() {
		return nil, playback.ErrBusy
	}

	return maze.Generate(e.grid, e.cfg.MazeAlgorithm, opts...)
}

// PlaySearch schedules timed disclosure of a search result at the
// configured discovery interval. The emit callback receives every visit
// event and the terminal path event in order.
func (e *Engine) PlaySearch(res *search.Result, emit func(playback.Event), opts ...playback.Option) (*playback.Playback, error) {
	return e.sched.Play(playback.SearchEvents(res, e.cfg.SearchInterval), emit, opts...)
}

// PlayMaze schedules timed disclosure of a maze result at the configured
// carve interval.
func (e *Engine) PlayMaze(res *maze.Result, emit func(playback.Event), opts ...playback.Option) (*playback.Playback, error) {
	return e.sched.Play(playback.MazeEvents(res, e.cfg.CarveInterval), emit, opts...)
}

// PlayEvents schedules an arbitrary pre-built event sequence, for callers
// that assemble or splice their own reveals.
func (e *Engine) PlayEvents(events []playback.Event, emit func(playback.Event), opts ...playback.Option) (*playback.Playback, error) {
	return e.sched.Play(events, emit, opts...)
}

// CancelPlayback abandons the outstanding playback, if any, unblocking
// edits and new runs. In-flight events are suppressed, not merely ignored.
func (e *Engine) CancelPlayback() {
	e.sched.Cancel()
}
