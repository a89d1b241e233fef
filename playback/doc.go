// Package playback turns computed search and maze results into discrete,
// timed disclosure events, decoupling what was computed from how and when a
// presentation layer reveals it.
//
// What
//
//   - SearchEvents(res, interval): one EventVisit per visited cell at
//     index*interval, then a terminal EventSearchDone carrying the path.
//   - MazeEvents(res, interval): one EventCarve per carve entry, then a
//     terminal EventMazeDone. Carve intervals are typically shorter than
//     search intervals.
//   - Feed: a restartable cursor for consumers with their own clock or
//     render loop — no timers, no goroutines.
//   - Scheduler: timed delivery on a single goroutine, with a busy flag
//     (one playback at a time) and a generation counter (Cancel suppresses
//     in-flight events rather than merely blocking new runs).
//
// Timing model
//
//	Every event carries a fixed offset (Event.At) from the moment playback
//	begins; the Scheduler sleeps to each absolute deadline rather than
//	chaining off the previous callback. Under load this permits drift but
//	never reordering — delivery is strictly in Seq order. Consumers needing
//	exact frame alignment should drive a Feed from their own loop instead.
//
// Reentrancy and cancellation
//
//	Play refuses to start while a previous playback has not reached its
//	terminal event (ErrBusy); callers poll Busy or wait for the terminal
//	event rather than retrying aggressively. Cancel — on the Scheduler or
//	on the Playback handle returned by Play — bumps the generation so the
//	delivery goroutine stops before its next emit; a handle can never abort
//	a run other than its own. WithContext additionally aborts delivery when
//	the context is done.
//
// Usage
//
//	sched := playback.NewScheduler()
//	events := playback.SearchEvents(res, 25*time.Millisecond)
//	handle, err := sched.Play(events, func(ev playback.Event) {
//	    // paint ev.Cell; on ev.Terminal, paint ev.Path
//	})
//	if errors.Is(err, playback.ErrBusy) {
//	    // a previous reveal is still running
//	}
//	_ = handle // handle.Cancel() to abandon this reveal
//
// Errors
//
//   - ErrBusy      a playback is still outstanding.
//   - ErrNoEvents  Play called with an empty sequence.
//   - ErrNilEmit   Play called without a callback.
package playback
