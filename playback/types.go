// Package playback defines the event model, sentinel errors, and options
// for replaying search and maze results as discrete timed disclosures.
package playback

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/gridmaze/grid"
	"github.com/katalvlaran/gridmaze/maze"
	"github.com/katalvlaran/gridmaze/search"
)

// Sentinel errors for playback scheduling.
var (
	// ErrBusy is returned when Play is called while a previous playback has
	// not reached its terminal event (and was not cancelled).
	ErrBusy = errors.New("playback: a playback is still running")

	// ErrNoEvents is returned when Play is given an empty event sequence.
	ErrNoEvents = errors.New("playback: empty event sequence")

	// ErrNilEmit is returned when Play is given a nil emit callback.
	ErrNilEmit = errors.New("playback: emit callback is nil")
)

// EventType discriminates playback events.
type EventType int

const (
	// EventVisit discloses one search-visited cell.
	EventVisit EventType = iota
	// EventCarve discloses one maze-carved cell.
	EventCarve
	// EventSearchDone terminates a search playback and carries the path.
	EventSearchDone
	// EventMazeDone terminates a maze playback.
	EventMazeDone
)

// String names the event type for logs and test output.
func (t EventType) String() string {
	switch t {
	case EventVisit:
		return "visit"
	case EventCarve:
		return "carve"
	case EventSearchDone:
		return "search-done"
	case EventMazeDone:
		return "maze-done"
	default:
		return "unknown"
	}
}

// Event is one discrete disclosure.
//
// Seq numbers events 0..n-1 in delivery order. At is the event's fixed
// offset from the moment playback begins — each event is scheduled at its
// own absolute offset, so load can drift timing but never reorder delivery.
// Cell is meaningful for EventVisit/EventCarve; Path is populated only on
// EventSearchDone. Terminal marks the final event of a playback.
type Event struct {
	Type     EventType
	Seq      int
	Cell     grid.Coord
	Path     []grid.Coord
	At       time.Duration
	Terminal bool
}

// Options holds scheduling knobs.
type Options struct {
	// Ctx aborts delivery of the remaining events when done.
	Ctx context.Context
}

// Option configures Play via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for aborting delivery.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// SearchEvents converts a search result into its timed event sequence: one
// EventVisit per visited cell at index*interval, then a terminal
// EventSearchDone carrying the full path at len(visited)*interval.
// Returns nil for a nil result.
func SearchEvents(res *search.Result, interval time.Duration) []Event {
	if res == nil {
		return nil
	}
	events := make([]Event, 0, len(res.Visited)+1)
	for i, co := range res.Visited {
		events = append(events, Event{
			Type: EventVisit,
			Seq:  i,
			Cell: co,
			At:   time.Duration(i) * interval,
		})
	}
	n := len(res.Visited)
	events = append(events, Event{
		Type:     EventSearchDone,
		Seq:      n,
		Path:     append([]grid.Coord(nil), res.Path...),
		At:       time.Duration(n) * interval,
		Terminal: true,
	})

	return events
}

// MazeEvents converts a maze result into its timed event sequence: one
// EventCarve per carve at index*interval (typically a shorter interval than
// search playback), then a terminal EventMazeDone.
// Returns nil for a nil result.
func MazeEvents(res *maze.Result, interval time.Duration) []Event {
	if res == nil {
		return nil
	}
	events := make([]Event, 0, len(res.Sequence)+1)
	for i, co := range res.Sequence {
		events = append(events, Event{
			Type: EventCarve,
			Seq:  i,
			Cell: co,
			At:   time.Duration(i) * interval,
		})
	}
	n := len(res.Sequence)
	events = append(events, Event{
		Type:     EventMazeDone,
		Seq:      n,
		At:       time.Duration(n) * interval,
		Terminal: true,
	})

	return events
}
