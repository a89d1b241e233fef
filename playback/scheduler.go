package playback

import (
	"context"
	"sync"
	"time"
)

// Scheduler replays event sequences as timed callbacks, one playback at a
// time. A busy flag rejects overlapping runs; a generation counter lets
// Cancel invalidate the in-flight delivery goroutine instead of merely
// blocking new runs, so a logical reset cannot leak stale callbacks into
// shared presentation state.
type Scheduler struct {
	mu         sync.Mutex
	busy       bool
	generation uint64
}

// NewScheduler returns an idle Scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Busy reports whether a playback is outstanding. Grid edits and new runs
// should be rejected by the caller while this is true; the terminal event
// (or Cancel) clears it.
func (s *Scheduler) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.busy
}

// Cancel aborts the outstanding playback, if any: the busy flag clears
// immediately and the delivery goroutine stops before its next emit. An
// event already being emitted is not interrupted.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		s.generation++
		s.busy = false
	}
}

// Play starts delivering events to emit, each at its own absolute offset
// (Event.At) from the moment Play returns, in Seq order on a single
// goroutine. The final event must be terminal; delivering it clears the
// busy flag. Returns ErrBusy while a previous playback is outstanding,
// ErrNoEvents/ErrNilEmit for degenerate input. The returned Playback handle
// cancels just this run.
func (s *Scheduler) Play(events []Event, emit func(Event), opts ...Option) (*Playback, error) {
	if len(events) == 0 {
		return nil, ErrNoEvents
	}
	if emit == nil {
		return nil, ErrNilEmit
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()

		return nil, ErrBusy
	}
	s.busy = true
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	go s.run(gen, events, emit, o.Ctx)

	return &Playback{s: s, gen: gen}, nil
}

// run sleeps to each event's absolute deadline and emits it, bailing out as
// soon as the playback's generation is no longer current or ctx is done.
func (s *Scheduler) run(gen uint64, events []Event, emit func(Event), ctx context.Context) {
	start := time.Now()
	for _, ev := range events {
		if delay := time.Until(start.Add(ev.At)); delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				s.release(gen)

				return
			}
		}
		if !s.current(gen) {
			return // cancelled; a newer playback may already own the flag
		}
		emit(ev)
	}
	s.release(gen)
}

// current reports whether gen is still the live playback generation.
func (s *Scheduler) current(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.generation == gen
}

// release clears the busy flag if gen still owns it.
func (s *Scheduler) release(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation == gen {
		s.busy = false
	}
}

// Playback is the handle for one scheduled run. Its Cancel carries
// cancel-intent for exactly that run: a handle kept past its own terminal
// event can never abort a later playback.
type Playback struct {
	s   *Scheduler
	gen uint64
}

// Cancel aborts this playback if it is still the live one; otherwise it is
// a no-op.
func (p *Playback) Cancel() {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if p.s.generation == p.gen && p.s.busy {
		p.s.generation++
		p.s.busy = false
	}
}

// Active reports whether this playback is still the live, undelivered run.
func (p *Playback) Active() bool {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	return p.s.busy && p.s.generation == p.gen
}
