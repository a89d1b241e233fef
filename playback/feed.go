package playback

// Feed is a restartable cursor over an event sequence, for consumers that
// drive disclosure from their own clock or render loop instead of the
// Scheduler's timers. Next yields events strictly in Seq order; Rewind
// restarts from the beginning. A Feed is not safe for concurrent use.
type Feed struct {
	events []Event
	next   int
}

// NewFeed wraps an event sequence (as built by SearchEvents or MazeEvents).
// The slice is not copied; the caller should not mutate it afterwards.
func NewFeed(events []Event) *Feed {
	return &Feed{events: events}
}

// Next returns the next event and true, or the zero Event and false once
// the sequence is exhausted.
func (f *Feed) Next() (Event, bool) {
	if f.next >= len(f.events) {
		return Event{}, false
	}
	ev := f.events[f.next]
	f.next++

	return ev, true
}

// Rewind restarts the feed from the first event.
func (f *Feed) Rewind() {
	f.next = 0
}

// Len returns the total number of events in the feed.
func (f *Feed) Len() int { return len(f.events) }

// Remaining returns how many events Next has not yet yielded.
func (f *Feed) Remaining() int { return len(f.events) - f.next }
