package playback_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridmaze/grid"
	"github.com/katalvlaran/gridmaze/maze"
	"github.com/katalvlaran/gridmaze/playback"
	"github.com/katalvlaran/gridmaze/search"
)

// searchFixture runs BFS on a small open grid.
func searchFixture(t *testing.T) *search.Result {
	t.Helper()
	res, err := search.BFS(grid.New(5, 5))
	require.NoError(t, err)
	require.True(t, res.Found())

	return res
}

// collect drains events from emit into a channel until the terminal event
// or a timeout, then returns everything received.
func collect(t *testing.T, ch <-chan playback.Event, wantTerminal bool) []playback.Event {
	t.Helper()
	var got []playback.Event
	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev := <-ch:
			got = append(got, ev)
			if ev.Terminal {
				return got
			}
		case <-deadline:
			if wantTerminal {
				t.Fatalf("timed out after %d events", len(got))
			}

			return got
		}
	}
}

func TestSearchEvents_Shape(t *testing.T) {
	res := searchFixture(t)
	const interval = 10 * time.Millisecond

	events := playback.SearchEvents(res, interval)
	require.Len(t, events, len(res.Visited)+1)

	for i, ev := range events[:len(events)-1] {
		assert.Equal(t, playback.EventVisit, ev.Type)
		assert.Equal(t, i, ev.Seq)
		assert.Equal(t, res.Visited[i], ev.Cell)
		assert.Equal(t, time.Duration(i)*interval, ev.At)
		assert.False(t, ev.Terminal)
		assert.Nil(t, ev.Path)
	}

	last := events[len(events)-1]
	assert.Equal(t, playback.EventSearchDone, last.Type)
	assert.True(t, last.Terminal)
	assert.Equal(t, res.Path, last.Path)
	assert.Equal(t, time.Duration(len(res.Visited))*interval, last.At)

	// The terminal path is a detached copy.
	last.Path[0] = grid.Coord{Row: 99, Col: 99}
	assert.NotEqual(t, last.Path[0], res.Path[0])

	assert.Nil(t, playback.SearchEvents(nil, interval))
}

func TestMazeEvents_Shape(t *testing.T) {
	res, err := maze.Generate(grid.New(9, 9), maze.GenKruskal, maze.WithSeed(2))
	require.NoError(t, err)

	events := playback.MazeEvents(res, time.Millisecond)
	require.Len(t, events, len(res.Sequence)+1)
	for i, ev := range events[:len(events)-1] {
		assert.Equal(t, playback.EventCarve, ev.Type)
		assert.Equal(t, res.Sequence[i], ev.Cell)
		assert.Equal(t, time.Duration(i)*time.Millisecond, ev.At)
	}
	assert.Equal(t, playback.EventMazeDone, events[len(events)-1].Type)
	assert.True(t, events[len(events)-1].Terminal)

	assert.Nil(t, playback.MazeEvents(nil, time.Millisecond))
}

func TestFeed_CursorSemantics(t *testing.T) {
	events := playback.SearchEvents(searchFixture(t), time.Millisecond)
	feed := playback.NewFeed(events)

	assert.Equal(t, len(events), feed.Len())
	assert.Equal(t, len(events), feed.Remaining())

	var seen int
	for {
		ev, ok := feed.Next()
		if !ok {
			break
		}
		assert.Equal(t, seen, ev.Seq, "feed must yield Seq order")
		seen++
	}
	assert.Equal(t, len(events), seen)
	assert.Equal(t, 0, feed.Remaining())

	_, ok := feed.Next()
	assert.False(t, ok, "exhausted feed keeps returning false")

	feed.Rewind()
	first, ok := feed.Next()
	require.True(t, ok)
	assert.Equal(t, 0, first.Seq)
	assert.Equal(t, len(events)-1, feed.Remaining())
}

func TestPlay_DegenerateInput(t *testing.T) {
	sched := playback.NewScheduler()

	_, err := sched.Play(nil, func(playback.Event) {})
	assert.ErrorIs(t, err, playback.ErrNoEvents)

	events := playback.SearchEvents(searchFixture(t), 0)
	_, err = sched.Play(events, nil)
	assert.ErrorIs(t, err, playback.ErrNilEmit)

	assert.False(t, sched.Busy(), "rejected Play must not set the busy flag")
}

// TestPlay_InOrderDelivery: every event arrives, in Seq order, terminal
// last, and the busy flag clears afterwards.
func TestPlay_InOrderDelivery(t *testing.T) {
	res := searchFixture(t)
	events := playback.SearchEvents(res, time.Millisecond)

	sched := playback.NewScheduler()
	ch := make(chan playback.Event, len(events))
	handle, err := sched.Play(events, func(ev playback.Event) { ch <- ev })
	require.NoError(t, err)
	require.NotNil(t, handle)
	assert.True(t, sched.Busy())

	got := collect(t, ch, true)
	require.Len(t, got, len(events))
	for i, ev := range got {
		assert.Equal(t, i, ev.Seq, "delivery reordered at %d", i)
	}
	assert.True(t, got[len(got)-1].Terminal)
	assert.Equal(t, res.Path, got[len(got)-1].Path)

	// Busy clears once the terminal event is delivered.
	assert.Eventually(t, func() bool { return !sched.Busy() }, time.Second, time.Millisecond)
	assert.False(t, handle.Active())
}

// TestPlay_BusyRejection: a second run is refused until the first finishes
// or is cancelled.
func TestPlay_BusyRejection(t *testing.T) {
	events := []playback.Event{
		{Type: playback.EventVisit, Seq: 0, At: 0},
		{Type: playback.EventSearchDone, Seq: 1, At: time.Hour, Terminal: true},
	}

	sched := playback.NewScheduler()
	handle, err := sched.Play(events, func(playback.Event) {})
	require.NoError(t, err)

	_, err = sched.Play(events, func(playback.Event) {})
	assert.ErrorIs(t, err, playback.ErrBusy)

	handle.Cancel()
	assert.False(t, sched.Busy())

	// After cancellation a fresh run may start.
	short := playback.SearchEvents(searchFixture(t), 0)
	ch := make(chan playback.Event, len(short))
	_, err = sched.Play(short, func(ev playback.Event) { ch <- ev })
	require.NoError(t, err)
	collect(t, ch, true)
}

// TestCancel_SuppressesInFlight: cancelling mid-run stops delivery before
// the next scheduled event; no terminal event arrives.
func TestCancel_SuppressesInFlight(t *testing.T) {
	events := []playback.Event{
		{Type: playback.EventCarve, Seq: 0, At: 0},
		{Type: playback.EventCarve, Seq: 1, At: 200 * time.Millisecond},
		{Type: playback.EventMazeDone, Seq: 2, At: 400 * time.Millisecond, Terminal: true},
	}

	sched := playback.NewScheduler()
	ch := make(chan playback.Event, len(events))
	handle, err := sched.Play(events, func(ev playback.Event) { ch <- ev })
	require.NoError(t, err)

	// Wait for the immediate first event, then cancel.
	select {
	case ev := <-ch:
		require.Equal(t, 0, ev.Seq)
	case <-time.After(2 * time.Second):
		t.Fatal("first event never arrived")
	}
	handle.Cancel()
	assert.False(t, handle.Active())
	assert.False(t, sched.Busy())

	// The remaining events must stay suppressed.
	select {
	case ev := <-ch:
		t.Fatalf("suppressed event %d delivered after cancel", ev.Seq)
	case <-time.After(600 * time.Millisecond):
	}
}

// TestCancel_StaleHandleIsNoOp: a handle from a finished run cannot abort a
// later playback.
func TestCancel_StaleHandleIsNoOp(t *testing.T) {
	sched := playback.NewScheduler()
	first := playback.SearchEvents(searchFixture(t), 0)

	ch := make(chan playback.Event, len(first))
	stale, err := sched.Play(first, func(ev playback.Event) { ch <- ev })
	require.NoError(t, err)
	collect(t, ch, true)
	assert.Eventually(t, func() bool { return !sched.Busy() }, time.Second, time.Millisecond)

	second := []playback.Event{
		{Type: playback.EventVisit, Seq: 0, At: 0},
		{Type: playback.EventSearchDone, Seq: 1, At: time.Hour, Terminal: true},
	}
	live, err := sched.Play(second, func(playback.Event) {})
	require.NoError(t, err)

	stale.Cancel() // belongs to the finished run; must not touch the live one
	assert.True(t, sched.Busy())
	assert.True(t, live.Active())

	live.Cancel()
	assert.False(t, sched.Busy())
}

// TestPlay_ContextAbort: a done context stops delivery and releases the
// busy flag.
func TestPlay_ContextAbort(t *testing.T) {
	events := []playback.Event{
		{Type: playback.EventVisit, Seq: 0, At: 0},
		{Type: playback.EventSearchDone, Seq: 1, At: time.Hour, Terminal: true},
	}

	ctx, cancel := context.WithCancel(context.Background())
	sched := playback.NewScheduler()
	ch := make(chan playback.Event, 1)
	_, err := sched.Play(events, func(ev playback.Event) { ch <- ev }, playback.WithContext(ctx))
	require.NoError(t, err)

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("first event never arrived")
	}
	cancel()
	assert.Eventually(t, func() bool { return !sched.Busy() }, time.Second, time.Millisecond)
}
