package term

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPumpEventsStopsWhenReaderIsGone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	poll := func() tcell.Event { return tcell.NewEventInterrupt(nil) }
	out := make(chan tcell.Event, 1)

	done := make(chan struct{})
	go func() {
		pumpEvents(ctx, poll, out)
		close(done)
	}()

	// The buffer fills and nobody drains it.
	require.Eventually(t, func() bool { return len(out) == cap(out) }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("event pump still blocked after cancel")
	}
}

func TestPumpEventsStopsOnNilEvent(t *testing.T) {
	events := []tcell.Event{tcell.NewEventInterrupt(1), tcell.NewEventInterrupt(2), nil}
	poll := func() tcell.Event {
		ev := events[0]
		events = events[1:]
		return ev
	}
	out := make(chan tcell.Event, len(events))

	pumpEvents(context.Background(), poll, out)
	require.Len(t, out, 2)
	assert.Equal(t, 1, (<-out).(*tcell.EventInterrupt).Data())
}
