package notify

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu        sync.Mutex
	delivered []Event
	err       error
}

func (s *recordingSink) Deliver(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.delivered = append(s.delivered, ev)
	return nil
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.delivered)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition never met")
}

func TestDispatcherDelivers(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink)

	d.Dispatch(Event{RecipientID: 1, RecipientRole: "customer", Kind: "booking_status_changed", Message: "hi"})
	d.Dispatch(Event{RecipientID: 2, RecipientRole: "landscaper", Kind: "booking_created"})

	waitFor(t, func() bool { return sink.count() == 2 })

	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.Equal(t, uint(1), sink.delivered[0].RecipientID)
	assert.Equal(t, "booking_created", sink.delivered[1].Kind)
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	// no worker draining, so the second event has nowhere to go
	d := &Dispatcher{
		sink:  &recordingSink{},
		queue: make(chan Event, 1),
	}

	d.Dispatch(Event{RecipientID: 1})
	d.Dispatch(Event{RecipientID: 2})

	require.Len(t, d.queue, 1)
	ev := <-d.queue
	assert.Equal(t, uint(1), ev.RecipientID, "first event kept, overflow dropped")
}

func TestDispatcherSurvivesSinkErrors(t *testing.T) {
	sink := &recordingSink{err: errors.New("db down")}
	d := NewDispatcher(sink)

	d.Dispatch(Event{RecipientID: 1})

	waitFor(t, func() bool { return len(d.queue) == 0 })

	sink.mu.Lock()
	sink.err = nil
	sink.mu.Unlock()

	d.Dispatch(Event{RecipientID: 2})
	waitFor(t, func() bool { return sink.count() == 1 })
}
