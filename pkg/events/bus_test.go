package events

import (
	"testing"
	"time"
)

func TestPublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	ch := bus.Subscribe()

	ev := NewEvent(EventAssertionResult)
	ev.Resource = "package"
	ev.Subject = "chrony"
	ev.Passed = true
	bus.Publish(ev)

	select {
	case got := <-ch:
		if got.Type != EventAssertionResult || got.Resource != "package" {
			t.Errorf("unexpected event: %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestSubscribeFilter(t *testing.T) {
	bus := NewMemoryBus()
	ch := bus.Subscribe(EventSuiteEnd)

	bus.Publish(NewEvent(EventAssertionResult))
	bus.Publish(NewEvent(EventSuiteEnd))

	select {
	case got := <-ch:
		if got.Type != EventSuiteEnd {
			t.Errorf("filter leaked event type %s", got.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for filtered event")
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	bus := NewMemoryBus()
	ch := bus.Subscribe()
	bus.Unsubscribe(ch)

	if _, open := <-ch; open {
		t.Error("expected closed channel after Unsubscribe")
	}
}

func TestPublishTimestamps(t *testing.T) {
	bus := NewMemoryBus()
	ch := bus.Subscribe()

	bus.Publish(Event{Type: EventSuiteStart})

	got := <-ch
	if got.Timestamp.IsZero() {
		t.Error("expected Publish to stamp the event")
	}
}
