package events

import "time"

// EventType identifies the kind of event emitted during suite execution.
type EventType string

const (
	EventSuiteStart      EventType = "suite.start"
	EventSuiteEnd        EventType = "suite.end"
	EventResourceStart   EventType = "resource.start"
	EventResourceEnd     EventType = "resource.end"
	EventResourceError   EventType = "resource.error"
	EventAssertionResult EventType = "assertion.result"
)

// Event is a single verification progress event.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Suite     string    `json:"suite,omitempty"`
	Resource  string    `json:"resource,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Passed    bool      `json:"passed,omitempty"`
	Message   string    `json:"message,omitempty"`
}

// NewEvent creates an event with the current timestamp.
func NewEvent(typ EventType) Event {
	return Event{Type: typ, Timestamp: time.Now()}
}
