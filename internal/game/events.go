package game

import "procsnake/internal/geom"

type EventType int

const (
	EventPaused EventType = iota
	EventResumed
	EventHeadParked  // head came within one step of the target
	EventHeadChasing // target left the hysteresis band, head moves again
)

func (t EventType) String() string {
	switch t {
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventHeadParked:
		return "head parked"
	case EventHeadChasing:
		return "head chasing"
	}
	return "unknown"
}

type Event struct {
	Type EventType
	Pos  geom.Point // where it happened
	Tick uint64
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for t := EventPaused; t <= EventHeadChasing; t++ {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
