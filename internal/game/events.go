package game

type EventType int

const (
	EventBulletFired EventType = iota
	EventBulletExpired
	EventAlienKilled
	EventAlienRemoved
	EventAliensDropped
)

func (t EventType) String() string {
	switch t {
	case EventBulletFired:
		return "bullet_fired"
	case EventBulletExpired:
		return "bullet_expired"
	case EventAlienKilled:
		return "alien_killed"
	case EventAlienRemoved:
		return "alien_removed"
	case EventAliensDropped:
		return "aliens_dropped"
	}
	return "unknown"
}

type Event struct {
	Type EventType
	Tick uint64
	X, Y int
	Data int // Alien index for alien events, live bullet count for bullet events.
}

type EventHandler func(Event)

// EventBus dispatches synchronously on the goroutine that emits.
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
	for t := EventBulletFired; t <= EventAliensDropped; t++ {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
