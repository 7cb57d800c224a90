package anim

// EventType identifies a type of frame event.
type EventType string

// EventEmit is a generic application event carrying a payload string.
const EventEmit EventType = "emit"

// Event is attached to a sequence index and emitted when playback lands
// on that index.
type Event struct {
	Type    EventType
	Payload string
}

// EventHandler handles frame events.
type EventHandler func(index int, coord Frame, evt Event)

// Emitter dispatches frame events to handlers.
type Emitter struct {
	Handlers []EventHandler
}

// Emit sends a frame event to all handlers.
func (e *Emitter) Emit(index int, coord Frame, evt Event) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(index, coord, evt)
		}
	}
}

// EventMap stores events per sequence index.
type EventMap struct {
	Frames map[int][]Event
}

// NewEventMap creates an empty event map.
func NewEventMap() *EventMap {
	return &EventMap{Frames: make(map[int][]Event)}
}

// Add attaches an event to a sequence index.
func (m *EventMap) Add(index int, evt Event) {
	if m == nil || index < 0 {
		return
	}
	if m.Frames == nil {
		m.Frames = make(map[int][]Event)
	}
	m.Frames[index] = append(m.Frames[index], evt)
}

// At returns the events attached to index.
func (m *EventMap) At(index int) []Event {
	if m == nil {
		return nil
	}
	return m.Frames[index]
}
