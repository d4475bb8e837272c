package dom

import "sync/atomic"

// Event types dispatched by the component and its hosts.
const (
	EventClick = "click"
	EventInput = "input"
	EventBlur  = "blur"
)

// Event is delivered to listeners. Target is the element the event was
// dispatched on; CurrentTarget is the element whose listener is running.
type Event struct {
	Type          string
	Target        *Element
	CurrentTarget *Element

	stopped bool
}

// StopPropagation prevents the event from bubbling to ancestors.
func (ev *Event) StopPropagation() {
	ev.stopped = true
}

// Listener handles a dispatched event.
type Listener func(ev *Event)

// ListenerID identifies a registered listener for removal.
type ListenerID uint64

type listener struct {
	id ListenerID
	fn Listener
}

var listenerSeq atomic.Uint64

// AddEventListener registers fn for the event type and returns a handle for
// RemoveEventListener.
func (e *Element) AddEventListener(eventType string, fn Listener) ListenerID {
	if e == nil || fn == nil {
		return 0
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]listener)
	}
	id := ListenerID(listenerSeq.Add(1))
	e.listeners[eventType] = append(e.listeners[eventType], listener{id: id, fn: fn})
	return id
}

// RemoveEventListener unregisters a listener previously added for eventType.
func (e *Element) RemoveEventListener(eventType string, id ListenerID) {
	if e == nil || id == 0 {
		return
	}
	entries := e.listeners[eventType]
	for i, entry := range entries {
		if entry.id == id {
			e.listeners[eventType] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// Dispatch delivers an event of the given type to e and then to each
// ancestor until a listener stops propagation.
func (e *Element) Dispatch(eventType string) {
	if e == nil {
		return
	}
	ev := &Event{Type: eventType, Target: e}
	for n := e; n != nil && !ev.stopped; n = n.parent {
		entries := append([]listener(nil), n.listeners[eventType]...)
		for _, entry := range entries {
			ev.CurrentTarget = n
			entry.fn(ev)
		}
	}
}

// Click dispatches a click event on e.
func (e *Element) Click() {
	e.Dispatch(EventClick)
}
