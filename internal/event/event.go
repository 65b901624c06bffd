// internal/event/event.go
package event

// EventType - the kind of notification being dispatched.
type EventType string

// Event - a notification with an optional payload.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener is implemented by anything that subscribes to notifications.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher delivers events synchronously to subscribers in subscription order.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers listener for eventType.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll registers listener for each of eventTypes in order.
func (d *Dispatcher) SubscribeAll(listener Listener, eventTypes ...EventType) {
	for _, t := range eventTypes {
		d.Subscribe(t, listener)
	}
}

// Unsubscribe removes the first registration of listener for eventType
// and reports whether one was found. Listeners are matched by identity,
// so subscribe pointers.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) bool {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
			return true
		}
	}
	return false
}

// Dispatch sends event to every subscriber of its type. Listeners added
// or removed while it runs take effect from the next Dispatch.
func (d *Dispatcher) Dispatch(event Event) {
	listeners := d.listeners[event.Type]
	if len(listeners) == 0 {
		return
	}
	for _, listener := range append([]Listener(nil), listeners...) {
		listener.OnEvent(event)
	}
}
