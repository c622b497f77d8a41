// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — событие с необязательной полезной нагрузкой (см. types.go).
type Event struct {
	Type EventType
	Data interface{}
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher delivers events synchronously, in subscription order, on the
// caller's goroutine.
type Dispatcher struct {
	listeners map[EventType][]Listener
	queued    []Event
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeFunc is Subscribe for a function listener.
func (d *Dispatcher) SubscribeFunc(eventType EventType, fn func(Event)) {
	d.Subscribe(eventType, ListenerFunc(fn))
}

// Unsubscribe — отписка от события. Функции-слушатели сравнить нельзя,
// их снимает только Reset.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if _, isFunc := listener.(ListenerFunc); isFunc {
		return
	}
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if _, isFunc := l.(ListenerFunc); isFunc {
			continue
		}
		if l == listener {
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	// snapshot: listeners subscribed during delivery start with the next event
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// Post queues an event until Flush. Used for events raised mid-tick that
// presentation should only see once the tick is complete.
func (d *Dispatcher) Post(event Event) {
	d.queued = append(d.queued, event)
}

// Flush dispatches queued events in order. Events posted while flushing are
// delivered in the same call.
func (d *Dispatcher) Flush() {
	for i := 0; i < len(d.queued); i++ {
		d.Dispatch(d.queued[i])
	}
	d.queued = d.queued[:0]
}

// Drop discards queued events without delivering them.
func (d *Dispatcher) Drop() {
	d.queued = d.queued[:0]
}

// Reset drops every subscription and queued event.
func (d *Dispatcher) Reset() {
	d.listeners = make(map[EventType][]Listener)
	d.queued = d.queued[:0]
}
