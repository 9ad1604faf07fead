package invoicekit

import (
	"sync"
	"sync/atomic"
)

// listenerID uniquely identifies a subscription across all event buses.
var listenerID atomic.Uint64

// Events is a simple event bus for editor notifications.
// It is generic over the event type T.
type Events[T any] struct {
	mu        sync.RWMutex
	listeners []listener[T]
}

// listener pairs a callback with its subscription id so Unsubscribe can
// remove it regardless of what else was added or removed in between.
type listener[T any] struct {
	id uint64
	fn func(T)
}

// Unsubscribe removes a listener. Calling it more than once is harmless.
type Unsubscribe func()

// NewEvents creates a new event bus.
func NewEvents[T any]() *Events[T] {
	return &Events[T]{}
}

// Emit sends an event to all listeners in subscription order.
func (e *Events[T]) Emit(event T) {
	e.mu.RLock()
	listeners := e.listeners
	e.mu.RUnlock()

	for _, l := range listeners {
		l.fn(event)
	}
}

// Subscribe adds a listener and returns its Unsubscribe handle.
func (e *Events[T]) Subscribe(fn func(T)) Unsubscribe {
	id := listenerID.Add(1)

	e.mu.Lock()
	e.listeners = append(e.listeners, listener[T]{id: id, fn: fn})
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		for i, l := range e.listeners {
			if l.id == id {
				e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
				return
			}
		}
	}
}
