// Package eventbus provides a minimal in-process pub/sub used for the
// CurrencyChanged / LanguageChanged notifications.
package eventbus

import "sync"

// Bus fans out events of type T to all subscribers. Delivery via Publish is
// fire-and-forget: one goroutine per handler, no ordering guarantee across
// subscribers and no blocking on handler completion.
type Bus[T any] struct {
	mu       sync.RWMutex
	handlers []func(T)
}

// New creates an empty Bus.
func New[T any]() *Bus[T] {
	return &Bus[T]{}
}

// Subscribe registers a handler. Handlers cannot be removed; buses live as
// long as the service that owns them.
func (b *Bus[T]) Subscribe(handler func(T)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, handler)
}

// Publish delivers event to every subscriber asynchronously.
func (b *Bus[T]) Publish(event T) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, handler := range b.handlers {
		go handler(event)
	}
}

// PublishSync delivers event to every subscriber on the calling goroutine,
// in subscription order. Used by tests that need deterministic delivery.
func (b *Bus[T]) PublishSync(event T) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, handler := range b.handlers {
		handler(event)
	}
}

// SubscriberCount returns the number of registered handlers.
func (b *Bus[T]) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers)
}
