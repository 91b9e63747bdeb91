package events

import (
	"sync"

	"github.com/google/uuid"
)

// Broker delivers snapshots synchronously to listeners in registration
// order. Publish returns only after every listener has run; no ordering
// guarantee is made across different brokers.
type Broker[T any] struct {
	mu        sync.RWMutex
	order     []string
	listeners map[string]func(T)
}

// Subscription identifies one registered listener.
type Subscription struct {
	token  string
	cancel func(token string)
}

// Unsubscribe removes the listener. Safe to call more than once.
func (s Subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel(s.token)
	}
}

// NewBroker builds an empty broker.
func NewBroker[T any]() *Broker[T] {
	return &Broker[T]{listeners: map[string]func(T){}}
}

// Subscribe registers a listener and returns its subscription handle.
func (b *Broker[T]) Subscribe(fn func(T)) Subscription {
	if fn == nil {
		return Subscription{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	token := uuid.NewString()
	b.order = append(b.order, token)
	b.listeners[token] = fn
	return Subscription{token: token, cancel: b.remove}
}

// Publish invokes every listener with the snapshot, in registration order.
func (b *Broker[T]) Publish(snapshot T) {
	b.mu.RLock()
	fns := make([]func(T), 0, len(b.order))
	for _, token := range b.order {
		if fn, ok := b.listeners[token]; ok {
			fns = append(fns, fn)
		}
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}

// Len returns the number of registered listeners.
func (b *Broker[T]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners)
}

func (b *Broker[T]) remove(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.listeners[token]; !ok {
		return
	}
	delete(b.listeners, token)
	for i, candidate := range b.order {
		if candidate == token {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}
