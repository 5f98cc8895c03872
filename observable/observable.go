// SPDX-License-Identifier: MIT

// Package observable provides Value, a mutable cell that notifies its
// subscribers on every write.
//
// It is the binding between slider-like inputs and a redraw callback: the
// numeric core never sees a Value, only the plain parameters read from it.
//
// Notification contract:
//   - Every Set notifies, even when the new value equals the old one.
//   - Callbacks run synchronously on the writer's goroutine, in subscription
//     order, after the value has been stored.
//   - Callbacks run outside the internal lock, so a callback may Get or Set
//     any Value, including the one that notified it.
package observable

import (
	"sync"

	"github.com/google/uuid"
)

// Func is a subscriber callback receiving the previous and the next value.
type Func[T any] func(prev, next T)

// Subscription identifies one registered callback.
type Subscription struct {
	ID uuid.UUID
}

type subscriber[T any] struct {
	id uuid.UUID
	fn Func[T]
}

// Value is a concurrency-safe observable cell. The zero Value holds the zero
// T and has no subscribers.
type Value[T any] struct {
	mu   sync.RWMutex
	v    T
	subs []subscriber[T]
}

// New returns a Value holding initial.
func New[T any](initial T) *Value[T] {
	return &Value[T]{v: initial}
}

// Get returns the current value.
func (o *Value[T]) Get() T {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.v
}

// Set stores v and notifies every subscriber with (prev, v).
func (o *Value[T]) Set(v T) {
	o.mu.Lock()
	old := o.v
	o.v = v
	subs := append([]subscriber[T](nil), o.subs...)
	o.mu.Unlock()

	for _, s := range subs {
		s.fn(old, v)
	}
}

// Update applies fn to the current value and stores the result under the
// lock, then notifies like Set. It returns the stored value.
func (o *Value[T]) Update(fn func(T) T) T {
	o.mu.Lock()
	old := o.v
	o.v = fn(old)
	v := o.v
	subs := append([]subscriber[T](nil), o.subs...)
	o.mu.Unlock()

	for _, s := range subs {
		s.fn(old, v)
	}

	return v
}

// Subscribe registers fn and returns its handle. A nil fn is ignored and
// yields the zero Subscription.
func (o *Value[T]) Subscribe(fn Func[T]) Subscription {
	if fn == nil {
		return Subscription{}
	}
	id := uuid.New()

	o.mu.Lock()
	o.subs = append(o.subs, subscriber[T]{id: id, fn: fn})
	o.mu.Unlock()

	return Subscription{ID: id}
}

// Unsubscribe removes the callback registered under s.
// It reports whether a callback was removed.
func (o *Value[T]) Unsubscribe(s Subscription) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i, sub := range o.subs {
		if sub.id == s.ID {
			o.subs = append(o.subs[:i:i], o.subs[i+1:]...)

			return true
		}
	}

	return false
}

// Len returns the number of subscribers.
func (o *Value[T]) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return len(o.subs)
}
