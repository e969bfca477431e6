// Package observe is the change-notification primitive behind the session
// and settings managers: one owner publishes values, consumers subscribe
// callbacks.
package observe

import "sync"

type subscriber[T any] struct {
	id int
	fn func(T)
}

// Subject fans a value out to its subscribers in subscription order.
// The zero value is ready to use.
type Subject[T any] struct {
	mu     sync.Mutex
	subs   []subscriber[T]
	nextID int
}

// Subscribe registers fn and returns a func that unregisters it. Calling the
// returned func more than once is harmless.
func (s *Subject[T]) Subscribe(fn func(T)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber[T]{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Notify calls every subscriber with v. Subscribers are invoked without the
// lock held, so they may subscribe or unsubscribe from inside the callback.
func (s *Subject[T]) Notify(v T) {
	s.mu.Lock()
	subs := append([]subscriber[T](nil), s.subs...)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(v)
	}
}
