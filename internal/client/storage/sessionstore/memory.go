// Package sessionstore provides the in-process session-scoped store: values
// live as long as the client process (the session) and, optionally, no longer
// than a maximum age.
package sessionstore

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore is a session-scoped storage.Store. The zero maxAge disables
// expiry.
type MemoryStore struct {
	mu      sync.Mutex
	clock   clockwork.Clock
	maxAge  time.Duration
	entries map[string]entry
}

func NewMemoryStore(clock clockwork.Clock, maxAge time.Duration) *MemoryStore {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &MemoryStore{clock: clock, maxAge: maxAge, entries: make(map[string]entry)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, nil
	}
	if s.expired(e) {
		delete(s.entries, key)
		return nil, nil
	}
	return append([]byte{}, e.value...), nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := entry{value: append([]byte{}, value...)}
	if s.maxAge > 0 {
		e.expiresAt = s.clock.Now().Add(s.maxAge)
	}
	s.entries[key] = e
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

func (s *MemoryStore) expired(e entry) bool {
	return !e.expiresAt.IsZero() && !s.clock.Now().Before(e.expiresAt)
}
