// Package inventory owns the client's copy of the user collection. It is
// refreshed from the API independently of the session layer and pushes every
// new collection to its listeners.
package inventory

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/olilab/internal/client/metrics"
	"github.com/dmitrijs2005/olilab/internal/client/models"
	"github.com/dmitrijs2005/olilab/internal/logging"
	"github.com/jonboulle/clockwork"
)

// Fetcher loads the authoritative user collection.
type Fetcher interface {
	FetchUsers(ctx context.Context) ([]models.User, error)
}

// Listener receives every new collection. It must not retain the slice.
type Listener func(ctx context.Context, users []models.User)

type listener struct {
	id int
	fn Listener
}

type Source struct {
	fetcher Fetcher
	clock   clockwork.Clock
	log     logging.Logger

	mu        sync.RWMutex
	users     []models.User
	listeners []listener
	nextID    int
}

func New(fetcher Fetcher, clock clockwork.Clock, log logging.Logger) *Source {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Source{fetcher: fetcher, clock: clock, log: log.With("component", "inventory")}
}

// Users returns a copy of the current collection.
func (s *Source) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.users...)
}

// OnChange registers fn; listeners run in registration order. The returned
// func unregisters it.
func (s *Source) OnChange(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Refresh fetches the collection, replaces the current one and notifies
// listeners synchronously. On error the previous collection is kept.
func (s *Source) Refresh(ctx context.Context) error {
	users, err := s.fetcher.FetchUsers(ctx)
	metrics.InventoryRefreshTotal.WithLabelValues(metrics.StatusLabel(err)).Inc()
	if err != nil {
		s.log.Warn(ctx, "failed to refresh users", "error", err)
		return err
	}
	s.Publish(ctx, users)
	s.log.Debug(ctx, "users refreshed", "count", len(users))
	return nil
}

// Publish replaces the collection with users and notifies listeners.
func (s *Source) Publish(ctx context.Context, users []models.User) {
	s.mu.Lock()
	s.users = append([]models.User(nil), users...)
	ls := append([]listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, l := range ls {
		l.fn(ctx, s.Users())
	}
}

// Run refreshes every interval until ctx is done.
func (s *Source) Run(ctx context.Context, interval time.Duration) {
	ticker := s.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.Chan():
			_ = s.Refresh(ctx)
		case <-ctx.Done():
			return
		}
	}
}
