// Package instrumented wraps a storage.Store and records every operation in
// the olilab_storage_operations_total counter.
package instrumented

import (
	"context"

	"github.com/dmitrijs2005/olilab/internal/client/metrics"
	"github.com/dmitrijs2005/olilab/internal/client/storage"
)

type Store struct {
	name  string
	inner storage.Store
}

// Wrap labels inner's operations with the given store name
// (e.g. "durable", "session").
func Wrap(name string, inner storage.Store) *Store {
	return &Store{name: name, inner: inner}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.inner.Get(ctx, key)
	s.observe("get", err)
	return v, err
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	err := s.inner.Set(ctx, key, value)
	s.observe("set", err)
	return err
}

func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.inner.Delete(ctx, key)
	s.observe("delete", err)
	return err
}

func (s *Store) observe(op string, err error) {
	metrics.StorageOperationsTotal.WithLabelValues(s.name, op, metrics.StatusLabel(err)).Inc()
}
