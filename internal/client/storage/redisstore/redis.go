// Package redisstore keeps session-scoped values in Redis so that several
// client processes started for the same session id share one login. Keys
// expire after the session TTL, which is what ends the session.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key schema:
//
//	olilab:session:{sessionID}:{key}   string, TTL = session max age
const keyPrefix = "olilab:session:"

type Store struct {
	rdb       *redis.Client
	sessionID string
	ttl       time.Duration
}

// NewClient creates a go-redis client from a URL (e.g. "redis://localhost:6379/0").
func NewClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	return redis.NewClient(opts), nil
}

// New returns a Store scoped to sessionID. A zero ttl stores keys without expiry.
func New(rdb *redis.Client, sessionID string, ttl time.Duration) *Store {
	return &Store{rdb: rdb, sessionID: sessionID, ttl: ttl}
}

func (s *Store) key(k string) string {
	return keyPrefix + s.sessionID + ":" + k
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.rdb.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	if v == nil {
		v = []byte{}
	}
	return v, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.rdb.Set(ctx, s.key(key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete session[%s]: %w", key, err)
	}
	return nil
}

// Clear removes every key of this session.
func (s *Store) Clear(ctx context.Context) error {
	iter := s.rdb.Scan(ctx, 0, s.key("*"), 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan session keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Ping verifies the Redis connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}
