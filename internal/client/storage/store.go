// Package storage defines the key/value port used by the session and settings
// managers. Durable and session-scoped stores share this shape; what differs
// is the lifetime of what they hold.
package storage

import "context"

// Store is a string-keyed byte store.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent.
//   - Set overwrites any existing value.
//   - Delete of an absent key is not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
