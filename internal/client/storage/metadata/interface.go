package metadata

import (
	"context"

	"github.com/dmitrijs2005/olilab/internal/client/storage"
)

// Repository is the durable key/value store. On top of the storage.Store
// port it can enumerate and wipe its contents.
type Repository interface {
	storage.Store
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
