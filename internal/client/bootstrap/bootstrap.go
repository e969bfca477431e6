// Package bootstrap assembles the client from its configuration: the API
// client, the session-scoped and durable stores, the inventory source and
// the provider scope that owns the session and settings managers.
package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/olilab/internal/client/client"
	"github.com/dmitrijs2005/olilab/internal/client/config"
	"github.com/dmitrijs2005/olilab/internal/client/database"
	"github.com/dmitrijs2005/olilab/internal/client/inventory"
	"github.com/dmitrijs2005/olilab/internal/client/provider"
	"github.com/dmitrijs2005/olilab/internal/client/storage"
	"github.com/dmitrijs2005/olilab/internal/client/storage/instrumented"
	"github.com/dmitrijs2005/olilab/internal/client/storage/metadata"
	"github.com/dmitrijs2005/olilab/internal/client/storage/redisstore"
	"github.com/dmitrijs2005/olilab/internal/client/storage/s3store"
	"github.com/dmitrijs2005/olilab/internal/client/storage/sessionstore"
	"github.com/dmitrijs2005/olilab/internal/filex"
	"github.com/dmitrijs2005/olilab/internal/logging"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

const clearTimeout = 5 * time.Second

// newS3API is swapped in tests.
var newS3API = func(ctx context.Context, o s3store.Options) (s3store.API, error) {
	return s3store.NewClient(ctx, o)
}

// Runtime is a fully wired client.
type Runtime struct {
	Scope     *provider.Handle
	Inventory *inventory.Source
	API       client.Client

	closers []func() error
}

// Build wires the client. On error everything opened so far is closed.
func Build(ctx context.Context, cfg *config.Config, log logging.Logger) (_ *Runtime, err error) {
	if log == nil {
		log = logging.Nop()
	}
	rt := &Runtime{}
	defer func() {
		if err != nil {
			_ = rt.Close()
		}
	}()

	api := client.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout)
	rt.API = api

	if err := filex.EnsureParentDir(cfg.DatabaseDSN); err != nil {
		return nil, err
	}
	db, err := database.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	rt.closers = append(rt.closers, db.Close)

	sessionStore, err := rt.newSessionStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	durableStore, err := newDurableStore(ctx, cfg, db, log)
	if err != nil {
		return nil, err
	}

	rt.Inventory = inventory.New(api, clockwork.NewRealClock(), log)

	rt.Scope, err = provider.New(ctx, provider.Deps{
		SessionStore: sessionStore,
		DurableStore: durableStore,
		Auth:         api,
		Inventory:    rt.Inventory,
		Logger:       log,
	})
	if err != nil {
		return nil, err
	}
	rt.closers = append(rt.closers, func() error {
		rt.Scope.Close()
		return nil
	})

	return rt, nil
}

func (rt *Runtime) newSessionStore(ctx context.Context, cfg *config.Config, log logging.Logger) (storage.Store, error) {
	if cfg.RedisURL == "" {
		log.Debug(ctx, "using in-memory session store")
		return instrumented.Wrap("session_memory", sessionstore.NewMemoryStore(clockwork.NewRealClock(), cfg.SessionMaxAge)), nil
	}

	rdb, err := redisstore.NewClient(cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	rt.closers = append(rt.closers, rdb.Close)

	sessionID := cfg.SessionID
	generated := sessionID == ""
	if generated {
		sessionID = uuid.NewString()
	}

	store := redisstore.New(rdb, sessionID, cfg.SessionMaxAge)
	if err := store.Ping(ctx); err != nil {
		return nil, err
	}
	if generated {
		// nobody can rejoin a generated session, so it ends with the process
		rt.clearOnClose(store)
	}
	log.Info(ctx, "using redis session store", "session_id", sessionID, "shared", !generated)
	return instrumented.Wrap("session_redis", store), nil
}

type sessionClearer interface {
	Clear(ctx context.Context) error
}

// clearOnClose drops every key of the session when the runtime closes. It
// runs before the closers registered earlier, i.e. while the client is open.
func (rt *Runtime) clearOnClose(c sessionClearer) {
	rt.closers = append(rt.closers, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), clearTimeout)
		defer cancel()
		return c.Clear(ctx)
	})
}

func newDurableStore(ctx context.Context, cfg *config.Config, db *sql.DB, log logging.Logger) (storage.Store, error) {
	if cfg.S3Bucket == "" {
		return instrumented.Wrap("durable_sqlite", metadata.NewSQLiteRepository(db)), nil
	}

	api, err := newS3API(ctx, s3store.Options{
		Region:    cfg.S3Region,
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
	})
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "using s3 durable store", "bucket", cfg.S3Bucket, "prefix", cfg.S3Prefix)
	return instrumented.Wrap("durable_s3", s3store.New(api, cfg.S3Bucket, cfg.S3Prefix)), nil
}

// Close releases everything Build opened, in reverse order.
func (rt *Runtime) Close() error {
	if rt == nil {
		return nil
	}
	var errs []error
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	rt.closers = nil
	return errors.Join(errs...)
}
