// Package provider builds the session and settings managers for one client
// scope and hands them out through a Handle. Using a Handle that was never
// built, or one that was closed, is a programming error and panics.
package provider

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/olilab/internal/client/inventory"
	"github.com/dmitrijs2005/olilab/internal/client/session"
	"github.com/dmitrijs2005/olilab/internal/client/settings"
	"github.com/dmitrijs2005/olilab/internal/client/storage"
	"github.com/dmitrijs2005/olilab/internal/logging"
	"github.com/google/uuid"
)

// ErrOutsideScope is the panic value of accessors used without a live scope.
var ErrOutsideScope = errors.New("provider: accessed outside of a provider scope")

// Deps are the collaborators of a scope. Inventory is optional; without it the
// caller feeds collections to Session().OnUsersRefreshed itself, including the
// first one that ends the booting phase.
type Deps struct {
	SessionStore storage.Store
	DurableStore storage.Store
	Auth         session.Authenticator
	Inventory    *inventory.Source
	Logger       logging.Logger
}

type Handle struct {
	id       string
	session  *session.Manager
	settings *settings.Manager
	log      logging.Logger

	mu     sync.Mutex
	closed bool
	stop   []func()
}

// New builds both managers and subscribes the session to inventory changes.
func New(ctx context.Context, d Deps) (*Handle, error) {
	if d.SessionStore == nil {
		return nil, errors.New("provider: session store is required")
	}
	if d.DurableStore == nil {
		return nil, errors.New("provider: durable store is required")
	}
	if d.Auth == nil {
		return nil, errors.New("provider: authenticator is required")
	}
	log := d.Logger
	if log == nil {
		log = logging.Nop()
	}

	id := uuid.NewString()
	log = log.With("scope_id", id)

	h := &Handle{
		id:       id,
		session:  session.New(d.Auth, d.SessionStore, log),
		settings: settings.New(ctx, d.DurableStore, log),
		log:      log,
	}

	if d.Inventory != nil {
		h.stop = append(h.stop, d.Inventory.OnChange(h.session.OnUsersRefreshed))
		// Settle the booting phase with whatever is loaded now, typically
		// nothing; the pointer is reconciled on the first non-empty list.
		h.session.OnUsersRefreshed(ctx, d.Inventory.Users())
	}

	log.Debug(ctx, "provider scope opened")
	return h, nil
}

// ID identifies the scope in logs.
func (h *Handle) ID() string {
	h.mustBeOpen()
	return h.id
}

func (h *Handle) Session() *session.Manager {
	h.mustBeOpen()
	return h.session
}

func (h *Handle) Settings() *settings.Manager {
	h.mustBeOpen()
	return h.settings
}

// Close ends the scope. Subsequent accessor calls panic. Close is idempotent.
func (h *Handle) Close() {
	if h == nil {
		return
	}
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	stop := h.stop
	h.stop = nil
	h.mu.Unlock()

	for _, fn := range stop {
		fn()
	}
	h.log.Debug(context.Background(), "provider scope closed")
}

func (h *Handle) mustBeOpen() {
	if h == nil {
		panic(ErrOutsideScope)
	}
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()
	if closed {
		panic(ErrOutsideScope)
	}
}
