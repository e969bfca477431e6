// Package session keeps the identity of the signed-in user.
//
// The identity survives a reload through a pointer (the user id) in the
// session-scoped store. On boot the pointer is reconciled once against the
// authoritative user collection: a user that no longer exists or is no longer
// approved is dropped together with the pointer.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/olilab/internal/client/metrics"
	"github.com/dmitrijs2005/olilab/internal/client/models"
	"github.com/dmitrijs2005/olilab/internal/client/observe"
	"github.com/dmitrijs2005/olilab/internal/client/storage"
	"github.com/dmitrijs2005/olilab/internal/common"
	"github.com/dmitrijs2005/olilab/internal/logging"
)

// ErrNoUser is returned by Login when the API reports success without a user.
var ErrNoUser = errors.New("login succeeded without a user")

// Authenticator verifies credentials remotely. Errors carry a display-ready
// message and are passed to the caller unchanged.
type Authenticator interface {
	Login(ctx context.Context, identifier string, password []byte) (*models.SecureUser, error)
}

type Manager struct {
	auth  Authenticator
	store storage.Store
	log   logging.Logger

	// persistMu orders pointer writes; each write reflects the latest
	// committed identity. It is never taken while holding mu.
	persistMu sync.Mutex

	mu         sync.Mutex
	current    *models.SecureUser
	loading    bool
	reconciled bool

	observers observe.Subject[Snapshot]
}

// New returns a Manager in the booting phase. store is the session-scoped
// store holding the user id pointer.
func New(auth Authenticator, store storage.Store, log logging.Logger) *Manager {
	if log == nil {
		log = logging.Nop()
	}
	return &Manager{
		auth:    auth,
		store:   store,
		log:     log.With("component", "session"),
		loading: true,
	}
}

// Snapshot returns the current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Subscribe registers fn for every committed state change.
func (m *Manager) Subscribe(fn func(Snapshot)) func() {
	return m.observers.Subscribe(fn)
}

// OnUsersRefreshed reconciles the persisted pointer with users. It is meant
// to be called by the inventory owner on every collection change; only the
// first non-empty collection is reconciled, and only if nobody is signed in.
// The first call always ends the booting phase.
func (m *Manager) OnUsersRefreshed(ctx context.Context, users []models.User) {
	m.mu.Lock()

	wasLoading := m.loading
	m.loading = false

	if m.current != nil || m.reconciled || len(users) == 0 {
		snap := m.snapshotLocked()
		m.mu.Unlock()
		if wasLoading {
			m.observers.Notify(snap)
		}
		return
	}

	m.reconciled = true
	outcome := m.reconcileLocked(ctx, users)
	snap := m.snapshotLocked()
	m.mu.Unlock()

	metrics.SessionRestoreTotal.WithLabelValues(outcome).Inc()
	if wasLoading || outcome == metrics.RestoreRestored {
		m.observers.Notify(snap)
	}
}

func (m *Manager) reconcileLocked(ctx context.Context, users []models.User) string {
	raw, err := m.store.Get(ctx, common.SessionUserIDKey)
	if err != nil {
		m.log.Error(ctx, "failed to read session pointer", "error", err)
		return metrics.RestoreStorageError
	}
	id := string(raw)
	if id == "" {
		return metrics.RestoreNoPointer
	}

	user, ok := models.FindUser(users, id)
	if !ok || !user.IsApproved() {
		outcome := metrics.RestoreStale
		if ok {
			outcome = metrics.RestoreNotApproved
		}
		m.log.Info(ctx, "dropping persisted session", "user_id", id, "reason", outcome)
		if err := m.store.Delete(ctx, common.SessionUserIDKey); err != nil {
			m.log.Error(ctx, "failed to delete session pointer", "error", err)
		}
		return outcome
	}

	su := user.Secure()
	m.current = &su
	m.log.Info(ctx, "session restored", "user_id", id)
	return metrics.RestoreRestored
}

// Login authenticates through the API and, on success, signs the user in and
// persists the pointer. A failing login leaves state and storage untouched
// and returns the API error as is.
func (m *Manager) Login(ctx context.Context, identifier string, password []byte) error {
	user, err := m.auth.Login(ctx, identifier, password)
	if err == nil && user == nil {
		err = ErrNoUser
	}
	if err != nil {
		metrics.LoginTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginTotal.WithLabelValues("success").Inc()

	su := *user
	m.mu.Lock()
	m.current = &su
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.persistPointer(ctx)

	m.log.Info(ctx, "user logged in", "user_id", su.ID)
	m.observers.Notify(snap)
	return nil
}

// Logout signs the user out locally. The server is not contacted.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	prev := m.current
	m.current = nil
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.persistPointer(ctx)

	if prev != nil {
		m.log.Info(ctx, "user logged out", "user_id", prev.ID)
	}
	m.observers.Notify(snap)
}

// persistPointer writes the current identity to the session store, or
// removes the pointer when nobody is signed in. Failures are logged.
func (m *Manager) persistPointer(ctx context.Context) {
	m.persistMu.Lock()
	defer m.persistMu.Unlock()

	m.mu.Lock()
	cur := m.current
	m.mu.Unlock()

	if cur == nil {
		if err := m.store.Delete(ctx, common.SessionUserIDKey); err != nil {
			m.log.Error(ctx, "failed to delete session pointer", "error", err)
		}
		return
	}
	if err := m.store.Set(ctx, common.SessionUserIDKey, []byte(cur.ID)); err != nil {
		m.log.Error(ctx, "failed to persist session pointer", "user_id", cur.ID, "error", err)
	}
}

func (m *Manager) snapshotLocked() Snapshot {
	var cur *models.SecureUser
	if m.current != nil {
		cp := *m.current
		cur = &cp
	}
	return Snapshot{
		CurrentUser:     cur,
		IsAuthenticated: cur != nil,
		IsLoading:       m.loading,
	}
}
