// Package settings holds the branding settings (title and logo) and keeps
// them in sync with durable storage. Reads never fail: anything missing or
// unreadable falls back to the defaults.
package settings

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/dmitrijs2005/olilab/internal/client/metrics"
	"github.com/dmitrijs2005/olilab/internal/client/models"
	"github.com/dmitrijs2005/olilab/internal/client/observe"
	"github.com/dmitrijs2005/olilab/internal/client/storage"
	"github.com/dmitrijs2005/olilab/internal/common"
	"github.com/dmitrijs2005/olilab/internal/logging"
)

type Manager struct {
	store storage.Store
	log   logging.Logger

	// persistMu serializes writes; each write stores the latest committed
	// value, so storage never ends up behind memory.
	persistMu sync.Mutex
	mu        sync.Mutex
	current   models.Settings

	observers observe.Subject[models.Settings]
}

// New loads the persisted settings once.
func New(ctx context.Context, store storage.Store, log logging.Logger) *Manager {
	if log == nil {
		log = logging.Nop()
	}
	m := &Manager{store: store, log: log.With("component", "settings")}
	m.current = m.load(ctx)
	return m
}

func (m *Manager) load(ctx context.Context) models.Settings {
	raw, err := m.store.Get(ctx, common.SettingsKey)
	if err != nil {
		m.log.Warn(ctx, "failed to read settings, using defaults", "error", err)
		return models.DefaultSettings()
	}
	if raw == nil {
		return models.DefaultSettings()
	}

	var patch models.SettingsPatch
	if err := json.Unmarshal(raw, &patch); err != nil {
		m.log.Warn(ctx, "malformed settings record, using defaults", "error", err)
		return models.DefaultSettings()
	}
	return models.DefaultSettings().Merge(patch)
}

// Settings returns the current value.
func (m *Manager) Settings() models.Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Subscribe registers fn for every settings change.
func (m *Manager) Subscribe(fn func(models.Settings)) func() {
	return m.observers.Subscribe(fn)
}

// Update merges patch onto the current settings, notifies subscribers and
// writes the settings through to durable storage. A failed write is logged;
// the in-memory value stays updated. Subscribers may call Update.
func (m *Manager) Update(ctx context.Context, patch models.SettingsPatch) models.Settings {
	m.mu.Lock()
	next := m.current.Merge(patch)
	m.current = next
	m.mu.Unlock()

	metrics.SettingsUpdatesTotal.Inc()
	m.observers.Notify(next)

	m.persist(ctx)
	return next
}

func (m *Manager) persist(ctx context.Context) {
	m.persistMu.Lock()
	defer m.persistMu.Unlock()

	raw, err := json.Marshal(m.Settings())
	if err == nil {
		err = m.store.Set(ctx, common.SettingsKey, raw)
	}
	if err != nil {
		m.log.Error(ctx, "failed to persist settings", "error", err)
	}
}
