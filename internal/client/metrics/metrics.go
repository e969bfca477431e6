// Package metrics holds the Prometheus collectors of the OliLab client.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Restore outcomes of the boot reconciliation.
const (
	RestoreRestored     = "restored"
	RestoreNoPointer    = "no_pointer"
	RestoreStale        = "stale"
	RestoreNotApproved  = "not_approved"
	RestoreStorageError = "storage_error"
)

var (
	// LoginTotal counts login attempts by result (success/failure).
	LoginTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "olilab_login_total",
			Help: "Login attempts by result",
		},
		[]string{"result"},
	)

	// SessionRestoreTotal counts boot reconciliations by outcome.
	SessionRestoreTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "olilab_session_restore_total",
			Help: "Session restorations by outcome",
		},
		[]string{"outcome"},
	)

	// StorageOperationsTotal counts key/value operations per store.
	StorageOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "olilab_storage_operations_total",
			Help: "Key/value storage operations by store, operation and status",
		},
		[]string{"store", "op", "status"},
	)

	SettingsUpdatesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "olilab_settings_updates_total",
			Help: "Settings updates applied",
		},
	)

	// InventoryRefreshTotal counts user collection refreshes by status.
	InventoryRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "olilab_inventory_refresh_total",
			Help: "Inventory user collection refreshes by status",
		},
		[]string{"status"},
	)
)

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// StatusLabel maps an error to the "status" label value.
func StatusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
