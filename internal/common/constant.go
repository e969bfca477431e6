// Package common contains shared constants and small helpers used across
// OliLab client components.
package common

const (
	// SessionUserIDKey is the session-scoped storage key holding the id of the
	// logged-in user.
	SessionUserIDKey = "oliLabLoggedInUserId"

	// SettingsKey is the durable storage key holding the JSON-encoded settings.
	SettingsKey = "oliLabSettings"
)
