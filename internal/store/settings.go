package store

import (
	"context"
	"database/sql"
)

// SettingsStore defines the interface for user preference persistence.
// Settings are stored as string key/value rows so a sync merge can overlay
// them without knowing the shape of every preference.
type SettingsStore interface {
	// Get retrieves the value of one setting key.
	// Returns ErrSettingNotFound if the key has never been set.
	Get(ctx context.Context, key string) (string, error)

	// Set stores the value for a key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// GetAll retrieves every stored setting as a map.
	GetAll(ctx context.Context) (map[string]string, error)

	// ReplaceAll atomically replaces every stored setting with the given map.
	ReplaceAll(ctx context.Context, values map[string]string) error

	// WithTx returns a new SettingsStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) SettingsStore
}
