package store

import (
	"context"
)

// MetaStore defines the interface for store-local metadata that must never
// participate in sync, most importantly the device identity. Keeping it out
// of the settings table guarantees a merge can never overwrite one device's
// identity with another's.
type MetaStore interface {
	// DeviceID returns this store's stable device identifier, generating
	// and persisting one on first call.
	DeviceID(ctx context.Context) (string, error)
}
