package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/vocaboost-api/internal/domain"
)

// AudioStore defines the interface for cached pronunciation audio persistence.
// Clips are keyed by their natural "{word}_{accent}" key; Put is an upsert.
type AudioStore interface {
	// Put saves a clip, overwriting any existing clip with the same key.
	Put(ctx context.Context, clip *domain.AudioClip) error

	// GetByKey retrieves a clip by its storage key.
	// Returns ErrAudioClipNotFound if the clip does not exist.
	GetByKey(ctx context.Context, key string) (*domain.AudioClip, error)

	// Delete removes a clip by its storage key.
	// Returns ErrAudioClipNotFound if the clip does not exist.
	Delete(ctx context.Context, key string) error

	// ListAll retrieves every clip, ordered by key.
	ListAll(ctx context.Context) ([]*domain.AudioClip, error)

	// ReplaceAll atomically replaces the entire collection with the given clips.
	ReplaceAll(ctx context.Context, clips []*domain.AudioClip) error

	// WithTx returns a new AudioStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) AudioStore
}
