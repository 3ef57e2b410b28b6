package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/phrazzld/vocaboost-api/internal/domain"
)

// StudyLogStore defines the interface for study session log persistence.
// Like review logs, study logs are append-only.
type StudyLogStore interface {
	// Create appends a new study log entry and assigns its ID.
	Create(ctx context.Context, entry *domain.StudyLog) error

	// ListAll retrieves every entry, newest first.
	ListAll(ctx context.Context) ([]*domain.StudyLog, error)

	// ListSince retrieves entries created at or after the given moment,
	// newest first.
	ListSince(ctx context.Context, since time.Time) ([]*domain.StudyLog, error)

	// Latest retrieves the most recent entry.
	// Returns ErrNotFound if no sessions have been recorded.
	Latest(ctx context.Context) (*domain.StudyLog, error)

	// Count returns the total number of entries.
	Count(ctx context.Context) (int, error)

	// ReplaceAll atomically replaces the entire collection with the given
	// entries, assigning fresh IDs to entries whose ID is zero.
	ReplaceAll(ctx context.Context, entries []*domain.StudyLog) error

	// WithTx returns a new StudyLogStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) StudyLogStore
}
