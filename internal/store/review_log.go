package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/phrazzld/vocaboost-api/internal/domain"
)

// ReviewLogStore defines the interface for review log persistence.
// Review logs are append-only: entries are created and listed, never updated.
type ReviewLogStore interface {
	// Create appends a new review log entry and assigns its ID.
	Create(ctx context.Context, entry *domain.ReviewLog) error

	// ListAll retrieves every entry, newest first.
	ListAll(ctx context.Context) ([]*domain.ReviewLog, error)

	// ListSince retrieves entries created at or after the given moment,
	// newest first.
	ListSince(ctx context.Context, since time.Time) ([]*domain.ReviewLog, error)

	// ListByWord retrieves the review history of one word, newest first.
	ListByWord(ctx context.Context, word string) ([]*domain.ReviewLog, error)

	// Count returns the total number of entries.
	Count(ctx context.Context) (int, error)

	// CountByOutcome returns the number of entries recorded with the given
	// outcome since the given moment.
	CountByOutcome(ctx context.Context, outcome domain.ReviewOutcome, since time.Time) (int, error)

	// ReplaceAll atomically replaces the entire collection with the given
	// entries, assigning fresh IDs to entries whose ID is zero.
	ReplaceAll(ctx context.Context, entries []*domain.ReviewLog) error

	// WithTx returns a new ReviewLogStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) ReviewLogStore
}
