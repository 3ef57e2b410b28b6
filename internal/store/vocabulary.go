package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/phrazzld/vocaboost-api/internal/domain"
)

// VocabularyStore defines the interface for vocabulary data persistence.
type VocabularyStore interface {
	// Create saves a new vocabulary item to the store and assigns its ID.
	// It handles domain validation internally.
	// Returns ErrWordExists if an item with the same word already exists.
	Create(ctx context.Context, item *domain.Vocabulary) error

	// GetByID retrieves a vocabulary item by its store-assigned ID.
	// Returns ErrVocabularyNotFound if the item does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Vocabulary, error)

	// GetByWord retrieves a vocabulary item by its word, the natural key.
	// Returns ErrVocabularyNotFound if the item does not exist.
	GetByWord(ctx context.Context, word string) (*domain.Vocabulary, error)

	// Update saves changes to an existing vocabulary item.
	// Returns ErrVocabularyNotFound if the item does not exist.
	// Returns validation errors if the item data is invalid.
	Update(ctx context.Context, item *domain.Vocabulary) error

	// Delete removes a vocabulary item by ID.
	// Returns ErrVocabularyNotFound if the item does not exist.
	Delete(ctx context.Context, id int64) error

	// ListAll retrieves every vocabulary item, ordered by word.
	ListAll(ctx context.Context) ([]*domain.Vocabulary, error)

	// ListDue retrieves items whose next review is due at or before the
	// given moment, excluding mastered items, ordered by next review time.
	ListDue(ctx context.Context, now time.Time) ([]*domain.Vocabulary, error)

	// ListCreatedBetween retrieves items created within [from, to),
	// ordered by creation time. Used for "added today" style queries.
	ListCreatedBetween(ctx context.Context, from, to time.Time) ([]*domain.Vocabulary, error)

	// ReplaceAll atomically replaces the entire collection with the given
	// items, assigning fresh IDs to items whose ID is zero. It is the
	// persistence half of a sync merge and should run inside a transaction.
	ReplaceAll(ctx context.Context, items []*domain.Vocabulary) error

	// WithTx returns a new VocabularyStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) VocabularyStore
}
