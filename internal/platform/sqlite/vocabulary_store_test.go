package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/vocaboost-api/internal/domain"
	"github.com/phrazzld/vocaboost-api/internal/store"
)

// newTestDB opens a fresh in-memory database with the full schema applied.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	return db
}

func newTestVocabulary(t *testing.T, word string) *domain.Vocabulary {
	t.Helper()

	item, err := domain.NewVocabulary(word, "definition of "+word)
	require.NoError(t, err)
	return item
}

func TestVocabularyStoreCreate(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	s := NewVocabularyStore(db, nil)
	ctx := context.Background()

	item := newTestVocabulary(t, "ephemeral")
	require.NoError(t, s.Create(ctx, item))
	assert.NotZero(t, item.ID, "create should assign the store id")

	t.Run("duplicate word rejected", func(t *testing.T) {
		dup := newTestVocabulary(t, "ephemeral")
		err := s.Create(ctx, dup)
		require.Error(t, err)
		assert.True(t, store.IsDuplicateError(err))
		assert.ErrorIs(t, err, store.ErrWordExists)
	})

	t.Run("invalid item rejected", func(t *testing.T) {
		bad := newTestVocabulary(t, "broken")
		bad.EaseFactor = 99
		err := s.Create(ctx, bad)
		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestVocabularyStoreGet(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	s := NewVocabularyStore(db, nil)
	ctx := context.Background()

	item := newTestVocabulary(t, "sonder")
	item.Pronunciation = "/ˈsɒndər/"
	require.NoError(t, s.Create(ctx, item))

	t.Run("by id", func(t *testing.T) {
		got, err := s.GetByID(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, "sonder", got.Word)
		assert.Equal(t, "/ˈsɒndər/", got.Pronunciation)
		assert.Equal(t, domain.StatusNew, got.Status)
		assert.Nil(t, got.ReviewedAt)
	})

	t.Run("by word", func(t *testing.T) {
		got, err := s.GetByWord(ctx, "sonder")
		require.NoError(t, err)
		assert.Equal(t, item.ID, got.ID)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := s.GetByID(ctx, 9999)
		assert.ErrorIs(t, err, store.ErrVocabularyNotFound)
	})

	t.Run("missing word", func(t *testing.T) {
		_, err := s.GetByWord(ctx, "nonesuch")
		assert.ErrorIs(t, err, store.ErrVocabularyNotFound)
	})
}

func TestVocabularyStoreUpdate(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	s := NewVocabularyStore(db, nil)
	ctx := context.Background()

	item := newTestVocabulary(t, "petrichor")
	require.NoError(t, s.Create(ctx, item))

	now := time.Now().UTC().Truncate(time.Second)
	item.Status = domain.StatusLearning
	item.Interval = 6
	item.KnowCount = 2
	item.ReviewedAt = &now
	item.UpdatedAt = now
	require.NoError(t, s.Update(ctx, item))

	got, err := s.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusLearning, got.Status)
	assert.Equal(t, 6, got.Interval)
	assert.Equal(t, 2, got.KnowCount)
	require.NotNil(t, got.ReviewedAt)
	assert.WithinDuration(t, now, *got.ReviewedAt, time.Second)

	t.Run("missing item", func(t *testing.T) {
		ghost := newTestVocabulary(t, "ghost")
		ghost.ID = 12345
		assert.ErrorIs(t, s.Update(ctx, ghost), store.ErrVocabularyNotFound)
	})
}

func TestVocabularyStoreDelete(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	s := NewVocabularyStore(db, nil)
	ctx := context.Background()

	item := newTestVocabulary(t, "fleeting")
	require.NoError(t, s.Create(ctx, item))

	require.NoError(t, s.Delete(ctx, item.ID))
	_, err := s.GetByID(ctx, item.ID)
	assert.ErrorIs(t, err, store.ErrVocabularyNotFound)

	assert.ErrorIs(t, s.Delete(ctx, item.ID), store.ErrVocabularyNotFound)
}

func TestVocabularyStoreListDue(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	s := NewVocabularyStore(db, nil)
	ctx := context.Background()
	now := time.Now().UTC()

	due := newTestVocabulary(t, "due")
	due.NextReview = now.AddDate(0, 0, -1)
	require.NoError(t, s.Create(ctx, due))

	future := newTestVocabulary(t, "future")
	future.NextReview = now.AddDate(0, 0, 3)
	require.NoError(t, s.Create(ctx, future))

	mastered := newTestVocabulary(t, "mastered")
	mastered.NextReview = now.AddDate(0, 0, -10)
	mastered.Status = domain.StatusMastered
	mastered.Interval = 38
	require.NoError(t, s.Create(ctx, mastered))

	items, err := s.ListDue(ctx, now)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "due", items[0].Word)
}

func TestVocabularyStoreListCreatedBetween(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	s := NewVocabularyStore(db, nil)
	ctx := context.Background()
	now := time.Now().UTC()

	today := newTestVocabulary(t, "today")
	require.NoError(t, s.Create(ctx, today))

	old := newTestVocabulary(t, "old")
	old.CreatedAt = now.AddDate(0, 0, -7)
	require.NoError(t, s.Create(ctx, old))

	items, err := s.ListCreatedBetween(ctx, domain.StartOfDay(now), domain.EndOfDay(now))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "today", items[0].Word)
}

func TestVocabularyStoreReplaceAll(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	s := NewVocabularyStore(db, nil)
	ctx := context.Background()

	stale := newTestVocabulary(t, "stale")
	require.NoError(t, s.Create(ctx, stale))

	kept := newTestVocabulary(t, "kept")
	kept.ID = stale.ID // simulates a merge winner that keeps the local row id
	fresh := newTestVocabulary(t, "fresh")

	require.NoError(t, s.ReplaceAll(ctx, []*domain.Vocabulary{kept, fresh}))

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	got, err := s.GetByWord(ctx, "kept")
	require.NoError(t, err)
	assert.Equal(t, stale.ID, got.ID)

	assert.NotZero(t, fresh.ID, "replace should assign ids to zero-id items")

	_, err = s.GetByWord(ctx, "stale")
	assert.ErrorIs(t, err, store.ErrVocabularyNotFound)
}

func TestVocabularyStoreWithTx(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	s := NewVocabularyStore(db, nil)
	ctx := context.Background()

	err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.WithTx(tx)
		return txStore.Create(ctx, newTestVocabulary(t, "committed"))
	})
	require.NoError(t, err)

	_, err = s.GetByWord(ctx, "committed")
	assert.NoError(t, err)

	rollbackErr := assert.AnError
	err = store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.WithTx(tx)
		if err := txStore.Create(ctx, newTestVocabulary(t, "discarded")); err != nil {
			return err
		}
		return rollbackErr
	})
	assert.ErrorIs(t, err, rollbackErr)

	_, err = s.GetByWord(ctx, "discarded")
	assert.ErrorIs(t, err, store.ErrVocabularyNotFound)
}
