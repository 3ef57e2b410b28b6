package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/vocaboost-api/internal/domain"
	"github.com/phrazzld/vocaboost-api/internal/service"
)

func TestVocabularyServiceCreate(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	item, err := env.vocabulary.Create(ctx, "  serendipity  ", "a happy accident", "/ˌsɛrənˈdɪpɪti/")
	require.NoError(t, err)
	assert.NotZero(t, item.ID)
	assert.Equal(t, "serendipity", item.Word, "word should be trimmed")
	assert.Equal(t, domain.StatusNew, item.Status)
	assert.Equal(t, domain.DefaultEaseFactor, item.EaseFactor)

	t.Run("duplicate word", func(t *testing.T) {
		_, err := env.vocabulary.Create(ctx, "serendipity", "again", "")
		assert.ErrorIs(t, err, service.ErrWordExists)
	})

	t.Run("empty word", func(t *testing.T) {
		_, err := env.vocabulary.Create(ctx, "   ", "blank", "")
		assert.ErrorIs(t, err, domain.ErrEmptyWord)
	})
}

func TestVocabularyServiceGetAndDelete(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	env.mustCreate(t, "halcyon")

	got, err := env.vocabulary.Get(ctx, "halcyon")
	require.NoError(t, err)
	assert.Equal(t, "halcyon", got.Word)

	require.NoError(t, env.vocabulary.Delete(ctx, "halcyon"))

	_, err = env.vocabulary.Get(ctx, "halcyon")
	assert.ErrorIs(t, err, service.ErrVocabularyNotFound)

	assert.ErrorIs(t, env.vocabulary.Delete(ctx, "halcyon"), service.ErrVocabularyNotFound)
}

func TestVocabularyServiceUpdateDescription(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	env.mustCreate(t, "liminal")

	updated, err := env.vocabulary.UpdateDescription(ctx, "liminal", "between two states", "/ˈlɪmɪnl/")
	require.NoError(t, err)
	assert.Equal(t, "between two states", updated.Description)
	assert.Equal(t, "/ˈlɪmɪnl/", updated.Pronunciation)
	assert.False(t, updated.IsSynced, "edits must be marked unsynced")

	t.Run("empty description rejected", func(t *testing.T) {
		_, err := env.vocabulary.UpdateDescription(ctx, "liminal", "  ", "")
		assert.ErrorIs(t, err, domain.ErrEmptyDescription)
	})

	t.Run("missing word", func(t *testing.T) {
		_, err := env.vocabulary.UpdateDescription(ctx, "absent", "text", "")
		assert.ErrorIs(t, err, service.ErrVocabularyNotFound)
	})
}

func TestVocabularyServiceReset(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	env.mustCreate(t, "vestige")

	// Advance the item through two successful reviews first.
	_, err := env.review.SubmitReview(ctx, "vestige", domain.ReviewOutcomeKnow)
	require.NoError(t, err)
	_, err = env.review.SubmitReview(ctx, "vestige", domain.ReviewOutcomeKnow)
	require.NoError(t, err)

	reset, err := env.vocabulary.Reset(ctx, "vestige")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNew, reset.Status)
	assert.Zero(t, reset.Interval)
	assert.Zero(t, reset.KnowCount)
	assert.Equal(t, domain.DefaultEaseFactor, reset.EaseFactor)

	// The review history survives a reset.
	history, err := env.review.History(ctx, "vestige")
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestVocabularyServiceListDue(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	now := time.Now().UTC()

	env.mustCreate(t, "imminent")
	env.mustCreate(t, "distant")

	// Reviewing "distant" with know pushes it past today.
	_, err := env.review.SubmitReview(ctx, "distant", domain.ReviewOutcomeKnow)
	require.NoError(t, err)

	due, err := env.vocabulary.ListDue(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "imminent", due[0].Word)

	added, err := env.vocabulary.ListAddedToday(ctx, now)
	require.NoError(t, err)
	assert.Len(t, added, 2)
}
