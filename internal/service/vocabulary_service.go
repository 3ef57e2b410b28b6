package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/vocaboost-api/internal/domain"
	"github.com/phrazzld/vocaboost-api/internal/domain/srs"
	"github.com/phrazzld/vocaboost-api/internal/platform/logger"
	"github.com/phrazzld/vocaboost-api/internal/store"
)

// VocabularyService provides methods for managing the vocabulary collection.
type VocabularyService interface {
	// Create adds a new word to the collection and schedules its first review.
	// Returns ErrWordExists if the word is already present.
	Create(ctx context.Context, word, description, pronunciation string) (*domain.Vocabulary, error)

	// Get retrieves one vocabulary item by word.
	// Returns ErrVocabularyNotFound if the word is not in the collection.
	Get(ctx context.Context, word string) (*domain.Vocabulary, error)

	// List retrieves the whole collection ordered by word.
	List(ctx context.Context) ([]*domain.Vocabulary, error)

	// UpdateDescription replaces the description (and optionally the
	// pronunciation) of an existing word.
	UpdateDescription(ctx context.Context, word, description, pronunciation string) (*domain.Vocabulary, error)

	// Delete removes a word from the collection.
	Delete(ctx context.Context, word string) error

	// Reset returns a word to its initial scheduling state, as if it had
	// just been added. Its review history is preserved.
	Reset(ctx context.Context, word string) (*domain.Vocabulary, error)

	// ListDue retrieves the items due for review at the given moment.
	ListDue(ctx context.Context, now time.Time) ([]*domain.Vocabulary, error)

	// ListAddedToday retrieves the items created on the given moment's day.
	ListAddedToday(ctx context.Context, now time.Time) ([]*domain.Vocabulary, error)
}

// Verify interface compliance at compile time
var _ VocabularyService = (*vocabularyServiceImpl)(nil)

type vocabularyServiceImpl struct {
	db         *sql.DB
	vocabStore store.VocabularyStore
	srsService srs.Service
	logger     *slog.Logger
	now        func() time.Time
}

// NewVocabularyService creates a new VocabularyService implementation.
func NewVocabularyService(
	db *sql.DB,
	vocabStore store.VocabularyStore,
	srsService srs.Service,
	logger *slog.Logger,
) VocabularyService {
	if db == nil {
		panic("db cannot be nil")
	}
	if vocabStore == nil {
		panic("vocabStore cannot be nil")
	}
	if srsService == nil {
		panic("srsService cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &vocabularyServiceImpl{
		db:         db,
		vocabStore: vocabStore,
		srsService: srsService,
		logger:     logger.With(slog.String("component", "vocabulary_service")),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Create implements VocabularyService.Create.
func (s *vocabularyServiceImpl) Create(
	ctx context.Context,
	word, description, pronunciation string,
) (*domain.Vocabulary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	item, err := domain.NewVocabulary(word, description)
	if err != nil {
		return nil, err
	}
	item.Pronunciation = strings.TrimSpace(pronunciation)

	if err := s.vocabStore.Create(ctx, item); err != nil {
		if store.IsDuplicateError(err) {
			return nil, fmt.Errorf("%w: %s", ErrWordExists, item.Word)
		}
		log.Error("failed to create vocabulary",
			slog.String("error", err.Error()),
			slog.String("word", item.Word))
		return nil, NewServiceError("create_vocabulary", "failed to persist item", err)
	}

	log.Info("vocabulary added",
		slog.Int64("vocabulary_id", item.ID),
		slog.String("word", item.Word))
	return item, nil
}

// Get implements VocabularyService.Get.
func (s *vocabularyServiceImpl) Get(ctx context.Context, word string) (*domain.Vocabulary, error) {
	item, err := s.vocabStore.GetByWord(ctx, strings.TrimSpace(word))
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: %s", ErrVocabularyNotFound, word)
		}
		return nil, NewServiceError("get_vocabulary", "failed to load item", err)
	}
	return item, nil
}

// List implements VocabularyService.List.
func (s *vocabularyServiceImpl) List(ctx context.Context) ([]*domain.Vocabulary, error) {
	items, err := s.vocabStore.ListAll(ctx)
	if err != nil {
		return nil, NewServiceError("list_vocabulary", "failed to list items", err)
	}
	return items, nil
}

// UpdateDescription implements VocabularyService.UpdateDescription.
func (s *vocabularyServiceImpl) UpdateDescription(
	ctx context.Context,
	word, description, pronunciation string,
) (*domain.Vocabulary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	description = strings.TrimSpace(description)
	if description == "" {
		return nil, domain.ErrEmptyDescription
	}

	var updated *domain.Vocabulary
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.vocabStore.WithTx(tx)

		item, err := txStore.GetByWord(ctx, strings.TrimSpace(word))
		if err != nil {
			if store.IsNotFoundError(err) {
				return fmt.Errorf("%w: %s", ErrVocabularyNotFound, word)
			}
			return err
		}

		item.Description = description
		if p := strings.TrimSpace(pronunciation); p != "" {
			item.Pronunciation = p
		}
		item.UpdatedAt = s.now()
		item.IsSynced = false

		if err := txStore.Update(ctx, item); err != nil {
			return err
		}

		updated = item
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrVocabularyNotFound) {
			return nil, err
		}
		log.Error("failed to update vocabulary",
			slog.String("error", err.Error()),
			slog.String("word", word))
		return nil, NewServiceError("update_vocabulary", "failed to update item", err)
	}

	return updated, nil
}

// Delete implements VocabularyService.Delete.
func (s *vocabularyServiceImpl) Delete(ctx context.Context, word string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.vocabStore.WithTx(tx)

		item, err := txStore.GetByWord(ctx, strings.TrimSpace(word))
		if err != nil {
			if store.IsNotFoundError(err) {
				return fmt.Errorf("%w: %s", ErrVocabularyNotFound, word)
			}
			return err
		}

		return txStore.Delete(ctx, item.ID)
	})
	if err != nil {
		if errors.Is(err, ErrVocabularyNotFound) {
			return err
		}
		log.Error("failed to delete vocabulary",
			slog.String("error", err.Error()),
			slog.String("word", word))
		return NewServiceError("delete_vocabulary", "failed to delete item", err)
	}

	log.Info("vocabulary deleted", slog.String("word", word))
	return nil
}

// Reset implements VocabularyService.Reset.
func (s *vocabularyServiceImpl) Reset(ctx context.Context, word string) (*domain.Vocabulary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var updated *domain.Vocabulary
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.vocabStore.WithTx(tx)

		item, err := txStore.GetByWord(ctx, strings.TrimSpace(word))
		if err != nil {
			if store.IsNotFoundError(err) {
				return fmt.Errorf("%w: %s", ErrVocabularyNotFound, word)
			}
			return err
		}

		reset, err := s.srsService.Reset(item, s.now())
		if err != nil {
			return err
		}

		if err := txStore.Update(ctx, reset); err != nil {
			return err
		}

		updated = reset
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrVocabularyNotFound) {
			return nil, err
		}
		log.Error("failed to reset vocabulary",
			slog.String("error", err.Error()),
			slog.String("word", word))
		return nil, NewServiceError("reset_vocabulary", "failed to reset item", err)
	}

	log.Info("vocabulary reset", slog.String("word", word))
	return updated, nil
}

// ListDue implements VocabularyService.ListDue.
// Due means the scheduled review day has started; an item scheduled for
// today is due all day, so the comparison uses the end of the current day.
func (s *vocabularyServiceImpl) ListDue(ctx context.Context, now time.Time) ([]*domain.Vocabulary, error) {
	items, err := s.vocabStore.ListDue(ctx, domain.EndOfDay(now))
	if err != nil {
		return nil, NewServiceError("list_due", "failed to list due items", err)
	}
	return items, nil
}

// ListAddedToday implements VocabularyService.ListAddedToday.
func (s *vocabularyServiceImpl) ListAddedToday(
	ctx context.Context,
	now time.Time,
) ([]*domain.Vocabulary, error) {
	items, err := s.vocabStore.ListCreatedBetween(ctx, domain.StartOfDay(now), domain.EndOfDay(now))
	if err != nil {
		return nil, NewServiceError("list_added_today", "failed to list items", err)
	}
	return items, nil
}
