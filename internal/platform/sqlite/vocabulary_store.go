package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/vocaboost-api/internal/domain"
	"github.com/phrazzld/vocaboost-api/internal/platform/logger"
	"github.com/phrazzld/vocaboost-api/internal/store"
)

// VocabularyStore implements the store.VocabularyStore interface
// using a SQLite database as the storage backend.
type VocabularyStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewVocabularyStore creates a new SQLite implementation of the VocabularyStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewVocabularyStore(db store.DBTX, logger *slog.Logger) *VocabularyStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &VocabularyStore{
		db:     db,
		logger: logger.With(slog.String("component", "vocabulary_store")),
	}
}

// Ensure VocabularyStore implements store.VocabularyStore interface
var _ store.VocabularyStore = (*VocabularyStore)(nil)

const vocabularyColumns = `id, word, description, pronunciation, status, next_review,
	reviewed_at, interval, ease_factor, know_count, vague_count, forget_count,
	created_at, updated_at, is_synced`

// Create implements store.VocabularyStore.Create
// It saves a new vocabulary item, handling domain validation, and assigns
// the store ID on success.
// Returns store.ErrWordExists if an item with the same word already exists.
func (s *VocabularyStore) Create(ctx context.Context, item *domain.Vocabulary) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := item.Validate(); err != nil {
		log.Warn("vocabulary validation failed during create",
			slog.String("error", err.Error()),
			slog.String("word", item.Word))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO vocabularies (word, description, pronunciation, status, next_review,
			reviewed_at, interval, ease_factor, know_count, vague_count, forget_count,
			created_at, updated_at, is_synced)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		item.Word,
		item.Description,
		item.Pronunciation,
		item.Status,
		item.NextReview,
		nullableTime(item.ReviewedAt),
		item.Interval,
		item.EaseFactor,
		item.KnowCount,
		item.VagueCount,
		item.ForgetCount,
		item.CreatedAt,
		item.UpdatedAt,
		item.IsSynced,
	)

	if err != nil {
		if isUniqueConstraintErr(err) {
			log.Warn("duplicate word during vocabulary creation",
				slog.String("word", item.Word))
			return fmt.Errorf("%w: %s", store.ErrWordExists, item.Word)
		}

		log.Error("failed to create vocabulary",
			slog.String("error", err.Error()),
			slog.String("word", item.Word))
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Error("failed to read inserted vocabulary id",
			slog.String("error", err.Error()),
			slog.String("word", item.Word))
		return err
	}
	item.ID = id

	log.Info("vocabulary created successfully",
		slog.Int64("vocabulary_id", item.ID),
		slog.String("word", item.Word),
		slog.String("status", string(item.Status)))
	return nil
}

// GetByID implements store.VocabularyStore.GetByID
// Returns store.ErrVocabularyNotFound if the item does not exist.
func (s *VocabularyStore) GetByID(ctx context.Context, id int64) (*domain.Vocabulary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + vocabularyColumns + ` FROM vocabularies WHERE id = ?`

	item, err := scanVocabulary(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("vocabulary not found", slog.Int64("vocabulary_id", id))
			return nil, store.ErrVocabularyNotFound
		}
		log.Error("failed to get vocabulary by ID",
			slog.String("error", err.Error()),
			slog.Int64("vocabulary_id", id))
		return nil, err
	}

	return item, nil
}

// GetByWord implements store.VocabularyStore.GetByWord
// Returns store.ErrVocabularyNotFound if the item does not exist.
func (s *VocabularyStore) GetByWord(ctx context.Context, word string) (*domain.Vocabulary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + vocabularyColumns + ` FROM vocabularies WHERE word = ?`

	item, err := scanVocabulary(s.db.QueryRowContext(ctx, query, word))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("vocabulary not found", slog.String("word", word))
			return nil, store.ErrVocabularyNotFound
		}
		log.Error("failed to get vocabulary by word",
			slog.String("error", err.Error()),
			slog.String("word", word))
		return nil, err
	}

	return item, nil
}

// Update implements store.VocabularyStore.Update
// Returns store.ErrVocabularyNotFound if the item does not exist.
func (s *VocabularyStore) Update(ctx context.Context, item *domain.Vocabulary) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := item.Validate(); err != nil {
		log.Warn("vocabulary validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("vocabulary_id", item.ID))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE vocabularies
		SET word = ?, description = ?, pronunciation = ?, status = ?, next_review = ?,
			reviewed_at = ?, interval = ?, ease_factor = ?, know_count = ?,
			vague_count = ?, forget_count = ?, updated_at = ?, is_synced = ?
		WHERE id = ?
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		item.Word,
		item.Description,
		item.Pronunciation,
		item.Status,
		item.NextReview,
		nullableTime(item.ReviewedAt),
		item.Interval,
		item.EaseFactor,
		item.KnowCount,
		item.VagueCount,
		item.ForgetCount,
		item.UpdatedAt,
		item.IsSynced,
		item.ID,
	)

	if err != nil {
		if isUniqueConstraintErr(err) {
			log.Warn("duplicate word during vocabulary update",
				slog.String("word", item.Word))
			return fmt.Errorf("%w: %s", store.ErrWordExists, item.Word)
		}
		log.Error("failed to update vocabulary",
			slog.String("error", err.Error()),
			slog.Int64("vocabulary_id", item.ID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("vocabulary_id", item.ID))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("vocabulary not found for update",
			slog.Int64("vocabulary_id", item.ID))
		return store.ErrVocabularyNotFound
	}

	log.Debug("vocabulary updated successfully",
		slog.Int64("vocabulary_id", item.ID),
		slog.String("word", item.Word))
	return nil
}

// Delete implements store.VocabularyStore.Delete
// Returns store.ErrVocabularyNotFound if the item does not exist.
func (s *VocabularyStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM vocabularies WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete vocabulary",
			slog.String("error", err.Error()),
			slog.Int64("vocabulary_id", id))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("vocabulary_id", id))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("vocabulary not found for delete",
			slog.Int64("vocabulary_id", id))
		return store.ErrVocabularyNotFound
	}

	log.Info("vocabulary deleted successfully", slog.Int64("vocabulary_id", id))
	return nil
}

// ListAll implements store.VocabularyStore.ListAll
func (s *VocabularyStore) ListAll(ctx context.Context) ([]*domain.Vocabulary, error) {
	query := `SELECT ` + vocabularyColumns + ` FROM vocabularies ORDER BY word`
	return s.list(ctx, query)
}

// ListDue implements store.VocabularyStore.ListDue
// Mastered items are excluded: they have left the review rotation.
func (s *VocabularyStore) ListDue(ctx context.Context, now time.Time) ([]*domain.Vocabulary, error) {
	query := `SELECT ` + vocabularyColumns + `
		FROM vocabularies
		WHERE next_review <= ? AND status != ?
		ORDER BY next_review`
	return s.list(ctx, query, now, domain.StatusMastered)
}

// ListCreatedBetween implements store.VocabularyStore.ListCreatedBetween
func (s *VocabularyStore) ListCreatedBetween(
	ctx context.Context,
	from, to time.Time,
) ([]*domain.Vocabulary, error) {
	query := `SELECT ` + vocabularyColumns + `
		FROM vocabularies
		WHERE created_at >= ? AND created_at < ?
		ORDER BY created_at`
	return s.list(ctx, query, from, to)
}

// ReplaceAll implements store.VocabularyStore.ReplaceAll
// Items with a zero ID receive a store-assigned one; items with a nonzero ID
// keep it, which is how a sync merge updates existing rows in place.
func (s *VocabularyStore) ReplaceAll(ctx context.Context, items []*domain.Vocabulary) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.db.ExecContext(ctx, `DELETE FROM vocabularies`); err != nil {
		log.Error("failed to clear vocabularies for replace",
			slog.String("error", err.Error()))
		return err
	}

	insertWithID := `
		INSERT INTO vocabularies (id, word, description, pronunciation, status, next_review,
			reviewed_at, interval, ease_factor, know_count, vague_count, forget_count,
			created_at, updated_at, is_synced)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	insertFresh := `
		INSERT INTO vocabularies (word, description, pronunciation, status, next_review,
			reviewed_at, interval, ease_factor, know_count, vague_count, forget_count,
			created_at, updated_at, is_synced)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	for _, item := range items {
		args := []any{
			item.Word,
			item.Description,
			item.Pronunciation,
			item.Status,
			item.NextReview,
			nullableTime(item.ReviewedAt),
			item.Interval,
			item.EaseFactor,
			item.KnowCount,
			item.VagueCount,
			item.ForgetCount,
			item.CreatedAt,
			item.UpdatedAt,
			item.IsSynced,
		}

		if item.ID != 0 {
			if _, err := s.db.ExecContext(ctx, insertWithID, append([]any{item.ID}, args...)...); err != nil {
				log.Error("failed to insert vocabulary during replace",
					slog.String("error", err.Error()),
					slog.String("word", item.Word))
				return err
			}
			continue
		}

		result, err := s.db.ExecContext(ctx, insertFresh, args...)
		if err != nil {
			log.Error("failed to insert vocabulary during replace",
				slog.String("error", err.Error()),
				slog.String("word", item.Word))
			return err
		}
		id, err := result.LastInsertId()
		if err != nil {
			return err
		}
		item.ID = id
	}

	log.Info("vocabularies replaced", slog.Int("count", len(items)))
	return nil
}

// WithTx implements store.VocabularyStore.WithTx
func (s *VocabularyStore) WithTx(tx *sql.Tx) store.VocabularyStore {
	return &VocabularyStore{
		db:     tx,
		logger: s.logger,
	}
}

func (s *VocabularyStore) list(
	ctx context.Context,
	query string,
	args ...any,
) ([]*domain.Vocabulary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query vocabularies", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	items := []*domain.Vocabulary{}
	for rows.Next() {
		item, err := scanVocabulary(rows)
		if err != nil {
			log.Error("failed to scan vocabulary row", slog.String("error", err.Error()))
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return items, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanVocabulary(row rowScanner) (*domain.Vocabulary, error) {
	var item domain.Vocabulary
	var status string
	var reviewedAt sql.NullTime

	err := row.Scan(
		&item.ID,
		&item.Word,
		&item.Description,
		&item.Pronunciation,
		&status,
		&item.NextReview,
		&reviewedAt,
		&item.Interval,
		&item.EaseFactor,
		&item.KnowCount,
		&item.VagueCount,
		&item.ForgetCount,
		&item.CreatedAt,
		&item.UpdatedAt,
		&item.IsSynced,
	)
	if err != nil {
		return nil, err
	}

	item.Status = domain.Status(status)
	if reviewedAt.Valid {
		t := reviewedAt.Time
		item.ReviewedAt = &t
	}

	return &item, nil
}

// nullableTime adapts an optional time for a nullable DATETIME column.
func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
