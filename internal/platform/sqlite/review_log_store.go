package sqlite

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/phrazzld/vocaboost-api/internal/domain"
	"github.com/phrazzld/vocaboost-api/internal/platform/logger"
	"github.com/phrazzld/vocaboost-api/internal/store"
)

// ReviewLogStore implements the store.ReviewLogStore interface
// using a SQLite database as the storage backend.
type ReviewLogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewReviewLogStore creates a new SQLite implementation of the ReviewLogStore interface.
// If logger is nil, a default logger will be used.
func NewReviewLogStore(db store.DBTX, logger *slog.Logger) *ReviewLogStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ReviewLogStore{
		db:     db,
		logger: logger.With(slog.String("component", "review_log_store")),
	}
}

// Ensure ReviewLogStore implements store.ReviewLogStore interface
var _ store.ReviewLogStore = (*ReviewLogStore)(nil)

const reviewLogColumns = `id, word, review_status, created_at, old_interval, new_interval,
	old_ease_factor, new_ease_factor, old_next_review, new_next_review`

// Create implements store.ReviewLogStore.Create
func (s *ReviewLogStore) Create(ctx context.Context, entry *domain.ReviewLog) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO review_logs (word, review_status, created_at, old_interval, new_interval,
			old_ease_factor, new_ease_factor, old_next_review, new_next_review)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		entry.Word,
		entry.ReviewStatus,
		entry.CreatedAt,
		entry.OldInterval,
		entry.NewInterval,
		entry.OldEaseFactor,
		entry.NewEaseFactor,
		entry.OldNextReview,
		entry.NewNextReview,
	)
	if err != nil {
		log.Error("failed to create review log",
			slog.String("error", err.Error()),
			slog.String("word", entry.Word))
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Error("failed to read inserted review log id",
			slog.String("error", err.Error()),
			slog.String("word", entry.Word))
		return err
	}
	entry.ID = id

	log.Debug("review log created",
		slog.Int64("review_log_id", entry.ID),
		slog.String("word", entry.Word),
		slog.String("outcome", string(entry.ReviewStatus)))
	return nil
}

// ListAll implements store.ReviewLogStore.ListAll
func (s *ReviewLogStore) ListAll(ctx context.Context) ([]*domain.ReviewLog, error) {
	query := `SELECT ` + reviewLogColumns + ` FROM review_logs ORDER BY created_at DESC, id DESC`
	return s.list(ctx, query)
}

// ListSince implements store.ReviewLogStore.ListSince
func (s *ReviewLogStore) ListSince(ctx context.Context, since time.Time) ([]*domain.ReviewLog, error) {
	query := `SELECT ` + reviewLogColumns + `
		FROM review_logs
		WHERE created_at >= ?
		ORDER BY created_at DESC, id DESC`
	return s.list(ctx, query, since)
}

// ListByWord implements store.ReviewLogStore.ListByWord
func (s *ReviewLogStore) ListByWord(ctx context.Context, word string) ([]*domain.ReviewLog, error) {
	query := `SELECT ` + reviewLogColumns + `
		FROM review_logs
		WHERE word = ?
		ORDER BY created_at DESC, id DESC`
	return s.list(ctx, query, word)
}

// Count implements store.ReviewLogStore.Count
func (s *ReviewLogStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM review_logs`).Scan(&count)
	return count, err
}

// CountByOutcome implements store.ReviewLogStore.CountByOutcome
func (s *ReviewLogStore) CountByOutcome(
	ctx context.Context,
	outcome domain.ReviewOutcome,
	since time.Time,
) (int, error) {
	var count int
	err := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM review_logs WHERE review_status = ? AND created_at >= ?`,
		outcome,
		since,
	).Scan(&count)
	return count, err
}

// ReplaceAll implements store.ReviewLogStore.ReplaceAll
func (s *ReviewLogStore) ReplaceAll(ctx context.Context, entries []*domain.ReviewLog) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.db.ExecContext(ctx, `DELETE FROM review_logs`); err != nil {
		log.Error("failed to clear review logs for replace",
			slog.String("error", err.Error()))
		return err
	}

	for _, entry := range entries {
		var err error
		if entry.ID != 0 {
			_, err = s.db.ExecContext(ctx, `
				INSERT INTO review_logs (id, word, review_status, created_at, old_interval,
					new_interval, old_ease_factor, new_ease_factor, old_next_review, new_next_review)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				entry.ID, entry.Word, entry.ReviewStatus, entry.CreatedAt,
				entry.OldInterval, entry.NewInterval,
				entry.OldEaseFactor, entry.NewEaseFactor,
				entry.OldNextReview, entry.NewNextReview,
			)
		} else {
			var result sql.Result
			result, err = s.db.ExecContext(ctx, `
				INSERT INTO review_logs (word, review_status, created_at, old_interval,
					new_interval, old_ease_factor, new_ease_factor, old_next_review, new_next_review)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				entry.Word, entry.ReviewStatus, entry.CreatedAt,
				entry.OldInterval, entry.NewInterval,
				entry.OldEaseFactor, entry.NewEaseFactor,
				entry.OldNextReview, entry.NewNextReview,
			)
			if err == nil {
				entry.ID, err = result.LastInsertId()
			}
		}
		if err != nil {
			log.Error("failed to insert review log during replace",
				slog.String("error", err.Error()),
				slog.String("word", entry.Word))
			return err
		}
	}

	log.Info("review logs replaced", slog.Int("count", len(entries)))
	return nil
}

// WithTx implements store.ReviewLogStore.WithTx
func (s *ReviewLogStore) WithTx(tx *sql.Tx) store.ReviewLogStore {
	return &ReviewLogStore{
		db:     tx,
		logger: s.logger,
	}
}

func (s *ReviewLogStore) list(
	ctx context.Context,
	query string,
	args ...any,
) ([]*domain.ReviewLog, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query review logs", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	entries := []*domain.ReviewLog{}
	for rows.Next() {
		var entry domain.ReviewLog
		var outcome string

		err := rows.Scan(
			&entry.ID,
			&entry.Word,
			&outcome,
			&entry.CreatedAt,
			&entry.OldInterval,
			&entry.NewInterval,
			&entry.OldEaseFactor,
			&entry.NewEaseFactor,
			&entry.OldNextReview,
			&entry.NewNextReview,
		)
		if err != nil {
			log.Error("failed to scan review log row", slog.String("error", err.Error()))
			return nil, err
		}

		entry.ReviewStatus = domain.ReviewOutcome(outcome)
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return entries, nil
}
