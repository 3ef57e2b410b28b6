package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/vocaboost-api/internal/domain"
	"github.com/phrazzld/vocaboost-api/internal/platform/logger"
	"github.com/phrazzld/vocaboost-api/internal/store"
)

// StudyLogStore implements the store.StudyLogStore interface
// using a SQLite database as the storage backend.
type StudyLogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewStudyLogStore creates a new SQLite implementation of the StudyLogStore interface.
// If logger is nil, a default logger will be used.
func NewStudyLogStore(db store.DBTX, logger *slog.Logger) *StudyLogStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &StudyLogStore{
		db:     db,
		logger: logger.With(slog.String("component", "study_log_store")),
	}
}

// Ensure StudyLogStore implements store.StudyLogStore interface
var _ store.StudyLogStore = (*StudyLogStore)(nil)

const studyLogColumns = `id, know_count, vague_count, forget_count, accuracy_rate, created_at`

// Create implements store.StudyLogStore.Create
func (s *StudyLogStore) Create(ctx context.Context, entry *domain.StudyLog) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO study_logs (know_count, vague_count, forget_count, accuracy_rate, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		entry.KnowCount,
		entry.VagueCount,
		entry.ForgetCount,
		entry.AccuracyRate,
		entry.CreatedAt,
	)
	if err != nil {
		log.Error("failed to create study log", slog.String("error", err.Error()))
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Error("failed to read inserted study log id", slog.String("error", err.Error()))
		return err
	}
	entry.ID = id

	log.Debug("study log created",
		slog.Int64("study_log_id", entry.ID),
		slog.Int("total", entry.Total()))
	return nil
}

// ListAll implements store.StudyLogStore.ListAll
func (s *StudyLogStore) ListAll(ctx context.Context) ([]*domain.StudyLog, error) {
	query := `SELECT ` + studyLogColumns + ` FROM study_logs ORDER BY created_at DESC, id DESC`
	return s.list(ctx, query)
}

// ListSince implements store.StudyLogStore.ListSince
func (s *StudyLogStore) ListSince(ctx context.Context, since time.Time) ([]*domain.StudyLog, error) {
	query := `SELECT ` + studyLogColumns + `
		FROM study_logs
		WHERE created_at >= ?
		ORDER BY created_at DESC, id DESC`
	return s.list(ctx, query, since)
}

// Latest implements store.StudyLogStore.Latest
// Returns store.ErrNotFound if no sessions have been recorded.
func (s *StudyLogStore) Latest(ctx context.Context) (*domain.StudyLog, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + studyLogColumns + ` FROM study_logs ORDER BY created_at DESC, id DESC LIMIT 1`

	var entry domain.StudyLog
	err := s.db.QueryRowContext(ctx, query).Scan(
		&entry.ID,
		&entry.KnowCount,
		&entry.VagueCount,
		&entry.ForgetCount,
		&entry.AccuracyRate,
		&entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		log.Error("failed to get latest study log", slog.String("error", err.Error()))
		return nil, err
	}

	return &entry, nil
}

// Count implements store.StudyLogStore.Count
func (s *StudyLogStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM study_logs`).Scan(&count)
	return count, err
}

// ReplaceAll implements store.StudyLogStore.ReplaceAll
func (s *StudyLogStore) ReplaceAll(ctx context.Context, entries []*domain.StudyLog) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.db.ExecContext(ctx, `DELETE FROM study_logs`); err != nil {
		log.Error("failed to clear study logs for replace", slog.String("error", err.Error()))
		return err
	}

	for _, entry := range entries {
		var err error
		if entry.ID != 0 {
			_, err = s.db.ExecContext(ctx, `
				INSERT INTO study_logs (id, know_count, vague_count, forget_count, accuracy_rate, created_at)
				VALUES (?, ?, ?, ?, ?, ?)`,
				entry.ID, entry.KnowCount, entry.VagueCount,
				entry.ForgetCount, entry.AccuracyRate, entry.CreatedAt,
			)
		} else {
			var result sql.Result
			result, err = s.db.ExecContext(ctx, `
				INSERT INTO study_logs (know_count, vague_count, forget_count, accuracy_rate, created_at)
				VALUES (?, ?, ?, ?, ?)`,
				entry.KnowCount, entry.VagueCount,
				entry.ForgetCount, entry.AccuracyRate, entry.CreatedAt,
			)
			if err == nil {
				entry.ID, err = result.LastInsertId()
			}
		}
		if err != nil {
			log.Error("failed to insert study log during replace",
				slog.String("error", err.Error()))
			return err
		}
	}

	log.Info("study logs replaced", slog.Int("count", len(entries)))
	return nil
}

// WithTx implements store.StudyLogStore.WithTx
func (s *StudyLogStore) WithTx(tx *sql.Tx) store.StudyLogStore {
	return &StudyLogStore{
		db:     tx,
		logger: s.logger,
	}
}

func (s *StudyLogStore) list(
	ctx context.Context,
	query string,
	args ...any,
) ([]*domain.StudyLog, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query study logs", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	entries := []*domain.StudyLog{}
	for rows.Next() {
		var entry domain.StudyLog
		err := rows.Scan(
			&entry.ID,
			&entry.KnowCount,
			&entry.VagueCount,
			&entry.ForgetCount,
			&entry.AccuracyRate,
			&entry.CreatedAt,
		)
		if err != nil {
			log.Error("failed to scan study log row", slog.String("error", err.Error()))
			return nil, err
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return entries, nil
}
