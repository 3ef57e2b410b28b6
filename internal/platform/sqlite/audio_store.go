package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/vocaboost-api/internal/domain"
	"github.com/phrazzld/vocaboost-api/internal/platform/logger"
	"github.com/phrazzld/vocaboost-api/internal/store"
)

// AudioStore implements the store.AudioStore interface
// using a SQLite database as the storage backend.
type AudioStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewAudioStore creates a new SQLite implementation of the AudioStore interface.
// If logger is nil, a default logger will be used.
func NewAudioStore(db store.DBTX, logger *slog.Logger) *AudioStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &AudioStore{
		db:     db,
		logger: logger.With(slog.String("component", "audio_store")),
	}
}

// Ensure AudioStore implements store.AudioStore interface
var _ store.AudioStore = (*AudioStore)(nil)

// Put implements store.AudioStore.Put
func (s *AudioStore) Put(ctx context.Context, clip *domain.AudioClip) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if clip.Key == "" {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, domain.ErrEmptyAudioKey)
	}
	if len(clip.Data) == 0 {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, domain.ErrEmptyAudioData)
	}

	query := `
		INSERT INTO audio_clips (key, data, is_synced)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, is_synced = excluded.is_synced
	`
	if _, err := s.db.ExecContext(ctx, query, clip.Key, clip.Data, clip.IsSynced); err != nil {
		log.Error("failed to put audio clip",
			slog.String("error", err.Error()),
			slog.String("key", clip.Key))
		return err
	}

	log.Debug("audio clip stored",
		slog.String("key", clip.Key),
		slog.Int("bytes", len(clip.Data)))
	return nil
}

// GetByKey implements store.AudioStore.GetByKey
// Returns store.ErrAudioClipNotFound if the clip does not exist.
func (s *AudioStore) GetByKey(ctx context.Context, key string) (*domain.AudioClip, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var clip domain.AudioClip
	err := s.db.QueryRowContext(
		ctx,
		`SELECT key, data, is_synced FROM audio_clips WHERE key = ?`,
		key,
	).Scan(&clip.Key, &clip.Data, &clip.IsSynced)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("audio clip not found", slog.String("key", key))
			return nil, store.ErrAudioClipNotFound
		}
		log.Error("failed to get audio clip",
			slog.String("error", err.Error()),
			slog.String("key", key))
		return nil, err
	}

	return &clip, nil
}

// Delete implements store.AudioStore.Delete
// Returns store.ErrAudioClipNotFound if the clip does not exist.
func (s *AudioStore) Delete(ctx context.Context, key string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM audio_clips WHERE key = ?`, key)
	if err != nil {
		log.Error("failed to delete audio clip",
			slog.String("error", err.Error()),
			slog.String("key", key))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrAudioClipNotFound
	}

	log.Info("audio clip deleted", slog.String("key", key))
	return nil
}

// ListAll implements store.AudioStore.ListAll
func (s *AudioStore) ListAll(ctx context.Context) ([]*domain.AudioClip, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT key, data, is_synced FROM audio_clips ORDER BY key`,
	)
	if err != nil {
		log.Error("failed to query audio clips", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	clips := []*domain.AudioClip{}
	for rows.Next() {
		var clip domain.AudioClip
		if err := rows.Scan(&clip.Key, &clip.Data, &clip.IsSynced); err != nil {
			log.Error("failed to scan audio clip row", slog.String("error", err.Error()))
			return nil, err
		}
		clips = append(clips, &clip)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return clips, nil
}

// ReplaceAll implements store.AudioStore.ReplaceAll
func (s *AudioStore) ReplaceAll(ctx context.Context, clips []*domain.AudioClip) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.db.ExecContext(ctx, `DELETE FROM audio_clips`); err != nil {
		log.Error("failed to clear audio clips for replace", slog.String("error", err.Error()))
		return err
	}

	for _, clip := range clips {
		_, err := s.db.ExecContext(
			ctx,
			`INSERT INTO audio_clips (key, data, is_synced) VALUES (?, ?, ?)`,
			clip.Key, clip.Data, clip.IsSynced,
		)
		if err != nil {
			log.Error("failed to insert audio clip during replace",
				slog.String("error", err.Error()),
				slog.String("key", clip.Key))
			return err
		}
	}

	log.Info("audio clips replaced", slog.Int("count", len(clips)))
	return nil
}

// WithTx implements store.AudioStore.WithTx
func (s *AudioStore) WithTx(tx *sql.Tx) store.AudioStore {
	return &AudioStore{
		db:     tx,
		logger: s.logger,
	}
}
