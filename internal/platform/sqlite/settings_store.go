package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/vocaboost-api/internal/platform/logger"
	"github.com/phrazzld/vocaboost-api/internal/store"
)

// SettingsStore implements the store.SettingsStore interface
// using a SQLite database as the storage backend.
type SettingsStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewSettingsStore creates a new SQLite implementation of the SettingsStore interface.
// If logger is nil, a default logger will be used.
func NewSettingsStore(db store.DBTX, logger *slog.Logger) *SettingsStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &SettingsStore{
		db:     db,
		logger: logger.With(slog.String("component", "settings_store")),
	}
}

// Ensure SettingsStore implements store.SettingsStore interface
var _ store.SettingsStore = (*SettingsStore)(nil)

// Get implements store.SettingsStore.Get
// Returns store.ErrSettingNotFound if the key has never been set.
func (s *SettingsStore) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).
		Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", store.ErrSettingNotFound
		}
		log.Error("failed to get setting",
			slog.String("error", err.Error()),
			slog.String("key", key))
		return "", err
	}

	return value, nil
}

// Set implements store.SettingsStore.Set
func (s *SettingsStore) Set(ctx context.Context, key, value string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO settings (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		log.Error("failed to set setting",
			slog.String("error", err.Error()),
			slog.String("key", key))
		return err
	}

	log.Debug("setting stored", slog.String("key", key))
	return nil
}

// GetAll implements store.SettingsStore.GetAll
func (s *SettingsStore) GetAll(ctx context.Context) (map[string]string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		log.Error("failed to query settings", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	values := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			log.Error("failed to scan setting row", slog.String("error", err.Error()))
			return nil, err
		}
		values[key] = value
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return values, nil
}

// ReplaceAll implements store.SettingsStore.ReplaceAll
func (s *SettingsStore) ReplaceAll(ctx context.Context, values map[string]string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.db.ExecContext(ctx, `DELETE FROM settings`); err != nil {
		log.Error("failed to clear settings for replace", slog.String("error", err.Error()))
		return err
	}

	for key, value := range values {
		_, err := s.db.ExecContext(
			ctx,
			`INSERT INTO settings (key, value) VALUES (?, ?)`,
			key, value,
		)
		if err != nil {
			log.Error("failed to insert setting during replace",
				slog.String("error", err.Error()),
				slog.String("key", key))
			return err
		}
	}

	log.Info("settings replaced", slog.Int("count", len(values)))
	return nil
}

// WithTx implements store.SettingsStore.WithTx
func (s *SettingsStore) WithTx(tx *sql.Tx) store.SettingsStore {
	return &SettingsStore{
		db:     tx,
		logger: s.logger,
	}
}
