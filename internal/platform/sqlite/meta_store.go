package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/vocaboost-api/internal/platform/logger"
	"github.com/phrazzld/vocaboost-api/internal/store"
)

const metaKeyDeviceID = "device_id"

// MetaStore implements the store.MetaStore interface
// using a SQLite database as the storage backend.
type MetaStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewMetaStore creates a new SQLite implementation of the MetaStore interface.
// If logger is nil, a default logger will be used.
func NewMetaStore(db store.DBTX, logger *slog.Logger) *MetaStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &MetaStore{
		db:     db,
		logger: logger.With(slog.String("component", "meta_store")),
	}
}

// Ensure MetaStore implements store.MetaStore interface
var _ store.MetaStore = (*MetaStore)(nil)

// DeviceID implements store.MetaStore.DeviceID
// The identifier is generated once per database file and reused forever
// after; it lives in the meta table, which never participates in sync.
func (s *MetaStore) DeviceID(ctx context.Context) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var id string
	err := s.db.QueryRowContext(
		ctx,
		`SELECT value FROM meta WHERE key = ?`,
		metaKeyDeviceID,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Error("failed to read device id", slog.String("error", err.Error()))
		return "", err
	}

	id = uuid.New().String()
	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO meta (key, value) VALUES (?, ?)`,
		metaKeyDeviceID, id,
	)
	if err != nil {
		log.Error("failed to persist device id", slog.String("error", err.Error()))
		return "", err
	}

	log.Info("device id generated", slog.String("device_id", id))
	return id, nil
}
