package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/vocaboost-api/internal/platform/logger"
	"github.com/phrazzld/vocaboost-api/internal/store"
	"github.com/phrazzld/vocaboost-api/internal/sync"
)

// SyncService exports and reconciles whole-store snapshots for offline-first
// multi-device sync.
type SyncService interface {
	// Snapshot exports the full current state of this store, stamped with
	// the device identity and export time.
	Snapshot(ctx context.Context) (*sync.Snapshot, error)

	// Merge reconciles a remote snapshot into this store and returns the
	// merged authoritative state. The whole merge persists in one
	// transaction: either every collection is updated or none is.
	Merge(ctx context.Context, remote *sync.Snapshot) (*sync.Snapshot, error)
}

// Verify interface compliance at compile time
var _ SyncService = (*syncServiceImpl)(nil)

type syncServiceImpl struct {
	db         *sql.DB
	vocabStore store.VocabularyStore
	reviewLogs store.ReviewLogStore
	studyLogs  store.StudyLogStore
	audioStore store.AudioStore
	settings   store.SettingsStore
	meta       store.MetaStore
	logger     *slog.Logger
	now        func() time.Time
}

// NewSyncService creates a new SyncService implementation.
func NewSyncService(
	db *sql.DB,
	vocabStore store.VocabularyStore,
	reviewLogs store.ReviewLogStore,
	studyLogs store.StudyLogStore,
	audioStore store.AudioStore,
	settings store.SettingsStore,
	meta store.MetaStore,
	logger *slog.Logger,
) SyncService {
	if db == nil {
		panic("db cannot be nil")
	}
	if vocabStore == nil {
		panic("vocabStore cannot be nil")
	}
	if reviewLogs == nil {
		panic("reviewLogs cannot be nil")
	}
	if studyLogs == nil {
		panic("studyLogs cannot be nil")
	}
	if audioStore == nil {
		panic("audioStore cannot be nil")
	}
	if settings == nil {
		panic("settings cannot be nil")
	}
	if meta == nil {
		panic("meta cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &syncServiceImpl{
		db:         db,
		vocabStore: vocabStore,
		reviewLogs: reviewLogs,
		studyLogs:  studyLogs,
		audioStore: audioStore,
		settings:   settings,
		meta:       meta,
		logger:     logger.With(slog.String("component", "sync_service")),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Snapshot implements SyncService.Snapshot.
func (s *syncServiceImpl) Snapshot(ctx context.Context) (*sync.Snapshot, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	snapshot, err := s.collect(ctx, s.vocabStore, s.reviewLogs, s.studyLogs, s.audioStore, s.settings)
	if err != nil {
		log.Error("failed to build snapshot", slog.String("error", err.Error()))
		return nil, NewServiceError("snapshot", "failed to export state", err)
	}

	deviceID, err := s.meta.DeviceID(ctx)
	if err != nil {
		return nil, NewServiceError("snapshot", "failed to resolve device identity", err)
	}
	snapshot.DeviceID = deviceID
	snapshot.ExportedAt = s.now()

	log.Info("snapshot exported",
		slog.String("device_id", deviceID),
		slog.Int("vocabularies", len(snapshot.Vocabularies)),
		slog.Int("review_logs", len(snapshot.ReviewLogs)))
	return snapshot, nil
}

// Merge implements SyncService.Merge.
func (s *syncServiceImpl) Merge(ctx context.Context, remote *sync.Snapshot) (*sync.Snapshot, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if remote == nil {
		return nil, fmt.Errorf("%w: snapshot is empty", ErrInvalidSnapshot)
	}
	for _, item := range remote.Vocabularies {
		if item == nil {
			return nil, fmt.Errorf("%w: snapshot carries an empty vocabulary entry", ErrInvalidSnapshot)
		}
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
		}
	}

	var merged *sync.Snapshot
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txVocab := s.vocabStore.WithTx(tx)
		txReviews := s.reviewLogs.WithTx(tx)
		txStudies := s.studyLogs.WithTx(tx)
		txAudio := s.audioStore.WithTx(tx)
		txSettings := s.settings.WithTx(tx)

		local, err := s.collect(ctx, txVocab, txReviews, txStudies, txAudio, txSettings)
		if err != nil {
			return err
		}

		merged = sync.MergeSnapshots(local, remote)

		if err := txVocab.ReplaceAll(ctx, merged.Vocabularies); err != nil {
			return err
		}
		if err := txReviews.ReplaceAll(ctx, merged.ReviewLogs); err != nil {
			return err
		}
		if err := txStudies.ReplaceAll(ctx, merged.StudyLogs); err != nil {
			return err
		}
		if err := txAudio.ReplaceAll(ctx, merged.AudioClips); err != nil {
			return err
		}
		return txSettings.ReplaceAll(ctx, merged.Settings)
	})
	if err != nil {
		log.Error("failed to merge snapshot",
			slog.String("error", err.Error()),
			slog.String("remote_device_id", remote.DeviceID))
		return nil, NewServiceError("merge_snapshot", "failed to reconcile state", err)
	}

	deviceID, err := s.meta.DeviceID(ctx)
	if err != nil {
		return nil, NewServiceError("merge_snapshot", "failed to resolve device identity", err)
	}
	merged.DeviceID = deviceID
	merged.ExportedAt = s.now()

	log.Info("snapshot merged",
		slog.String("remote_device_id", remote.DeviceID),
		slog.Int("vocabularies", len(merged.Vocabularies)),
		slog.Int("review_logs", len(merged.ReviewLogs)))
	return merged, nil
}

// collect reads every synced collection through the given stores, which may
// be transaction-bound.
func (s *syncServiceImpl) collect(
	ctx context.Context,
	vocabStore store.VocabularyStore,
	reviewLogs store.ReviewLogStore,
	studyLogs store.StudyLogStore,
	audioStore store.AudioStore,
	settings store.SettingsStore,
) (*sync.Snapshot, error) {
	vocabularies, err := vocabStore.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	reviews, err := reviewLogs.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	studies, err := studyLogs.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	clips, err := audioStore.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	values, err := settings.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return &sync.Snapshot{
		Vocabularies: vocabularies,
		ReviewLogs:   reviews,
		StudyLogs:    studies,
		AudioClips:   clips,
		Settings:     values,
	}, nil
}
