package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/vocaboost-api/internal/config"
	"github.com/phrazzld/vocaboost-api/internal/domain/srs"
	"github.com/phrazzld/vocaboost-api/internal/platform/sqlite"
	"github.com/phrazzld/vocaboost-api/internal/service"
)

// application holds the shared dependencies of the server: configuration,
// logging, the database handle, and the service layer. Handlers receive
// services from here, never raw stores.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	vocabularyService service.VocabularyService
	reviewService     service.ReviewService
	syncService       service.SyncService
	audioService      service.AudioService
	settingsService   service.SettingsService
}

// newApplication opens the database, runs migrations, and wires stores and
// services together.
func newApplication(cfg *config.Config, appLogger *slog.Logger) (*application, error) {
	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	vocabStore := sqlite.NewVocabularyStore(db, appLogger)
	reviewLogStore := sqlite.NewReviewLogStore(db, appLogger)
	studyLogStore := sqlite.NewStudyLogStore(db, appLogger)
	audioStore := sqlite.NewAudioStore(db, appLogger)
	settingsStore := sqlite.NewSettingsStore(db, appLogger)
	metaStore := sqlite.NewMetaStore(db, appLogger)

	srsService := srs.NewServiceWithParams(srs.NewParams(srs.ParamsConfig{
		MinEaseFactor:      cfg.Scheduler.MinEaseFactor,
		MaxEaseFactor:      cfg.Scheduler.MaxEaseFactor,
		KnowEaseBonus:      cfg.Scheduler.KnowEaseBonus,
		VagueEasePenalty:   cfg.Scheduler.VagueEasePenalty,
		ForgetEasePenalty:  cfg.Scheduler.ForgetEasePenalty,
		FirstKnowInterval:  cfg.Scheduler.FirstKnowInterval,
		SecondKnowInterval: cfg.Scheduler.SecondKnowInterval,
		MasteredInterval:   cfg.Scheduler.MasteredInterval,
	}))

	return &application{
		config: cfg,
		logger: appLogger,
		db:     db,
		vocabularyService: service.NewVocabularyService(
			db, vocabStore, srsService, appLogger),
		reviewService: service.NewReviewService(
			db, vocabStore, reviewLogStore, studyLogStore, srsService, appLogger),
		syncService: service.NewSyncService(
			db, vocabStore, reviewLogStore, studyLogStore, audioStore, settingsStore, metaStore, appLogger),
		audioService: service.NewAudioService(
			audioStore,
			cfg.Audio.UpstreamURL,
			time.Duration(cfg.Audio.FetchTimeoutSeconds)*time.Second,
			appLogger),
		settingsService: service.NewSettingsService(settingsStore, appLogger),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database", "error", err)
		}
	}
}
