package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/vocaboost-api/internal/domain"
	"github.com/phrazzld/vocaboost-api/internal/platform/logger"
	"github.com/phrazzld/vocaboost-api/internal/store"
)

// SettingsService reads and updates user preferences.
type SettingsService interface {
	// Get returns the current preferences, with defaults filled in for
	// anything never set.
	Get(ctx context.Context) (domain.Settings, error)

	// Update persists the given preferences.
	Update(ctx context.Context, settings domain.Settings) error
}

// Verify interface compliance at compile time
var _ SettingsService = (*settingsServiceImpl)(nil)

type settingsServiceImpl struct {
	settings store.SettingsStore
	logger   *slog.Logger
}

// NewSettingsService creates a new SettingsService implementation.
func NewSettingsService(settings store.SettingsStore, logger *slog.Logger) SettingsService {
	if settings == nil {
		panic("settings cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &settingsServiceImpl{
		settings: settings,
		logger:   logger.With(slog.String("component", "settings_service")),
	}
}

// Get implements SettingsService.Get.
func (s *settingsServiceImpl) Get(ctx context.Context) (domain.Settings, error) {
	values, err := s.settings.GetAll(ctx)
	if err != nil {
		return domain.Settings{}, NewServiceError("get_settings", "failed to load settings", err)
	}
	return domain.SettingsFromValues(values), nil
}

// Update implements SettingsService.Update.
func (s *settingsServiceImpl) Update(ctx context.Context, settings domain.Settings) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if settings.DailyReviewTarget <= 0 {
		return fmt.Errorf("%w: daily review target must be positive", domain.ErrValidation)
	}

	for key, value := range settings.Values() {
		if err := s.settings.Set(ctx, key, value); err != nil {
			log.Error("failed to store setting",
				slog.String("error", err.Error()),
				slog.String("key", key))
			return NewServiceError("update_settings", "failed to persist settings", err)
		}
	}

	log.Info("settings updated",
		slog.Int("daily_review_target", settings.DailyReviewTarget))
	return nil
}
