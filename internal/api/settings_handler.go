package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/vocaboost-api/internal/api/shared"
	"github.com/phrazzld/vocaboost-api/internal/domain"
	"github.com/phrazzld/vocaboost-api/internal/platform/logger"
	"github.com/phrazzld/vocaboost-api/internal/redact"
	"github.com/phrazzld/vocaboost-api/internal/service"
)

// SettingsHandler handles preference reads and updates.
type SettingsHandler struct {
	settingsService service.SettingsService
	logger          *slog.Logger
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService service.SettingsService, logger *slog.Logger) *SettingsHandler {
	if logger == nil {
		panic("logger cannot be nil for SettingsHandler")
	}

	return &SettingsHandler{
		settingsService: settingsService,
		logger:          logger.With(slog.String("component", "settings_handler")),
	}
}

// UpdateSettingsRequest represents the request body for updating preferences.
type UpdateSettingsRequest struct {
	DailyReviewTarget int    `json:"daily_review_target" validate:"required,gte=1"`
	ReminderTime      string `json:"reminder_time"       validate:"omitempty,max=16"`
	AutoCleanup       bool   `json:"auto_cleanup"`
}

// Get handles GET /api/settings requests.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Get(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, settings)
}

// Update handles PUT /api/settings requests.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req UpdateSettingsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	settings := domain.Settings{
		DailyReviewTarget: req.DailyReviewTarget,
		ReminderTime:      req.ReminderTime,
		AutoCleanup:       req.AutoCleanup,
	}
	if settings.ReminderTime == "" {
		settings.ReminderTime = domain.DefaultSettings().ReminderTime
	}

	if err := h.settingsService.Update(r.Context(), settings); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, settings)
}
