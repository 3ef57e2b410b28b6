package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/vocaboost-api/internal/api/shared"
	"github.com/phrazzld/vocaboost-api/internal/platform/logger"
	"github.com/phrazzld/vocaboost-api/internal/redact"
	"github.com/phrazzld/vocaboost-api/internal/service"
	"github.com/phrazzld/vocaboost-api/internal/sync"
)

// SyncHandler handles snapshot export and merge requests.
type SyncHandler struct {
	syncService service.SyncService
	logger      *slog.Logger
}

// NewSyncHandler creates a new SyncHandler
func NewSyncHandler(syncService service.SyncService, logger *slog.Logger) *SyncHandler {
	if logger == nil {
		panic("logger cannot be nil for SyncHandler")
	}

	return &SyncHandler{
		syncService: syncService,
		logger:      logger.With(slog.String("component", "sync_handler")),
	}
}

// Snapshot handles GET /api/sync requests. It exports the full state of this
// store so another device can merge it.
func (h *SyncHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.syncService.Snapshot(r.Context())
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to export snapshot"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, snapshot)
}

// Merge handles POST /api/sync requests. The body carries a snapshot exported
// by another device; the response is the merged authoritative state.
func (h *SyncHandler) Merge(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var remote sync.Snapshot
	if err := shared.DecodeJSON(r, &remote); err != nil {
		log.Warn("invalid snapshot payload", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	merged, err := h.syncService.Merge(r.Context(), &remote)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to merge snapshot"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Info("sync merge completed",
		slog.String("remote_device_id", remote.DeviceID),
		slog.Int("vocabularies", len(merged.Vocabularies)))
	shared.RespondWithJSON(w, r, http.StatusOK, merged)
}
