package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/vocaboost-api/internal/api/shared"
	"github.com/phrazzld/vocaboost-api/internal/domain"
	"github.com/phrazzld/vocaboost-api/internal/service"
)

// AudioHandler serves pronunciation audio for vocabulary words.
type AudioHandler struct {
	audioService service.AudioService
	logger       *slog.Logger
}

// NewAudioHandler creates a new AudioHandler
func NewAudioHandler(audioService service.AudioService, logger *slog.Logger) *AudioHandler {
	if logger == nil {
		panic("logger cannot be nil for AudioHandler")
	}

	return &AudioHandler{
		audioService: audioService,
		logger:       logger.With(slog.String("component", "audio_handler")),
	}
}

// Get handles GET /api/audio requests. The word comes from the "word" query
// parameter; "accent" is optional and defaults to UK. The response body is
// the raw audio stream, so clients can point an <audio> element straight at
// this endpoint.
func (h *AudioHandler) Get(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")
	if word == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Word is required")
		return
	}

	accent := domain.Accent(r.URL.Query().Get("accent"))
	if accent == "" {
		accent = domain.AccentUK
	}

	clip, err := h.audioService.Get(r.Context(), word, accent)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	// Clips are immutable once cached, so clients may cache them for a year.
	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(clip.Data); err != nil {
		h.logger.Error("failed to write audio response",
			slog.String("error", err.Error()),
			slog.String("key", clip.Key))
	}
}
