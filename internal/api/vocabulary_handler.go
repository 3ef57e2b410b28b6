package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/vocaboost-api/internal/api/shared"
	"github.com/phrazzld/vocaboost-api/internal/domain"
	"github.com/phrazzld/vocaboost-api/internal/platform/logger"
	"github.com/phrazzld/vocaboost-api/internal/redact"
	"github.com/phrazzld/vocaboost-api/internal/service"
)

// VocabularyResponse represents the response data for one vocabulary item.
type VocabularyResponse struct {
	ID            int64      `json:"id"`
	Word          string     `json:"word"`
	Description   string     `json:"description"`
	Pronunciation string     `json:"pronunciation,omitempty"`
	Status        string     `json:"status"`
	NextReview    time.Time  `json:"next_review"`
	ReviewedAt    *time.Time `json:"reviewed_at,omitempty"`
	Interval      int        `json:"interval"`
	EaseFactor    float64    `json:"ease_factor"`
	KnowCount     int        `json:"know_count"`
	VagueCount    int        `json:"vague_count"`
	ForgetCount   int        `json:"forget_count"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// VocabularyHandler handles vocabulary-related HTTP requests
type VocabularyHandler struct {
	vocabularyService service.VocabularyService
	logger            *slog.Logger
}

// NewVocabularyHandler creates a new VocabularyHandler
func NewVocabularyHandler(
	vocabularyService service.VocabularyService,
	logger *slog.Logger,
) *VocabularyHandler {
	if logger == nil {
		panic("logger cannot be nil for VocabularyHandler")
	}

	return &VocabularyHandler{
		vocabularyService: vocabularyService,
		logger:            logger.With(slog.String("component", "vocabulary_handler")),
	}
}

// CreateVocabularyRequest represents the request body for adding a word.
type CreateVocabularyRequest struct {
	Word          string `json:"word"          validate:"required,min=1,max=120"`
	Description   string `json:"description"   validate:"required,min=1"`
	Pronunciation string `json:"pronunciation" validate:"omitempty,max=240"`
}

// Create handles POST /api/vocabulary requests.
func (h *VocabularyHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateVocabularyRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	item, err := h.vocabularyService.Create(r.Context(), req.Word, req.Description, req.Pronunciation)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, vocabularyToResponse(item))
}

// List handles GET /api/vocabulary requests.
func (h *VocabularyHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.vocabularyService.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, vocabulariesToResponse(items))
}

// Get handles GET /api/vocabulary/{word} requests.
func (h *VocabularyHandler) Get(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")
	if word == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Word is required")
		return
	}

	item, err := h.vocabularyService.Get(r.Context(), word)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, vocabularyToResponse(item))
}

// UpdateVocabularyRequest represents the request body for editing a word.
type UpdateVocabularyRequest struct {
	Description   string `json:"description"   validate:"required,min=1"`
	Pronunciation string `json:"pronunciation" validate:"omitempty,max=240"`
}

// Update handles PUT /api/vocabulary/{word} requests.
func (h *VocabularyHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	word := chi.URLParam(r, "word")
	if word == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Word is required")
		return
	}

	var req UpdateVocabularyRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	item, err := h.vocabularyService.UpdateDescription(r.Context(), word, req.Description, req.Pronunciation)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, vocabularyToResponse(item))
}

// Delete handles DELETE /api/vocabulary/{word} requests.
func (h *VocabularyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")
	if word == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Word is required")
		return
	}

	if err := h.vocabularyService.Delete(r.Context(), word); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Reset handles POST /api/vocabulary/{word}/reset requests.
// It returns the word to its initial scheduling state.
func (h *VocabularyHandler) Reset(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")
	if word == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Word is required")
		return
	}

	item, err := h.vocabularyService.Reset(r.Context(), word)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, vocabularyToResponse(item))
}

// ListDue handles GET /api/vocabulary/due requests.
func (h *VocabularyHandler) ListDue(w http.ResponseWriter, r *http.Request) {
	items, err := h.vocabularyService.ListDue(r.Context(), time.Now().UTC())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, vocabulariesToResponse(items))
}

// ListAddedToday handles GET /api/vocabulary/today requests.
func (h *VocabularyHandler) ListAddedToday(w http.ResponseWriter, r *http.Request) {
	items, err := h.vocabularyService.ListAddedToday(r.Context(), time.Now().UTC())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, vocabulariesToResponse(items))
}

// vocabularyToResponse converts a domain.Vocabulary to a VocabularyResponse
func vocabularyToResponse(item *domain.Vocabulary) VocabularyResponse {
	return VocabularyResponse{
		ID:            item.ID,
		Word:          item.Word,
		Description:   item.Description,
		Pronunciation: item.Pronunciation,
		Status:        string(item.Status),
		NextReview:    item.NextReview,
		ReviewedAt:    item.ReviewedAt,
		Interval:      item.Interval,
		EaseFactor:    item.EaseFactor,
		KnowCount:     item.KnowCount,
		VagueCount:    item.VagueCount,
		ForgetCount:   item.ForgetCount,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}

func vocabulariesToResponse(items []*domain.Vocabulary) []VocabularyResponse {
	responses := make([]VocabularyResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, vocabularyToResponse(item))
	}
	return responses
}
