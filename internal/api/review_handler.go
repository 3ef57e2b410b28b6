package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/vocaboost-api/internal/api/shared"
	"github.com/phrazzld/vocaboost-api/internal/domain"
	"github.com/phrazzld/vocaboost-api/internal/platform/logger"
	"github.com/phrazzld/vocaboost-api/internal/redact"
	"github.com/phrazzld/vocaboost-api/internal/service"
)

// ReviewHandler handles review-related HTTP requests
type ReviewHandler struct {
	reviewService service.ReviewService
	logger        *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewService service.ReviewService, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		panic("logger cannot be nil for ReviewHandler")
	}

	return &ReviewHandler{
		reviewService: reviewService,
		logger:        logger.With(slog.String("component", "review_handler")),
	}
}

// SubmitReviewRequest represents the request body for submitting a review.
type SubmitReviewRequest struct {
	Outcome string `json:"outcome" validate:"required,oneof=know vague forget"`
}

// ReviewLogResponse represents one review log entry.
type ReviewLogResponse struct {
	ID            int64     `json:"id"`
	Word          string    `json:"word"`
	ReviewStatus  string    `json:"review_status"`
	CreatedAt     time.Time `json:"created_at"`
	OldInterval   int       `json:"old_interval"`
	NewInterval   int       `json:"new_interval"`
	OldEaseFactor float64   `json:"old_ease_factor"`
	NewEaseFactor float64   `json:"new_ease_factor"`
	OldNextReview time.Time `json:"old_next_review"`
	NewNextReview time.Time `json:"new_next_review"`
}

// SubmitReviewResponse bundles the rescheduled item with its log entry.
type SubmitReviewResponse struct {
	Item VocabularyResponse `json:"item"`
	Log  ReviewLogResponse  `json:"log"`
}

// SubmitReview handles POST /api/vocabulary/{word}/review requests.
// It applies one review outcome and returns the rescheduled item.
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	word := chi.URLParam(r, "word")
	if word == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Word is required")
		return
	}

	var req SubmitReviewRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format",
			slog.String("error", redact.Error(err)),
			slog.String("word", word))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	result, err := h.reviewService.SubmitReview(r.Context(), word, domain.ReviewOutcome(req.Outcome))
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to submit review"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("review submitted",
		slog.String("word", result.Item.Word),
		slog.String("outcome", req.Outcome))
	shared.RespondWithJSON(w, r, http.StatusOK, SubmitReviewResponse{
		Item: vocabularyToResponse(result.Item),
		Log:  reviewLogToResponse(result.Log),
	})
}

// History handles GET /api/vocabulary/{word}/history requests.
func (h *ReviewHandler) History(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")
	if word == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Word is required")
		return
	}

	entries, err := h.reviewService.History(r.Context(), word)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	responses := make([]ReviewLogResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, reviewLogToResponse(entry))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// RecordSessionRequest represents the request body for a finished study session.
type RecordSessionRequest struct {
	KnowCount   int `json:"know_count"   validate:"gte=0"`
	VagueCount  int `json:"vague_count"  validate:"gte=0"`
	ForgetCount int `json:"forget_count" validate:"gte=0"`
}

// StudyLogResponse represents one study session entry.
type StudyLogResponse struct {
	ID           int64     `json:"id"`
	KnowCount    int       `json:"know_count"`
	VagueCount   int       `json:"vague_count"`
	ForgetCount  int       `json:"forget_count"`
	AccuracyRate float64   `json:"accuracy_rate"`
	CreatedAt    time.Time `json:"created_at"`
}

// RecordSession handles POST /api/sessions requests.
func (h *ReviewHandler) RecordSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req RecordSessionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	entry, err := h.reviewService.RecordStudySession(
		r.Context(), req.KnowCount, req.VagueCount, req.ForgetCount)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, studyLogToResponse(entry))
}

// Stats handles GET /api/reviews/stats requests. The optional "days" query
// parameter bounds the window; the default covers the last 7 days.
func (h *ReviewHandler) Stats(w http.ResponseWriter, r *http.Request) {
	days := 7
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid days parameter")
			return
		}
		days = parsed
	}

	since := time.Now().UTC().AddDate(0, 0, -days)
	stats, err := h.reviewService.Stats(r.Context(), since)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}

func reviewLogToResponse(entry *domain.ReviewLog) ReviewLogResponse {
	return ReviewLogResponse{
		ID:            entry.ID,
		Word:          entry.Word,
		ReviewStatus:  string(entry.ReviewStatus),
		CreatedAt:     entry.CreatedAt,
		OldInterval:   entry.OldInterval,
		NewInterval:   entry.NewInterval,
		OldEaseFactor: entry.OldEaseFactor,
		NewEaseFactor: entry.NewEaseFactor,
		OldNextReview: entry.OldNextReview,
		NewNextReview: entry.NewNextReview,
	}
}

func studyLogToResponse(entry *domain.StudyLog) StudyLogResponse {
	return StudyLogResponse{
		ID:           entry.ID,
		KnowCount:    entry.KnowCount,
		VagueCount:   entry.VagueCount,
		ForgetCount:  entry.ForgetCount,
		AccuracyRate: entry.AccuracyRate,
		CreatedAt:    entry.CreatedAt,
	}
}
