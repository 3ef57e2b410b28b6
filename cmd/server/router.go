package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/vocaboost-api/internal/api"
	apiMiddleware "github.com/phrazzld/vocaboost-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	vocabularyHandler := api.NewVocabularyHandler(app.vocabularyService, app.logger)
	reviewHandler := api.NewReviewHandler(app.reviewService, app.logger)
	syncHandler := api.NewSyncHandler(app.syncService, app.logger)
	audioHandler := api.NewAudioHandler(app.audioService, app.logger)
	settingsHandler := api.NewSettingsHandler(app.settingsService, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Vocabulary collection
		r.Get("/vocabulary", vocabularyHandler.List)
		r.Post("/vocabulary", vocabularyHandler.Create)
		r.Get("/vocabulary/due", vocabularyHandler.ListDue)
		r.Get("/vocabulary/today", vocabularyHandler.ListAddedToday)
		r.Get("/vocabulary/{word}", vocabularyHandler.Get)
		r.Put("/vocabulary/{word}", vocabularyHandler.Update)
		r.Delete("/vocabulary/{word}", vocabularyHandler.Delete)
		r.Post("/vocabulary/{word}/reset", vocabularyHandler.Reset)

		// Reviews and study sessions
		r.Post("/vocabulary/{word}/review", reviewHandler.SubmitReview)
		r.Get("/vocabulary/{word}/history", reviewHandler.History)
		r.Post("/sessions", reviewHandler.RecordSession)
		r.Get("/reviews/stats", reviewHandler.Stats)

		// Device sync
		r.Get("/sync", syncHandler.Snapshot)
		r.Post("/sync", syncHandler.Merge)

		// Pronunciation audio
		r.Get("/audio", audioHandler.Get)

		// Preferences
		r.Get("/settings", settingsHandler.Get)
		r.Put("/settings", settingsHandler.Update)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
