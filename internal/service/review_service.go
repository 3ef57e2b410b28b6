package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/vocaboost-api/internal/domain"
	"github.com/phrazzld/vocaboost-api/internal/domain/srs"
	"github.com/phrazzld/vocaboost-api/internal/platform/logger"
	"github.com/phrazzld/vocaboost-api/internal/store"
)

// ReviewResult is the outcome of submitting one review: the rescheduled item
// and the log entry recording the transition.
type ReviewResult struct {
	Item *domain.Vocabulary `json:"item"`
	Log  *domain.ReviewLog  `json:"log"`
}

// ReviewService processes review answers and records study sessions.
type ReviewService interface {
	// SubmitReview applies one review outcome to a word: the scheduling
	// state advances and a review log entry is appended, atomically.
	// Returns ErrVocabularyNotFound if the word is not in the collection.
	// Returns ErrInvalidOutcome for an unrecognized outcome.
	SubmitReview(ctx context.Context, word string, outcome domain.ReviewOutcome) (*ReviewResult, error)

	// RecordStudySession stores the aggregate result of a finished session.
	RecordStudySession(ctx context.Context, knowCount, vagueCount, forgetCount int) (*domain.StudyLog, error)

	// History retrieves the review history of one word, newest first.
	History(ctx context.Context, word string) ([]*domain.ReviewLog, error)

	// Stats summarizes review activity since the given moment.
	Stats(ctx context.Context, since time.Time) (*ReviewStats, error)
}

// ReviewStats is an aggregate of review activity over a period.
type ReviewStats struct {
	TotalReviews int `json:"total_reviews"`
	KnowCount    int `json:"know_count"`
	VagueCount   int `json:"vague_count"`
	ForgetCount  int `json:"forget_count"`
}

// Verify interface compliance at compile time
var _ ReviewService = (*reviewServiceImpl)(nil)

type reviewServiceImpl struct {
	db         *sql.DB
	vocabStore store.VocabularyStore
	reviewLogs store.ReviewLogStore
	studyLogs  store.StudyLogStore
	srsService srs.Service
	logger     *slog.Logger
	now        func() time.Time
}

// NewReviewService creates a new ReviewService implementation.
func NewReviewService(
	db *sql.DB,
	vocabStore store.VocabularyStore,
	reviewLogs store.ReviewLogStore,
	studyLogs store.StudyLogStore,
	srsService srs.Service,
	logger *slog.Logger,
) ReviewService {
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
	if srsService == nil {
		panic("srsService cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &reviewServiceImpl{
		db:         db,
		vocabStore: vocabStore,
		reviewLogs: reviewLogs,
		studyLogs:  studyLogs,
		srsService: srsService,
		logger:     logger.With(slog.String("component", "review_service")),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// SubmitReview implements ReviewService.SubmitReview.
// The item update and the log append happen in one transaction so the
// history can never disagree with the scheduling state.
func (s *reviewServiceImpl) SubmitReview(
	ctx context.Context,
	word string,
	outcome domain.ReviewOutcome,
) (*ReviewResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !outcome.Valid() {
		log.Warn("invalid review outcome",
			slog.String("word", word),
			slog.String("outcome", string(outcome)))
		return nil, fmt.Errorf("%w: %q", ErrInvalidOutcome, outcome)
	}

	var result *ReviewResult
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txVocab := s.vocabStore.WithTx(tx)
		txLogs := s.reviewLogs.WithTx(tx)

		item, err := txVocab.GetByWord(ctx, strings.TrimSpace(word))
		if err != nil {
			if store.IsNotFoundError(err) {
				return fmt.Errorf("%w: %s", ErrVocabularyNotFound, word)
			}
			return err
		}

		updated, entry, err := s.srsService.Review(item, outcome, s.now())
		if err != nil {
			return err
		}

		if err := txVocab.Update(ctx, updated); err != nil {
			return err
		}

		if err := txLogs.Create(ctx, entry); err != nil {
			return err
		}

		result = &ReviewResult{Item: updated, Log: entry}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrVocabularyNotFound) {
			return nil, err
		}
		log.Error("failed to submit review",
			slog.String("error", err.Error()),
			slog.String("word", word),
			slog.String("outcome", string(outcome)))
		return nil, NewServiceError("submit_review", "failed to process review", err)
	}

	log.Info("review submitted",
		slog.String("word", result.Item.Word),
		slog.String("outcome", string(outcome)),
		slog.String("status", string(result.Item.Status)),
		slog.Int("interval", result.Item.Interval))
	return result, nil
}

// RecordStudySession implements ReviewService.RecordStudySession.
func (s *reviewServiceImpl) RecordStudySession(
	ctx context.Context,
	knowCount, vagueCount, forgetCount int,
) (*domain.StudyLog, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	entry, err := domain.NewStudyLog(knowCount, vagueCount, forgetCount, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.studyLogs.Create(ctx, entry); err != nil {
		log.Error("failed to record study session", slog.String("error", err.Error()))
		return nil, NewServiceError("record_study_session", "failed to persist session", err)
	}

	log.Info("study session recorded",
		slog.Int("total", entry.Total()),
		slog.Float64("accuracy", entry.AccuracyRate))
	return entry, nil
}

// History implements ReviewService.History.
func (s *reviewServiceImpl) History(ctx context.Context, word string) ([]*domain.ReviewLog, error) {
	entries, err := s.reviewLogs.ListByWord(ctx, strings.TrimSpace(word))
	if err != nil {
		return nil, NewServiceError("review_history", "failed to list history", err)
	}
	return entries, nil
}

// Stats implements ReviewService.Stats.
func (s *reviewServiceImpl) Stats(ctx context.Context, since time.Time) (*ReviewStats, error) {
	stats := &ReviewStats{}

	outcomes := []struct {
		outcome domain.ReviewOutcome
		dest    *int
	}{
		{domain.ReviewOutcomeKnow, &stats.KnowCount},
		{domain.ReviewOutcomeVague, &stats.VagueCount},
		{domain.ReviewOutcomeForget, &stats.ForgetCount},
	}

	for _, o := range outcomes {
		count, err := s.reviewLogs.CountByOutcome(ctx, o.outcome, since)
		if err != nil {
			return nil, NewServiceError("review_stats", "failed to count reviews", err)
		}
		*o.dest = count
	}

	stats.TotalReviews = stats.KnowCount + stats.VagueCount + stats.ForgetCount
	return stats, nil
}
