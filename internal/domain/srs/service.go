package srs

import (
	"errors"
	"fmt"
	"time"

	"github.com/phrazzld/vocaboost-api/internal/domain"
)

// Common errors
var (
	ErrNilVocabulary  = errors.New("vocabulary cannot be nil")
	ErrInvalidOutcome = errors.New("invalid review outcome")
)

// Service defines the interface for scheduling operations.
//
// Implementations are pure: they never perform I/O, never mutate their
// inputs, and are safe to call from any goroutine. Persisting the returned
// item and review log is the caller's job.
type Service interface {
	// Review computes the item's next state for a review outcome and the
	// review log entry describing the transition.
	Review(
		item *domain.Vocabulary,
		outcome domain.ReviewOutcome,
		now time.Time,
	) (*domain.Vocabulary, *domain.ReviewLog, error)

	// Reset returns the item to its initial new-word state. No review log
	// is produced because a reset is not a review outcome.
	Reset(item *domain.Vocabulary, now time.Time) (*domain.Vocabulary, error)
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new scheduling service with default parameters
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new scheduling service with custom parameters
func NewServiceWithParams(params *Params) Service {
	return &defaultService{
		params: params,
	}
}

// Review implements the Service interface for computing review transitions
func (s *defaultService) Review(
	item *domain.Vocabulary,
	outcome domain.ReviewOutcome,
	now time.Time,
) (*domain.Vocabulary, *domain.ReviewLog, error) {
	// Validate inputs. Malformed items (negative interval, out-of-range
	// ease factor) are precondition violations, never silently clamped.
	if item == nil {
		return nil, nil, ErrNilVocabulary
	}

	if !outcome.Valid() {
		return nil, nil, ErrInvalidOutcome
	}

	if err := item.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	next := applyReview(item, outcome, now, s.params)

	log, err := domain.NewReviewLog(item, next, outcome, now)
	if err != nil {
		return nil, nil, err
	}

	return next, log, nil
}

// Reset implements the Service interface for relearn-from-scratch requests
func (s *defaultService) Reset(item *domain.Vocabulary, now time.Time) (*domain.Vocabulary, error) {
	if item == nil {
		return nil, ErrNilVocabulary
	}

	return applyReset(item, now), nil
}
