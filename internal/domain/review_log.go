package domain

import "time"

// ReviewOutcome represents the result of reviewing a vocabulary item.
type ReviewOutcome string

// Possible review outcome values
const (
	// ReviewOutcomeKnow means the word was recalled firmly.
	ReviewOutcomeKnow ReviewOutcome = "know"

	// ReviewOutcomeVague means the word was only fuzzily recalled. The
	// schedule does not advance; the item stays due until a firm outcome.
	ReviewOutcomeVague ReviewOutcome = "vague"

	// ReviewOutcomeForget means the word was not recalled at all.
	ReviewOutcomeForget ReviewOutcome = "forget"
)

// Valid reports whether the outcome is one of the known values.
func (o ReviewOutcome) Valid() bool {
	switch o {
	case ReviewOutcomeKnow, ReviewOutcomeVague, ReviewOutcomeForget:
		return true
	default:
		return false
	}
}

// ReviewLog is an immutable snapshot of one scheduling transition. It is
// created once per review, never mutated, and never deleted by normal flow;
// the before/after fields record the algorithm's trajectory for analytics.
//
// Word is denormalized from the vocabulary item so per-word statistics can
// be queried without a join.
type ReviewLog struct {
	ID            int64         `json:"id,omitempty"`
	Word          string        `json:"word"`
	ReviewStatus  ReviewOutcome `json:"review_status"`
	CreatedAt     time.Time     `json:"created_at"`
	OldInterval   int           `json:"old_interval"`
	NewInterval   int           `json:"new_interval"`
	OldEaseFactor float64       `json:"old_ease_factor"`
	NewEaseFactor float64       `json:"new_ease_factor"`
	OldNextReview time.Time     `json:"old_next_review"`
	NewNextReview time.Time     `json:"new_next_review"`
}

// NewReviewLog captures the transition from old to new vocabulary state.
// For outcomes that leave a field unchanged, old and new are equal.
func NewReviewLog(old, updated *Vocabulary, outcome ReviewOutcome, now time.Time) (*ReviewLog, error) {
	if old.Word == "" {
		return nil, ErrEmptyWord
	}

	if !outcome.Valid() {
		return nil, ErrInvalidReviewOutcome
	}

	return &ReviewLog{
		Word:          old.Word,
		ReviewStatus:  outcome,
		CreatedAt:     now,
		OldInterval:   old.Interval,
		NewInterval:   updated.Interval,
		OldEaseFactor: old.EaseFactor,
		NewEaseFactor: updated.EaseFactor,
		OldNextReview: old.NextReview,
		NewNextReview: updated.NextReview,
	}, nil
}

// Clone returns a copy of the review log entry.
func (l *ReviewLog) Clone() *ReviewLog {
	clone := *l
	return &clone
}
