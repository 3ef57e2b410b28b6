package domain

import (
	"strings"
	"time"
)

// Status represents the learning state of a vocabulary item.
type Status string

// Possible vocabulary status values
const (
	StatusNew      Status = "new"
	StatusLearning Status = "learning"
	StatusMastered Status = "mastered"
)

// Bounds and defaults for the spaced repetition fields. The ease factor
// controls how fast intervals grow; it is clamped to this range by the
// scheduler and enforced here on stored entities.
const (
	MinEaseFactor     = 1.3
	MaxEaseFactor     = 2.5
	DefaultEaseFactor = 2.5

	// MasteredInterval is the interval, in days, at which a vocabulary
	// item is considered mastered.
	MasteredInterval = 30
)

// Vocabulary is a single memorized unit: a word, its description, and the
// spaced repetition state that decides when it is due again.
//
// Identity is two-tier: ID is a store-local surrogate assigned on first
// persist (0 means unassigned) and has no meaning outside that store, while
// Word is the natural key that is stable across independently grown stores
// and is what sync reconciliation keys on.
type Vocabulary struct {
	ID            int64      `json:"id,omitempty"`
	Word          string     `json:"word"`
	Description   string     `json:"description"`
	Pronunciation string     `json:"pronunciation,omitempty"`
	Status        Status     `json:"status"`
	NextReview    time.Time  `json:"next_review"`   // Due date, normalized to start of day
	ReviewedAt    *time.Time `json:"reviewed_at"`   // Last review time, nil if never reviewed
	Interval      int        `json:"interval"`      // Current interval in days
	EaseFactor    float64    `json:"ease_factor"`   // Difficulty multiplier (1.3-2.5)
	KnowCount     int        `json:"know_count"`    // Times answered "know"
	VagueCount    int        `json:"vague_count"`   // Times answered "vague"
	ForgetCount   int        `json:"forget_count"`  // Times answered "forget"
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	IsSynced      bool       `json:"is_synced"`
}

// NewVocabulary creates a new vocabulary item in its initial new-word state.
// The item is immediately due so that it shows up in today's study queue.
func NewVocabulary(word, description string) (*Vocabulary, error) {
	now := time.Now().UTC()

	v := &Vocabulary{
		Word:        strings.TrimSpace(word),
		Description: strings.TrimSpace(description),
		Status:      StatusNew,
		NextReview:  StartOfDay(now),
		Interval:    0,
		EaseFactor:  DefaultEaseFactor,
		CreatedAt:   now,
		UpdatedAt:   now,
		IsSynced:    false,
	}

	if err := v.Validate(); err != nil {
		return nil, err
	}

	return v, nil
}

// Validate checks if the Vocabulary has valid data.
// Returns an error if any field fails validation.
func (v *Vocabulary) Validate() error {
	if v.Word == "" {
		return ErrEmptyWord
	}

	if v.Description == "" {
		return ErrEmptyDescription
	}

	switch v.Status {
	case StatusNew, StatusLearning, StatusMastered:
	default:
		return ErrInvalidStatus
	}

	if v.Interval < 0 {
		return ErrInvalidInterval
	}

	if v.EaseFactor < MinEaseFactor || v.EaseFactor > MaxEaseFactor {
		return ErrInvalidEaseFactor
	}

	if v.KnowCount < 0 || v.VagueCount < 0 || v.ForgetCount < 0 {
		return ErrNegativeCount
	}

	return nil
}

// Clone returns a deep copy of the vocabulary item. The scheduler and the
// sync merger work on copies so that callers' snapshots are never mutated.
func (v *Vocabulary) Clone() *Vocabulary {
	clone := *v
	if v.ReviewedAt != nil {
		t := *v.ReviewedAt
		clone.ReviewedAt = &t
	}
	return &clone
}

// ReviewedTime returns the last review time, or the zero time if the item
// has never been reviewed. Sync conflict resolution compares these directly:
// a never-reviewed item always loses to a reviewed one.
func (v *Vocabulary) ReviewedTime() time.Time {
	if v.ReviewedAt == nil {
		return time.Time{}
	}
	return *v.ReviewedAt
}

// StartOfDay truncates t to midnight in its own location. Due dates are
// stored this way so all items due the same day compare equal regardless
// of the time of day they were reviewed.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's day, used as the
// inclusive upper bound for day-range queries.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
