package domain

import (
	"testing"
	"time"
)

func TestReviewOutcomeValid(t *testing.T) {
	valid := []ReviewOutcome{ReviewOutcomeKnow, ReviewOutcomeVague, ReviewOutcomeForget}
	for _, o := range valid {
		if !o.Valid() {
			t.Errorf("Expected outcome %q to be valid", o)
		}
	}

	invalid := []ReviewOutcome{"", "again", "KNOW", "easy"}
	for _, o := range invalid {
		if o.Valid() {
			t.Errorf("Expected outcome %q to be invalid", o)
		}
	}
}

func TestNewReviewLog(t *testing.T) {
	now := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

	old, err := NewVocabulary("petrichor", "the smell of earth after rain")
	if err != nil {
		t.Fatalf("Failed to create vocabulary: %v", err)
	}
	old.Interval = 6
	old.EaseFactor = 2.3
	old.NextReview = time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)

	updated := old.Clone()
	updated.Interval = 14
	updated.EaseFactor = 2.4
	updated.NextReview = time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	log, err := NewReviewLog(old, updated, ReviewOutcomeKnow, now)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if log.Word != "petrichor" {
		t.Errorf("Expected word %q, got %q", "petrichor", log.Word)
	}

	if log.ReviewStatus != ReviewOutcomeKnow {
		t.Errorf("Expected outcome %q, got %q", ReviewOutcomeKnow, log.ReviewStatus)
	}

	if log.OldInterval != 6 || log.NewInterval != 14 {
		t.Errorf("Expected intervals 6 -> 14, got %d -> %d", log.OldInterval, log.NewInterval)
	}

	if log.OldEaseFactor != 2.3 || log.NewEaseFactor != 2.4 {
		t.Errorf("Expected ease 2.3 -> 2.4, got %v -> %v", log.OldEaseFactor, log.NewEaseFactor)
	}

	if !log.CreatedAt.Equal(now) {
		t.Errorf("Expected CreatedAt %v, got %v", now, log.CreatedAt)
	}

	if log.ID != 0 {
		t.Errorf("Expected unassigned ID, got %d", log.ID)
	}
}

func TestNewReviewLogRejectsInvalidOutcome(t *testing.T) {
	v, err := NewVocabulary("word", "a unit of language")
	if err != nil {
		t.Fatalf("Failed to create vocabulary: %v", err)
	}

	if _, err := NewReviewLog(v, v, "easy", time.Now()); err != ErrInvalidReviewOutcome {
		t.Errorf("Expected error %v, got %v", ErrInvalidReviewOutcome, err)
	}
}
