package domain

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestNewVocabulary(t *testing.T) {
	v, err := NewVocabulary("ephemeral", "lasting for a very short time")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if v.Word != "ephemeral" {
		t.Errorf("Expected word %q, got %q", "ephemeral", v.Word)
	}

	if v.Status != StatusNew {
		t.Errorf("Expected status %q, got %q", StatusNew, v.Status)
	}

	if v.Interval != 0 {
		t.Errorf("Expected interval 0, got %d", v.Interval)
	}

	if v.EaseFactor != DefaultEaseFactor {
		t.Errorf("Expected ease factor %v, got %v", DefaultEaseFactor, v.EaseFactor)
	}

	if v.ReviewedAt != nil {
		t.Errorf("Expected nil ReviewedAt, got %v", v.ReviewedAt)
	}

	if v.IsSynced {
		t.Error("Expected new vocabulary to be unsynced")
	}

	// New words are due immediately, at the start of today.
	wantDue := StartOfDay(time.Now().UTC())
	if !v.NextReview.Equal(wantDue) {
		t.Errorf("Expected NextReview %v, got %v", wantDue, v.NextReview)
	}

	if v.ID != 0 {
		t.Errorf("Expected unassigned ID, got %d", v.ID)
	}
}

func TestNewVocabularyTrimsWhitespace(t *testing.T) {
	v, err := NewVocabulary("  serendipity ", " a happy accident\n")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if v.Word != "serendipity" {
		t.Errorf("Expected trimmed word, got %q", v.Word)
	}

	if v.Description != "a happy accident" {
		t.Errorf("Expected trimmed description, got %q", v.Description)
	}
}

func TestNewVocabularyValidation(t *testing.T) {
	if _, err := NewVocabulary("", "something"); err != ErrEmptyWord {
		t.Errorf("Expected error %v, got %v", ErrEmptyWord, err)
	}

	if _, err := NewVocabulary("word", "   "); err != ErrEmptyDescription {
		t.Errorf("Expected error %v, got %v", ErrEmptyDescription, err)
	}
}

func TestVocabularyValidate(t *testing.T) {
	valid := func() *Vocabulary {
		v, err := NewVocabulary("test", "a test word")
		if err != nil {
			t.Fatalf("Failed to create vocabulary: %v", err)
		}
		return v
	}

	testCases := []struct {
		name     string
		mutate   func(*Vocabulary)
		expected error
	}{
		{
			name:     "valid item passes",
			mutate:   func(v *Vocabulary) {},
			expected: nil,
		},
		{
			name:     "invalid status",
			mutate:   func(v *Vocabulary) { v.Status = "forgotten" },
			expected: ErrInvalidStatus,
		},
		{
			name:     "negative interval",
			mutate:   func(v *Vocabulary) { v.Interval = -1 },
			expected: ErrInvalidInterval,
		},
		{
			name:     "ease factor below minimum",
			mutate:   func(v *Vocabulary) { v.EaseFactor = 1.2 },
			expected: ErrInvalidEaseFactor,
		},
		{
			name:     "ease factor above maximum",
			mutate:   func(v *Vocabulary) { v.EaseFactor = 2.6 },
			expected: ErrInvalidEaseFactor,
		},
		{
			name:     "negative counter",
			mutate:   func(v *Vocabulary) { v.ForgetCount = -1 },
			expected: ErrNegativeCount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := valid()
			tc.mutate(v)

			if err := v.Validate(); err != tc.expected {
				t.Errorf("Expected error %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestVocabularyClone(t *testing.T) {
	reviewed := time.Date(2024, 3, 10, 15, 4, 5, 0, time.UTC)

	v, err := NewVocabulary("original", "the first of its kind")
	if err != nil {
		t.Fatalf("Failed to create vocabulary: %v", err)
	}
	v.ID = 42
	v.ReviewedAt = &reviewed

	clone := v.Clone()

	if !reflect.DeepEqual(v, clone) {
		t.Errorf("Expected clone to equal original, got %+v vs %+v", clone, v)
	}

	// Mutating the clone's pointer field must not touch the original.
	*clone.ReviewedAt = clone.ReviewedAt.Add(time.Hour)
	if !v.ReviewedAt.Equal(reviewed) {
		t.Error("Clone shares ReviewedAt pointer with original")
	}
}

func TestVocabularyReviewedTime(t *testing.T) {
	v := &Vocabulary{}
	if !v.ReviewedTime().IsZero() {
		t.Errorf("Expected zero time for unreviewed item, got %v", v.ReviewedTime())
	}

	reviewed := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	v.ReviewedAt = &reviewed
	if !v.ReviewedTime().Equal(reviewed) {
		t.Errorf("Expected %v, got %v", reviewed, v.ReviewedTime())
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, 3, 10, 15, 4, 5, 123456789, time.UTC)
	want := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	if got := StartOfDay(in); !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestEndOfDay(t *testing.T) {
	in := time.Date(2024, 3, 10, 15, 4, 5, 0, time.UTC)
	got := EndOfDay(in)

	if got.Day() != 10 || got.Hour() != 23 || got.Minute() != 59 || got.Second() != 59 {
		t.Errorf("Expected last instant of the day, got %v", got)
	}

	if !got.Before(StartOfDay(in).AddDate(0, 0, 1)) {
		t.Error("EndOfDay must stay within the same day")
	}
}

func TestVocabularyJSONRoundTrip(t *testing.T) {
	reviewed := time.Date(2024, 5, 20, 9, 30, 0, 0, time.UTC)

	original := &Vocabulary{
		ID:            7,
		Word:          "sonder",
		Description:   "the realization that each passerby has a life as vivid as your own",
		Pronunciation: "/ˈsɒndər/",
		Status:        StatusLearning,
		NextReview:    time.Date(2024, 5, 26, 0, 0, 0, 0, time.UTC),
		ReviewedAt:    &reviewed,
		Interval:      6,
		EaseFactor:    2.3,
		KnowCount:     2,
		VagueCount:    1,
		ForgetCount:   0,
		CreatedAt:     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:     reviewed,
		IsSynced:      true,
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var decoded Vocabulary
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	if !reflect.DeepEqual(original, &decoded) {
		t.Errorf("Round trip changed the item:\nbefore: %+v\nafter:  %+v", original, &decoded)
	}
}
