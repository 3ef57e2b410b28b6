package domain

import (
	"testing"
	"time"
)

func TestNewStudyLog(t *testing.T) {
	now := time.Date(2024, 5, 20, 22, 0, 0, 0, time.UTC)

	testCases := []struct {
		name             string
		know, vague, fgt int
		expectedAccuracy float64
	}{
		{name: "all correct", know: 10, vague: 0, fgt: 0, expectedAccuracy: 1.0},
		{name: "mixed session", know: 6, vague: 2, fgt: 2, expectedAccuracy: 0.6},
		{name: "nothing recalled", know: 0, vague: 0, fgt: 5, expectedAccuracy: 0.0},
		{name: "empty session", know: 0, vague: 0, fgt: 0, expectedAccuracy: 0.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			log, err := NewStudyLog(tc.know, tc.vague, tc.fgt, now)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			if log.AccuracyRate != tc.expectedAccuracy {
				t.Errorf("Expected accuracy %v, got %v", tc.expectedAccuracy, log.AccuracyRate)
			}

			if log.Total() != tc.know+tc.vague+tc.fgt {
				t.Errorf("Expected total %d, got %d", tc.know+tc.vague+tc.fgt, log.Total())
			}

			if !log.CreatedAt.Equal(now) {
				t.Errorf("Expected CreatedAt %v, got %v", now, log.CreatedAt)
			}
		})
	}
}

func TestNewStudyLogRejectsNegativeCounts(t *testing.T) {
	if _, err := NewStudyLog(-1, 0, 0, time.Now()); err != ErrNegativeCount {
		t.Errorf("Expected error %v, got %v", ErrNegativeCount, err)
	}
}
