package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/vocaboost-api/internal/domain"
	"github.com/phrazzld/vocaboost-api/internal/service"
)

// mockReviewService is a mock implementation of the ReviewService interface
type mockReviewService struct {
	submitReviewFn       func(ctx context.Context, word string, outcome domain.ReviewOutcome) (*service.ReviewResult, error)
	recordStudySessionFn func(ctx context.Context, knowCount, vagueCount, forgetCount int) (*domain.StudyLog, error)
	historyFn            func(ctx context.Context, word string) ([]*domain.ReviewLog, error)
	statsFn              func(ctx context.Context, since time.Time) (*service.ReviewStats, error)
}

func (m *mockReviewService) SubmitReview(ctx context.Context, word string, outcome domain.ReviewOutcome) (*service.ReviewResult, error) {
	return m.submitReviewFn(ctx, word, outcome)
}

func (m *mockReviewService) RecordStudySession(ctx context.Context, knowCount, vagueCount, forgetCount int) (*domain.StudyLog, error) {
	return m.recordStudySessionFn(ctx, knowCount, vagueCount, forgetCount)
}

func (m *mockReviewService) History(ctx context.Context, word string) ([]*domain.ReviewLog, error) {
	return m.historyFn(ctx, word)
}

func (m *mockReviewService) Stats(ctx context.Context, since time.Time) (*service.ReviewStats, error) {
	return m.statsFn(ctx, since)
}

func TestSubmitReview(t *testing.T) {
	item := sampleVocabulary("ephemeral")
	item.Status = domain.StatusLearning
	item.Interval = 1
	item.KnowCount = 1

	result := &service.ReviewResult{
		Item: item,
		Log: &domain.ReviewLog{
			ID:           1,
			Word:         item.Word,
			ReviewStatus: domain.ReviewOutcomeKnow,
			CreatedAt:    time.Now().UTC(),
			NewInterval:  1,
		},
	}

	tests := []struct {
		name           string
		word           string
		body           string
		serviceResult  *service.ReviewResult
		serviceError   error
		expectedStatus int
	}{
		{
			name:           "Success",
			word:           "ephemeral",
			body:           `{"outcome":"know"}`,
			serviceResult:  result,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unknown Outcome",
			word:           "ephemeral",
			body:           `{"outcome":"easy"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing Outcome",
			word:           "ephemeral",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Word Not Found",
			word:           "missing",
			body:           `{"outcome":"know"}`,
			serviceError:   service.ErrVocabularyNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Service Failure",
			word:           "ephemeral",
			body:           `{"outcome":"know"}`,
			serviceError:   errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &mockReviewService{
				submitReviewFn: func(ctx context.Context, word string, outcome domain.ReviewOutcome) (*service.ReviewResult, error) {
					return tc.serviceResult, tc.serviceError
				},
			}
			handler := NewReviewHandler(mockService, testLogger())

			req := httptest.NewRequest("POST", "/vocabulary/"+tc.word+"/review", strings.NewReader(tc.body))
			req = withURLParam(req, "word", tc.word)
			rr := httptest.NewRecorder()

			handler.SubmitReview(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, tc.expectedStatus)
			}

			if tc.expectedStatus == http.StatusOK {
				var response SubmitReviewResponse
				if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
					t.Fatalf("failed to decode response body: %v", err)
				}
				if response.Item.Interval != 1 {
					t.Errorf("wrong interval in response: got %d want 1", response.Item.Interval)
				}
				if response.Log.ReviewStatus != string(domain.ReviewOutcomeKnow) {
					t.Errorf("wrong review status in response: got %v want %v",
						response.Log.ReviewStatus, domain.ReviewOutcomeKnow)
				}
			}
		})
	}
}

func TestRecordSession(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "Success",
			body:           `{"know_count":7,"vague_count":2,"forget_count":1}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Negative Count",
			body:           `{"know_count":-1,"vague_count":0,"forget_count":0}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Malformed JSON",
			body:           `{"know_count":`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &mockReviewService{
				recordStudySessionFn: func(ctx context.Context, knowCount, vagueCount, forgetCount int) (*domain.StudyLog, error) {
					return &domain.StudyLog{
						ID:           1,
						KnowCount:    knowCount,
						VagueCount:   vagueCount,
						ForgetCount:  forgetCount,
						AccuracyRate: 0.7,
						CreatedAt:    time.Now().UTC(),
					}, nil
				},
			}
			handler := NewReviewHandler(mockService, testLogger())

			req := httptest.NewRequest("POST", "/sessions", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			handler.RecordSession(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, tc.expectedStatus)
			}
		})
	}
}

func TestReviewStats(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedStatus int
	}{
		{
			name:           "Default Window",
			query:          "",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Explicit Days",
			query:          "?days=30",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Non-Numeric Days",
			query:          "?days=week",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Zero Days",
			query:          "?days=0",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &mockReviewService{
				statsFn: func(ctx context.Context, since time.Time) (*service.ReviewStats, error) {
					return &service.ReviewStats{TotalReviews: 10, KnowCount: 7, VagueCount: 2, ForgetCount: 1}, nil
				},
			}
			handler := NewReviewHandler(mockService, testLogger())

			req := httptest.NewRequest("GET", "/reviews/stats"+tc.query, nil)
			rr := httptest.NewRecorder()

			handler.Stats(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, tc.expectedStatus)
			}

			if tc.expectedStatus == http.StatusOK {
				var response service.ReviewStats
				if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
					t.Fatalf("failed to decode response body: %v", err)
				}
				if response.TotalReviews != 10 {
					t.Errorf("wrong total in response: got %d want 10", response.TotalReviews)
				}
			}
		})
	}
}

func TestReviewHistory(t *testing.T) {
	mockService := &mockReviewService{
		historyFn: func(ctx context.Context, word string) ([]*domain.ReviewLog, error) {
			return []*domain.ReviewLog{
				{ID: 2, Word: word, ReviewStatus: domain.ReviewOutcomeKnow, CreatedAt: time.Now().UTC()},
				{ID: 1, Word: word, ReviewStatus: domain.ReviewOutcomeForget, CreatedAt: time.Now().UTC().Add(-time.Hour)},
			}, nil
		},
	}
	handler := NewReviewHandler(mockService, testLogger())

	req := httptest.NewRequest("GET", "/vocabulary/ephemeral/history", nil)
	req = withURLParam(req, "word", "ephemeral")
	rr := httptest.NewRecorder()

	handler.History(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}

	var response []ReviewLogResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if len(response) != 2 {
		t.Fatalf("wrong entry count in response: got %d want 2", len(response))
	}
	if response[0].ID != 2 {
		t.Errorf("expected newest entry first: got id %d want 2", response[0].ID)
	}
}
