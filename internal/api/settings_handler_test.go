package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/vocaboost-api/internal/domain"
)

// mockSettingsService is a mock implementation of the SettingsService interface
type mockSettingsService struct {
	getFn    func(ctx context.Context) (domain.Settings, error)
	updateFn func(ctx context.Context, settings domain.Settings) error
}

func (m *mockSettingsService) Get(ctx context.Context) (domain.Settings, error) {
	return m.getFn(ctx)
}

func (m *mockSettingsService) Update(ctx context.Context, settings domain.Settings) error {
	return m.updateFn(ctx, settings)
}

func TestGetSettings(t *testing.T) {
	mockService := &mockSettingsService{
		getFn: func(ctx context.Context) (domain.Settings, error) {
			return domain.DefaultSettings(), nil
		},
	}
	handler := NewSettingsHandler(mockService, testLogger())

	req := httptest.NewRequest("GET", "/settings", nil)
	rr := httptest.NewRecorder()

	handler.Get(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}

	var response domain.Settings
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if response.DailyReviewTarget != domain.DefaultSettings().DailyReviewTarget {
		t.Errorf("wrong daily review target: got %d want %d",
			response.DailyReviewTarget, domain.DefaultSettings().DailyReviewTarget)
	}
}

func TestUpdateSettings(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		wantTarget     int
	}{
		{
			name:           "Success",
			body:           `{"daily_review_target":25,"reminder_time":"08:30","auto_cleanup":false}`,
			expectedStatus: http.StatusOK,
			wantTarget:     25,
		},
		{
			name:           "Defaults Empty Reminder Time",
			body:           `{"daily_review_target":25}`,
			expectedStatus: http.StatusOK,
			wantTarget:     25,
		},
		{
			name:           "Zero Target",
			body:           `{"daily_review_target":0}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Malformed JSON",
			body:           `{"daily_review_target":`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gotSettings domain.Settings
			mockService := &mockSettingsService{
				updateFn: func(ctx context.Context, settings domain.Settings) error {
					gotSettings = settings
					return nil
				},
			}
			handler := NewSettingsHandler(mockService, testLogger())

			req := httptest.NewRequest("PUT", "/settings", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			handler.Update(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, tc.expectedStatus)
			}

			if tc.expectedStatus == http.StatusOK {
				if gotSettings.DailyReviewTarget != tc.wantTarget {
					t.Errorf("wrong target passed to service: got %d want %d",
						gotSettings.DailyReviewTarget, tc.wantTarget)
				}
				if gotSettings.ReminderTime == "" {
					t.Errorf("reminder time should fall back to the default, got empty")
				}
			}
		})
	}
}
