package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/vocaboost-api/internal/domain"
	"github.com/phrazzld/vocaboost-api/internal/service"
)

// mockAudioService is a mock implementation of the AudioService interface
type mockAudioService struct {
	getFn func(ctx context.Context, word string, accent domain.Accent) (*domain.AudioClip, error)
}

func (m *mockAudioService) Get(ctx context.Context, word string, accent domain.Accent) (*domain.AudioClip, error) {
	return m.getFn(ctx, word, accent)
}

func TestGetAudio(t *testing.T) {
	payload := []byte("mp3-bytes")

	tests := []struct {
		name           string
		query          string
		serviceError   error
		expectedStatus int
		expectedAccent domain.Accent
	}{
		{
			name:           "Success Default Accent",
			query:          "?word=ephemeral",
			expectedStatus: http.StatusOK,
			expectedAccent: domain.AccentUK,
		},
		{
			name:           "Success US Accent",
			query:          "?word=ephemeral&accent=us",
			expectedStatus: http.StatusOK,
			expectedAccent: domain.AccentUS,
		},
		{
			name:           "Missing Word",
			query:          "",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid Accent",
			query:          "?word=ephemeral&accent=au",
			serviceError:   service.ErrInvalidAccent,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Upstream Unavailable",
			query:          "?word=ephemeral",
			serviceError:   service.ErrAudioUnavailable,
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gotAccent domain.Accent
			mockService := &mockAudioService{
				getFn: func(ctx context.Context, word string, accent domain.Accent) (*domain.AudioClip, error) {
					gotAccent = accent
					if tc.serviceError != nil {
						return nil, tc.serviceError
					}
					return &domain.AudioClip{
						Key:  domain.AudioKey(word, accent),
						Data: payload,
					}, nil
				},
			}
			handler := NewAudioHandler(mockService, testLogger())

			req := httptest.NewRequest("GET", "/api/audio"+tc.query, nil)
			rr := httptest.NewRecorder()

			handler.Get(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, tc.expectedStatus)
			}

			if tc.expectedStatus == http.StatusOK {
				if gotAccent != tc.expectedAccent {
					t.Errorf("wrong accent passed to service: got %v want %v", gotAccent, tc.expectedAccent)
				}
				if ct := rr.Header().Get("Content-Type"); ct != "audio/mpeg" {
					t.Errorf("wrong content type: got %v want audio/mpeg", ct)
				}
				if !bytes.Equal(rr.Body.Bytes(), payload) {
					t.Errorf("response body does not match clip data")
				}
			}
		})
	}
}
