package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/phrazzld/vocaboost-api/internal/domain"
	"github.com/phrazzld/vocaboost-api/internal/platform/logger"
	"github.com/phrazzld/vocaboost-api/internal/store"
)

// maxAudioBytes bounds an upstream response; pronunciation clips are a few
// hundred kilobytes at most.
const maxAudioBytes = 4 << 20

// AudioService serves pronunciation audio for vocabulary words, caching
// upstream responses so each word is fetched at most once per accent.
type AudioService interface {
	// Get returns the pronunciation clip for a word in the given accent,
	// fetching and caching it on first request.
	// Returns ErrInvalidAccent for unsupported accents.
	// Returns ErrAudioUnavailable when the upstream fetch fails.
	Get(ctx context.Context, word string, accent domain.Accent) (*domain.AudioClip, error)
}

// Verify interface compliance at compile time
var _ AudioService = (*audioServiceImpl)(nil)

type audioServiceImpl struct {
	audioStore  store.AudioStore
	client      *http.Client
	upstreamURL string
	logger      *slog.Logger
}

// NewAudioService creates a new AudioService implementation backed by the
// given upstream dictionary voice endpoint.
func NewAudioService(
	audioStore store.AudioStore,
	upstreamURL string,
	fetchTimeout time.Duration,
	logger *slog.Logger,
) AudioService {
	if audioStore == nil {
		panic("audioStore cannot be nil")
	}
	if upstreamURL == "" {
		panic("upstreamURL cannot be empty")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &audioServiceImpl{
		audioStore:  audioStore,
		client:      &http.Client{Timeout: fetchTimeout},
		upstreamURL: upstreamURL,
		logger:      logger.With(slog.String("component", "audio_service")),
	}
}

// Get implements AudioService.Get.
func (s *audioServiceImpl) Get(
	ctx context.Context,
	word string,
	accent domain.Accent,
) (*domain.AudioClip, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	word = strings.TrimSpace(word)
	if word == "" {
		return nil, domain.ErrEmptyWord
	}
	if !accent.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAccent, accent)
	}

	key := domain.AudioKey(word, accent)

	cached, err := s.audioStore.GetByKey(ctx, key)
	if err == nil {
		log.Debug("audio served from cache", slog.String("key", key))
		return cached, nil
	}
	if !errors.Is(err, store.ErrAudioClipNotFound) {
		return nil, NewServiceError("get_audio", "failed to read cache", err)
	}

	data, err := s.fetch(ctx, word, accent)
	if err != nil {
		log.Warn("upstream audio fetch failed",
			slog.String("error", err.Error()),
			slog.String("key", key))
		return nil, fmt.Errorf("%w: %v", ErrAudioUnavailable, err)
	}

	clip, err := domain.NewAudioClip(key, data)
	if err != nil {
		return nil, fmt.Errorf("%w: upstream returned no audio", ErrAudioUnavailable)
	}

	if err := s.audioStore.Put(ctx, clip); err != nil {
		// Serving the clip matters more than caching it.
		log.Warn("failed to cache audio clip",
			slog.String("error", err.Error()),
			slog.String("key", key))
	} else {
		log.Info("audio fetched and cached",
			slog.String("key", key),
			slog.Int("bytes", len(data)))
	}

	return clip, nil
}

// fetch downloads the clip from the upstream voice service. The upstream
// encodes the accent as a numeric type: 1 for UK, 2 for US.
func (s *audioServiceImpl) fetch(ctx context.Context, word string, accent domain.Accent) ([]byte, error) {
	voiceType := "1"
	if accent == domain.AccentUS {
		voiceType = "2"
	}

	query := url.Values{}
	query.Set("type", voiceType)
	query.Set("audio", word)
	requestURL := s.upstreamURL + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			s.logger.Error("failed to close upstream body", slog.String("error", err.Error()))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAudioBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}

	return data, nil
}
