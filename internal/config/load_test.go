package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "vocaboost.db", cfg.Database.Path)
	assert.Equal(t, "https://dict.youdao.com/dictvoice", cfg.Audio.UpstreamURL)
	assert.Equal(t, 10, cfg.Audio.FetchTimeoutSeconds)

	// Scheduler overrides default to zero, meaning "use built-in values".
	assert.Zero(t, cfg.Scheduler.MinEaseFactor)
	assert.Zero(t, cfg.Scheduler.FirstKnowInterval)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("VOCABOOST_SERVER_PORT", "9999")
	t.Setenv("VOCABOOST_SERVER_LOG_LEVEL", "debug")
	t.Setenv("VOCABOOST_DATABASE_PATH", ":memory:")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, ":memory:", cfg.Database.Path)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port out of range", "VOCABOOST_SERVER_PORT", "70000"},
		{"unknown log level", "VOCABOOST_SERVER_LOG_LEVEL", "verbose"},
		{"malformed upstream url", "VOCABOOST_AUDIO_UPSTREAM_URL", "not-a-url"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
