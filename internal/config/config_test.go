// nolint: funlen
package config_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KillianGolds/ds-serverlessREST-lab/internal/config"
)

func TestLoadConfig(t *testing.T) {
	t.Run("loads config from environment variables", func(t *testing.T) {
		envVars := map[string]string{
			"APP_ENV":         "test",
			"LOG_LEVEL":       "debug",
			"SENTRY_DSN":      "https://test@sentry.io/123",
			"PORT":            "9090",
			"REGION":          "eu-west-1",
			"DDB_ENDPOINT":    "http://localhost:8000",
			"TABLE_NAME":      "Movies",
			"CAST_TABLE_NAME": "MovieCast",
		}
		for key, value := range envVars {
			t.Setenv(key, value)
		}

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "https://test@sentry.io/123", cfg.SentryDSN)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "eu-west-1", cfg.DynamoDB.Region)
		assert.Equal(t, "http://localhost:8000", cfg.DynamoDB.Endpoint)
		assert.Equal(t, "Movies", cfg.DynamoDB.MoviesTable)
		assert.Equal(t, "MovieCast", cfg.DynamoDB.CastTable)
		assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	})

	t.Run("applies defaults", func(t *testing.T) {
		for _, key := range []string{"PORT", "LOG_LEVEL"} {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	})

	t.Run("handles invalid port number", func(t *testing.T) {
		t.Setenv("PORT", "invalid")

		cfg, err := config.LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "load config error")
	})
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			cfg := &config.Config{LogLevel: tt.in}
			assert.Equal(t, tt.want, cfg.SlogLevel())
		})
	}
}
