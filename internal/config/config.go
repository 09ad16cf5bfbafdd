package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppEnv    string `envconfig:"APP_ENV"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	SentryDSN string `envconfig:"SENTRY_DSN"`
	Port      int    `envconfig:"PORT" default:"8080"`

	DynamoDB struct {
		Region       string `envconfig:"REGION"`
		Endpoint     string `envconfig:"DDB_ENDPOINT"`
		AccessKey    string `envconfig:"DDB_ACCESS_KEY"`
		SecretKey    string `envconfig:"DDB_SECRET_KEY"`
		SessionToken string `envconfig:"DDB_SESSION_TOKEN"`
		MoviesTable  string `envconfig:"TABLE_NAME"`
		CastTable    string `envconfig:"CAST_TABLE_NAME"`
	}
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	return cfg, nil
}

// SlogLevel maps LOG_LEVEL onto a slog level, falling back to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
