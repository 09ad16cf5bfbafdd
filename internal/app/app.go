// Package app wires configuration, logging, error reporting and the
// DynamoDB-backed movie handler for the entry points under cmd/.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	sentrygo "github.com/getsentry/sentry-go"

	"github.com/KillianGolds/ds-serverlessREST-lab/internal/config"
	"github.com/KillianGolds/ds-serverlessREST-lab/internal/db"
	"github.com/KillianGolds/ds-serverlessREST-lab/internal/movies"
)

var FlushTime = 2 * time.Second

type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Handler *movies.Handler
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		return nil, fmt.Errorf("init sentry: %w", err)
	}

	client, err := db.NewClient(ctx, db.Options{
		Region:       cfg.DynamoDB.Region,
		Endpoint:     cfg.DynamoDB.Endpoint,
		AccessKey:    cfg.DynamoDB.AccessKey,
		SecretKey:    cfg.DynamoDB.SecretKey,
		SessionToken: cfg.DynamoDB.SessionToken,
	})
	if err != nil {
		return nil, err
	}

	store := db.NewMovieStore(client, cfg.DynamoDB.MoviesTable, cfg.DynamoDB.CastTable)
	if cfg.DynamoDB.MoviesTable == "" || cfg.DynamoDB.CastTable == "" {
		logger.Warn("table names not configured, lookups will fail",
			"moviesTable", cfg.DynamoDB.MoviesTable, "castTable", cfg.DynamoDB.CastTable)
	}

	return &App{
		Config:  cfg,
		Logger:  logger,
		Handler: movies.NewHandler(store, logger),
	}, nil
}

// Close flushes buffered Sentry events.
func (a *App) Close() {
	sentrygo.Flush(FlushTime)
}
