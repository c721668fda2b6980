// Package app wires the application together: configuration, logging,
// database pool, migrations and services.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	openaiadapter "github.com/voicejournal/voicejournal-backend/internal/adapter/openai"
	"github.com/voicejournal/voicejournal-backend/internal/adapter/postgres"
	"github.com/voicejournal/voicejournal-backend/internal/adapter/postgres/entry"
	"github.com/voicejournal/voicejournal-backend/internal/config"
	"github.com/voicejournal/voicejournal-backend/internal/service/export"
	"github.com/voicejournal/voicejournal-backend/internal/service/journal"
	"github.com/voicejournal/voicejournal-backend/internal/service/pipeline"
	"github.com/voicejournal/voicejournal-backend/internal/service/stats"
)

// App holds the assembled application: configuration, shared resources and
// the service surface a transport layer (bot, HTTP) builds on.
type App struct {
	Cfg  *config.Config
	Log  *slog.Logger
	Pool *pgxpool.Pool

	Journal  *journal.Service
	Stats    *stats.Service
	Export   *export.Service
	Pipeline *pipeline.Service
}

// New loads configuration, connects to the database, applies migrations
// and constructs every service.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if err := Migrate(ctx, logger, cfg.Database.DSN); err != nil {
		return nil, err
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	entries := entry.New(pool)

	transcriber := openaiadapter.NewTranscriber(cfg.OpenAI, cfg.Transcription, logger)
	analyzer := openaiadapter.NewAnalyzer(cfg.OpenAI, cfg.Analysis, logger)

	journalSvc := journal.NewService(logger, entries, cfg.Journal, cfg.Analysis.MaxTags)

	return &App{
		Cfg:      cfg,
		Log:      logger,
		Pool:     pool,
		Journal:  journalSvc,
		Stats:    stats.NewService(logger, entries),
		Export:   export.NewService(logger, entries),
		Pipeline: pipeline.NewService(logger, transcriber, analyzer, journalSvc, cfg.Transcription),
	}, nil
}

// Close releases shared resources.
func (a *App) Close() {
	a.Pool.Close()
}
