// Package app wires the planner's collaborators from a Config. Both the API
// server and the planner CLI build on it so they share one set of
// dependencies and one schema bootstrap.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/pkordes/travel-planner/backend/internal/config"
	"github.com/pkordes/travel-planner/backend/internal/llm"
	"github.com/pkordes/travel-planner/backend/internal/repo"
	"github.com/pkordes/travel-planner/backend/internal/service"
	"github.com/pkordes/travel-planner/backend/internal/session"
	"github.com/pkordes/travel-planner/backend/internal/weather"
)

// App holds the long-lived dependencies of a running planner.
type App struct {
	Pool     *pgxpool.Pool
	Trips    *service.TripService
	Plans    *service.PlanService
	Chat     *service.ChatService
	Sessions *session.Store
	Log      *slog.Logger
}

// NewLogger returns a JSON slog.Logger writing to w at the configured level.
// Unknown levels fall back to info.
func NewLogger(w io.Writer, level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: l}))
}

// OpenPool connects to Postgres, verifies the connection and ensures the
// schema exists. The caller owns the returned pool.
func OpenPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("create database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	if err := repo.EnsureSchema(ctx, db); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// NewGenerator returns the offline mock when cfg.LLMMock is set, otherwise
// a Gemini client for cfg.GenAIModel.
func NewGenerator(ctx context.Context, cfg config.Config) (service.Generator, error) {
	if cfg.LLMMock {
		return llm.NewMockGenerator(), nil
	}
	g, err := llm.NewGeminiClient(ctx, cfg.GoogleAPIKey, cfg.GenAIModel)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// New builds an App. The schema is created on the way; on error nothing is
// left open.
func New(ctx context.Context, cfg config.Config, log *slog.Logger) (*App, error) {
	pool, err := OpenPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	gen, err := NewGenerator(ctx, cfg)
	if err != nil {
		pool.Close()
		return nil, err
	}

	trips := repo.NewTripRepo(pool)
	wx := weather.NewClient(nil, cfg.WeatherBaseURL, cfg.WeatherAPIKey)

	return &App{
		Pool:     pool,
		Trips:    service.NewTripService(trips),
		Plans:    service.NewPlanService(trips, wx, gen, log),
		Chat:     service.NewChatService(gen),
		Sessions: session.NewStore(cfg.SessionIdleTTL),
		Log:      log,
	}, nil
}

// Close releases the database pool.
func (a *App) Close() {
	a.Pool.Close()
}
