package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/anonto42/microblog/backend/internal/logging"
	"github.com/anonto42/microblog/backend/internal/router"
	"github.com/anonto42/microblog/backend/pkg/config"
	"github.com/anonto42/microblog/backend/pkg/storage"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	// Initialize database connection
	db, err := config.InitDB(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.CloseDB()

	mediaStorage, err := storage.NewLocalStorage(cfg.UploadFolder)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to initialize media storage")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	config.SetupMiddleware(e)
	router.SetupRoutes(e, db.SQL, mediaStorage, cfg.MaxUploadSize)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logging.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error().Err(err).Msg("server stopped unexpectedly")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
	}
	logging.Info().Msg("server stopped")
}
