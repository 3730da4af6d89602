package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/ncgames/boardgame-reviews-backend/internal/api"
	"github.com/ncgames/boardgame-reviews-backend/internal/config"
	"github.com/ncgames/boardgame-reviews-backend/internal/database"
)

func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ValidateProduction(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid production configuration: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	slog.Info("Starting board game reviews backend...")

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			slog.Error("failed to close database", slog.String("error", err.Error()))
		}
	}()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	e := api.NewRouter(&api.RouterConfig{
		DB:             db,
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
		AppEnv:         cfg.AppEnv,
		RateLimit:      cfg.RateLimitRequests,
		RateBurst:      cfg.RateLimitBurst,
	})

	go func() {
		addr := fmt.Sprintf(":%d", cfg.APIPort)
		slog.Info("API server listening", slog.String("addr", addr))
		if err := e.Start(addr); err != nil {
			slog.Info("API server stopped", slog.String("reason", err.Error()))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", slog.String("error", err.Error()))
	}
	slog.Info("Server stopped")
}
