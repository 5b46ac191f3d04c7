// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	auctionRouter "github.com/cricbid/auction/internal/auction/router"
	"github.com/cricbid/auction/internal/config"
	"github.com/cricbid/auction/internal/database/database"
	"github.com/cricbid/auction/internal/database/migrate"
	evaluationRouter "github.com/cricbid/auction/internal/evaluation/router"
	"github.com/cricbid/auction/internal/health"
	"github.com/cricbid/auction/internal/middleware"
	playerRouter "github.com/cricbid/auction/internal/player/router"
	teamRouter "github.com/cricbid/auction/internal/team/router"
	"github.com/cricbid/auction/pkg/logger"
)

func main() {
	// .env is optional; real deployments pass environment directly.
	_ = godotenv.Load()

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zapLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	gin.SetMode(cfg.GinMode)

	db, err := database.New()
	if err != nil {
		zapLogger.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			zapLogger.Errorw("failed to close database", "error", err)
		}
	}()

	if err := migrate.Migrate(db); err != nil {
		zapLogger.Fatalw("failed to run migrations", "error", err)
	}

	r := gin.New()
	r.Use(middleware.Recovery(zapLogger))
	r.Use(middleware.Logger(zapLogger))

	playerRouter.RegisterRoutes(r, db, zapLogger)
	teamRouter.RegisterRoutes(r, db, zapLogger)
	auctionRouter.RegisterRoutes(r, db, zapLogger)
	evaluationRouter.RegisterRoutes(r, db, zapLogger)
	r.GET("/health", health.New(db, zapLogger).Check)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		zapLogger.Infow("starting server", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Errorw("forced shutdown", "error", err)
	}
	zapLogger.Info("server stopped")
}
