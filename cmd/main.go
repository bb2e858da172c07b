package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/powerfolio/backend/internal/config"
	"github.com/powerfolio/backend/internal/handlers"
	"github.com/powerfolio/backend/internal/logger"
	"github.com/powerfolio/backend/internal/repositories"
	"github.com/powerfolio/backend/internal/server"
	"github.com/powerfolio/backend/internal/services"
	"github.com/powerfolio/backend/internal/session"
	"go.uber.org/zap"
)

// @title Powerfolio API
// @version 1.0
// @description API for the Powerfolio portfolio showcase: signup, project submission, browsing, moderation and analytics.

// @license.name MIT

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(logger.Options{
		Level:      cfg.Logging.Level,
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting Powerfolio backend")

	// Initialize the in-memory store and session holder
	userRepo := repositories.NewUserRepository(logger.Logger)
	projectRepo := repositories.NewProjectRepository(logger.Logger)
	sessions := session.NewManager()

	// Load the startup fixture
	if cfg.SeedData {
		if err := services.Seed(context.Background(), userRepo, projectRepo); err != nil {
			logger.Logger.Fatal("Failed to seed store", zap.Error(err))
		}
		logger.Logger.Info("seed data loaded")
	}

	// Initialize services
	authService := services.NewAuthService(userRepo, sessions, logger.Logger)
	projectService := services.NewProjectService(projectRepo, logger.Logger)
	adminService := services.NewAdminService(userRepo, projectRepo, logger.Logger)
	analyticsService := services.NewAnalyticsService(userRepo, projectRepo)

	// Initialize handlers and router
	r := server.NewRouter(cfg, logger.Logger, sessions, server.Handlers{
		Auth:    handlers.NewAuthHandler(authService, logger.Logger),
		Project: handlers.NewProjectHandler(projectService, sessions, logger.Logger),
		Admin:   handlers.NewAdminHandler(adminService, analyticsService, logger.Logger),
	})

	srv := server.BuildServer(fmt.Sprintf(":%d", cfg.Server.Port), r)

	go func() {
		logger.Logger.Info("HTTP server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("shutdown", zap.Error(err))
	}
	logger.Logger.Info("server stopped gracefully")
}
