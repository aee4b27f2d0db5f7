package main

import (
	"github.com/antoniuk-oleksandr/blogs-app/internal/config"
	"github.com/antoniuk-oleksandr/blogs-app/internal/handlers"
	"github.com/antoniuk-oleksandr/blogs-app/internal/models"
	"github.com/antoniuk-oleksandr/blogs-app/internal/services"
	"github.com/antoniuk-oleksandr/blogs-app/pkg/logger"
)

// appServices holds all initialized services and handlers needed by the application.
type appServices struct {
	authHandler   *handlers.AuthHandler
	healthHandler *handlers.HealthHandler
	tokenCleaner  *services.RevokedTokenCleaner
}

// bootstrap initializes all application dependencies: database, services, schedulers.
func bootstrap(cfg *config.Config) *appServices {
	// Initialize database
	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate database
	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	// Start revoked token cleanup scheduler
	tokenCleaner := services.NewRevokedTokenCleaner(models.GetDB(), cfg.Cleaner.Cron)
	if err := tokenCleaner.Start(); err != nil {
		logger.Fatalf("Failed to start revoked token cleaner: %v", err)
	}

	return &appServices{
		authHandler:   handlers.NewAuthHandler(models.GetDB(), cfg),
		healthHandler: handlers.NewHealthHandler(),
		tokenCleaner:  tokenCleaner,
	}
}

// shutdown gracefully stops all background services.
func (s *appServices) shutdown() {
	s.tokenCleaner.Stop()
	logger.Info().Msg("All schedulers stopped")
}
