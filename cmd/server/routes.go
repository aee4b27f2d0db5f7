package main

import (
	"github.com/antoniuk-oleksandr/blogs-app/internal/config"
	"github.com/antoniuk-oleksandr/blogs-app/internal/middleware"
	"github.com/antoniuk-oleksandr/blogs-app/pkg/logger"
	"github.com/gin-gonic/gin"
)

// setupRouter builds the HTTP router with all middleware and routes.
func setupRouter(cfg *config.Config, svcs *appServices) *gin.Engine {
	r := gin.New()
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.Use(middleware.CORS())

	// Health check endpoint
	r.GET("/health", svcs.healthHandler.CheckHealth)

	api := r.Group("/api")
	{
		// Public auth routes, rate limited per IP
		authLimiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		auth := api.Group("/auth")
		auth.Use(authLimiter.Middleware())
		{
			auth.POST("/register", svcs.authHandler.Register)
			auth.POST("/login", svcs.authHandler.Login)
			auth.POST("/refresh", svcs.authHandler.Refresh)
			auth.POST("/logout", svcs.authHandler.Logout)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired(svcs.authHandler.AuthService().Signer()))
		{
			protected.GET("/auth/me", svcs.authHandler.Me)
		}
	}

	return r
}
