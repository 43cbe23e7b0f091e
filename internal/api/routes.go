package api

import (
	"github.com/raohamdcreator-bit/verity/internal/config"
	"github.com/raohamdcreator-bit/verity/internal/repository"
	"github.com/raohamdcreator-bit/verity/internal/scan"
	"github.com/raohamdcreator-bit/verity/internal/stream"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	cfg *config.Config,
	itemsRepo *repository.ItemsRepository,
	reportsRepo *repository.ReportsRepository,
	status scan.StatusTracker,
	publisher *stream.Publisher,
) *gin.Engine {
	router := gin.Default()

	handler := NewHandler(cfg, itemsRepo, reportsRepo, status, publisher)

	rateLimiter := NewRateLimiter(cfg.RateLimitRPS, int(cfg.RateLimitRPS*2))

	router.Use(ErrorHandlerMiddleware())

	// Health endpoint (no auth)
	router.GET("/health", handler.Health)

	// API routes (with auth and rate limiting)
	api := router.Group("/api/v1")
	api.Use(JWTAuthMiddleware(cfg.JWTSecret))
	api.Use(RateLimitMiddleware(rateLimiter))
	{
		api.POST("/compare", handler.Compare)
		api.POST("/phrases", handler.Phrases)
		api.POST("/match", handler.Match)
		api.POST("/scan", handler.Scan)
		api.GET("/scan/:teamId/status", handler.ScanStatus)
		api.GET("/reports/:teamId", handler.Reports)
	}

	return router
}
