package http

import (
	"github.com/gin-gonic/gin"

	"github.com/kiwicart/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		receipts := v1.Group("/receipts")
		{
			receipts.POST("/parse", handler.ParseReceipt)
		}

		v1.GET("/stores", handler.ListStores)
		v1.GET("/categories", handler.ListCategories)

		products := v1.Group("/products")
		{
			products.POST("", handler.AddProduct)
			products.POST("/match", handler.MatchProducts)
			products.POST("/alternatives", handler.SuggestAlternatives)
			products.POST("/compare", handler.CompareProducts)
			products.POST("/best-value", handler.BestValueProducts)
		}
	}

	return router
}
