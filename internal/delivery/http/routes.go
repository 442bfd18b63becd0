package http

import (
	"github.com/gin-gonic/gin"
	"github.com/pcforge/backend/config"
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
	router.Use(RequestIDMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Tool-call entry points for the chat assistant
		tools := v1.Group("/tools")
		{
			tools.POST("/search", handler.SearchProducts)
			tools.GET("/products/:id", handler.GetProduct)
			tools.POST("/compare", handler.CompareProducts)
			tools.POST("/recommend-build", handler.RecommendBuild)
		}
	}

	return router
}
