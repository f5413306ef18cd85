package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caloria-app/backend/internal/api"
	"github.com/caloria-app/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	diaryHandler *api.DiaryHandler,
	assistantHandler *api.AssistantHandler,
	analysisHandler *api.AnalysisHandler,
) *gin.Engine {
	router := gin.Default()

	// CORS middleware
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")

	diaryHandler.RegisterRoutes(v1)
	assistantHandler.RegisterRoutes(v1)
	analysisHandler.RegisterRoutes(v1)

	return router
}
