package api

import (
	"github.com/gin-gonic/gin"
	"github.com/janmeier/trackjob/internal/api/handler"
	"github.com/janmeier/trackjob/internal/api/middleware"
	"github.com/janmeier/trackjob/internal/config"
	"github.com/janmeier/trackjob/internal/logger"
	"github.com/janmeier/trackjob/internal/service"
)

// SetupRouter configures the Gin router with all routes
func SetupRouter(
	applications *service.ApplicationService,
	analytics *service.AnalyticsService,
	documents *service.DocumentService,
	cfg *config.Config,
	log *logger.Logger,
) *gin.Engine {
	// Set Gin mode
	switch cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	// Add middleware
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware(log))
	r.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins:  cfg.Server.CORS.AllowedOrigins,
		AllowAllOrigins: cfg.Server.CORS.AllowAllOrigins,
	}))

	// Create handlers
	healthHandler := handler.NewHealthHandler()
	applicationHandler := handler.NewApplicationHandler(applications, documents)
	analyticsHandler := handler.NewAnalyticsHandler(analytics)
	documentHandler := handler.NewDocumentHandler(documents)

	// Health check
	r.GET("/health", healthHandler.Health)

	// API v1 routes, all behind bearer auth
	v1 := r.Group("/api/v1")
	v1.Use(middleware.Auth(cfg.Auth))
	{
		// Applications
		v1.GET("/applications", applicationHandler.List)
		v1.POST("/applications", applicationHandler.Create)
		v1.GET("/applications/incomplete/next", applicationHandler.NextIncomplete)
		v1.GET("/applications/:id", applicationHandler.Get)
		v1.PUT("/applications/:id", applicationHandler.Update)
		v1.DELETE("/applications/:id", applicationHandler.Delete)
		v1.POST("/applications/:id/documents/:kind", documentHandler.Upload)

		// Autocomplete
		v1.GET("/autocomplete", applicationHandler.Autocomplete)

		// Analytics
		v1.GET("/analytics/daily", analyticsHandler.Daily)
		v1.GET("/analytics/summary", analyticsHandler.Summary)
		v1.GET("/analytics/companies", analyticsHandler.Companies)
		v1.GET("/analytics/areas", analyticsHandler.Areas)
		v1.GET("/analytics/incomplete", analyticsHandler.Incomplete)
		v1.GET("/analytics/calendar", analyticsHandler.Calendar)
	}

	return r
}
