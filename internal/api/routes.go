package api

import (
	"election-board/internal/api/handlers"
	"election-board/internal/api/interfaces"
	"election-board/internal/api/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes with proper middleware
func SetupRoutes(router *gin.Engine, services interfaces.Services, hub *handlers.Hub) {
	cfg := services.GetConfig()

	// Global middleware
	router.Use(middlewares.Recovery())
	router.Use(middlewares.CORS(cfg.API.CORS.AllowedOrigins, cfg.API.CORS.MaxAge))
	router.Use(middlewares.Security())
	router.Use(middlewares.RequestLogging(services.GetLogger()))
	router.Use(middlewares.RateLimit(cfg.API.RateLimitPerMinute))

	// Health check
	router.GET("/health", handlers.HealthCheck(services))
	router.GET("/ping", handlers.HealthCheck(services))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		setupResultRoutes(v1, services)
		setupMetaRoutes(v1, services)
		setupAdminRoutes(v1, services)
		setupWebSocketRoutes(v1, services, hub)
	}
}

// setupResultRoutes configures the public read-model endpoints
func setupResultRoutes(rg *gin.RouterGroup, services interfaces.Services) {
	results := rg.Group("/results")
	{
		results.GET("/overview", handlers.GetOverview(services))
		results.GET("/parties", handlers.GetParties(services))
		results.GET("/seats", handlers.GetSeats(services))
		results.GET("/seats/:id", handlers.GetSeatDetail(services))
		results.GET("/seats/:id/centres", handlers.GetSeatCentres(services))
		results.GET("/map", handlers.GetMapData(services))
		results.GET("/districts", handlers.GetDistrictResults(services))
	}

	rg.GET("/status", handlers.GetSystemStatus(services))
}

// setupMetaRoutes configures the static reference-data endpoints
func setupMetaRoutes(rg *gin.RouterGroup, services interfaces.Services) {
	meta := rg.Group("/meta")
	{
		meta.GET("/divisions", handlers.GetDivisions(services))
		meta.GET("/districts", handlers.GetDistricts(services))
	}
}

// setupAdminRoutes configures staff-facing endpoints
func setupAdminRoutes(rg *gin.RouterGroup, services interfaces.Services) {
	admin := rg.Group("/admin")
	{
		admin.GET("/dashboard", handlers.AdminDashboard(services))
		admin.GET("/audit-logs", handlers.GetAuditLogs(services))

		simulation := admin.Group("/simulation")
		{
			simulation.GET("/status", handlers.GetSimulationStatus(services))
			simulation.POST("/tick", handlers.SimulateTick(services))
			simulation.POST("/start", handlers.StartSimulation(services))
			simulation.POST("/stop", handlers.StopSimulation(services))
		}
	}
}

// setupWebSocketRoutes configures WebSocket endpoints
func setupWebSocketRoutes(rg *gin.RouterGroup, services interfaces.Services, hub *handlers.Hub) {
	ws := rg.Group("/ws")
	{
		ws.GET("/updates", handlers.UpdatesWebSocket(hub, services))
	}
}
