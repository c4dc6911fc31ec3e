package handlers

import (
	"net/http"
	"time"

	"election-board/internal/api/interfaces"
	"election-board/internal/api/types"

	"github.com/gin-gonic/gin"
)

// HealthCheck provides a simple health check endpoint
func HealthCheck(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	}
}

// GetSystemStatus returns the current system status
func GetSystemStatus(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := services.GetStore().Snapshot()

		reported := 0
		for _, centre := range snap.Centres {
			if centre.IsReported {
				reported++
			}
		}

		c.JSON(http.StatusOK, types.SuccessResponse{
			Success: true,
			Data: types.SystemStatus{
				ServerStatus:      "running",
				SimulationRunning: services.GetSimulation().IsRunning(),
				TotalSeats:        len(snap.Seats),
				TotalCentres:      len(snap.Centres),
				CentresReported:   reported,
			},
		})
	}
}
