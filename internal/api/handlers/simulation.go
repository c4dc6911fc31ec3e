package handlers

import (
	"net/http"

	"election-board/internal/api/interfaces"
	"election-board/internal/api/types"

	"github.com/gin-gonic/gin"
)

// SimulateTick performs one simulation tick immediately
func SimulateTick(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		updates, err := services.GetSimulation().TickNow()
		if err != nil {
			services.GetLogger().Error("Manual tick failed: %v", err)
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Error:   "tick_failed",
				Code:    http.StatusInternalServerError,
				Message: "Failed to apply simulation tick",
			})
			return
		}

		c.JSON(http.StatusOK, types.SuccessResponse{
			Success: true,
			Data: types.TickResult{
				CentresUpdated: len(updates),
				Updates:        updates,
			},
		})
	}
}

// StartSimulation enables the recurring tick loop
func StartSimulation(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := services.GetSimulation().Start(); err != nil {
			c.JSON(http.StatusConflict, types.ErrorResponse{
				Error:   "already_running",
				Code:    http.StatusConflict,
				Message: "Simulation is already running",
			})
			return
		}

		c.JSON(http.StatusOK, types.SuccessResponse{
			Success: true,
			Message: "Simulation started",
		})
	}
}

// StopSimulation disables the recurring tick loop
func StopSimulation(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		services.GetSimulation().Stop()

		c.JSON(http.StatusOK, types.SuccessResponse{
			Success: true,
			Message: "Simulation stopped",
		})
	}
}

// GetSimulationStatus returns the simulation loop state
func GetSimulationStatus(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.SuccessResponse{
			Success: true,
			Data: types.SimulationStatus{
				Running:          services.GetSimulation().IsRunning(),
				Interval:         services.GetConfig().Simulation.Interval.String(),
				CentresRemaining: len(services.GetStore().UnreportedCentres()),
			},
		})
	}
}
