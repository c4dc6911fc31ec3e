package handlers

import (
	"net/http"

	"election-board/internal/api/interfaces"
	"election-board/internal/api/types"

	"github.com/gin-gonic/gin"
)

// GetDivisions returns the static division table
func GetDivisions(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.SuccessResponse{
			Success: true,
			Data:    services.GetQueryEngine().Divisions(),
		})
	}
}

// GetDistricts returns the static district table, optionally filtered by
// division
func GetDistricts(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.SuccessResponse{
			Success: true,
			Data:    services.GetQueryEngine().DistrictsMeta(c.Query("division_id")),
		})
	}
}
