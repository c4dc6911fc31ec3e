package handlers

import (
	"net/http"

	"election-board/internal/api/interfaces"
	"election-board/internal/api/types"

	"github.com/gin-gonic/gin"
)

// AdminDashboard returns reporting progress for election staff
func AdminDashboard(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.SuccessResponse{
			Success: true,
			Data:    services.GetQueryEngine().Dashboard(),
		})
	}
}
