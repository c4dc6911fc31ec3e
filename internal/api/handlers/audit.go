package handlers

import (
	"net/http"

	"election-board/internal/api/interfaces"
	"election-board/internal/api/types"
	"election-board/internal/query"

	"github.com/gin-gonic/gin"
)

// GetAuditLogs returns the filtered audit trail, newest entries first
func GetAuditLogs(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters := query.AuditLogFilters{
			Action:      c.Query("action"),
			AdminID:     c.Query("admin_id"),
			SeatID:      c.Query("seat_id"),
			SearchQuery: c.Query("q"),
			Page:        queryInt(c, "page", 1),
			Limit:       queryInt(c, "limit", 10),
		}

		c.JSON(http.StatusOK, types.SuccessResponse{
			Success: true,
			Data:    services.GetQueryEngine().AuditLogs(filters),
		})
	}
}
