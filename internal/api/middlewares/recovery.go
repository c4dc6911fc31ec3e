package middlewares

import (
	"net/http"

	"election-board/internal/api/types"

	"github.com/gin-gonic/gin"
)

// Recovery middleware recovers from panics
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "internal_error",
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}
