package handlers

import (
	"net/http"
	"strconv"

	"election-board/internal/api/interfaces"
	"election-board/internal/api/types"
	"election-board/internal/query"

	"github.com/gin-gonic/gin"
)

// GetOverview returns the national headline numbers and party standings
func GetOverview(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.SuccessResponse{
			Success: true,
			Data:    services.GetQueryEngine().Overview(),
		})
	}
}

// GetParties returns the national party standings
func GetParties(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.SuccessResponse{
			Success: true,
			Data:    services.GetQueryEngine().Parties(),
		})
	}
}

// GetSeats returns a filtered, paginated seat listing
func GetSeats(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters := query.SeatFilters{
			DivisionID:  c.Query("division_id"),
			DistrictID:  c.Query("district_id"),
			Status:      c.Query("status"),
			SearchQuery: c.Query("q"),
			Page:        queryInt(c, "page", 1),
			Limit:       queryInt(c, "limit", 10),
		}

		c.JSON(http.StatusOK, types.SuccessResponse{
			Success: true,
			Data:    services.GetQueryEngine().Seats(filters),
		})
	}
}

// GetSeatDetail returns one seat with its full candidate list
func GetSeatDetail(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		seatID := c.Param("id")

		detail := services.GetQueryEngine().SeatDetail(seatID)
		if detail == nil {
			c.JSON(http.StatusNotFound, types.ErrorResponse{
				Error:   "seat_not_found",
				Code:    http.StatusNotFound,
				Message: "No seat with id " + seatID,
			})
			return
		}

		c.JSON(http.StatusOK, types.SuccessResponse{
			Success: true,
			Data:    detail,
		})
	}
}

// GetSeatCentres returns the per-centre results of one seat
func GetSeatCentres(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		seatID := c.Param("id")

		centres := services.GetQueryEngine().SeatCentres(seatID)
		if centres == nil {
			c.JSON(http.StatusNotFound, types.ErrorResponse{
				Error:   "seat_not_found",
				Code:    http.StatusNotFound,
				Message: "No seat with id " + seatID,
			})
			return
		}

		c.JSON(http.StatusOK, types.SuccessResponse{
			Success: true,
			Data:    centres,
		})
	}
}

// GetMapData returns the per-seat map overlay summaries
func GetMapData(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.SuccessResponse{
			Success: true,
			Data:    services.GetQueryEngine().MapData(),
		})
	}
}

// GetDistrictResults returns the per-district aggregation of the map data
func GetDistrictResults(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.SuccessResponse{
			Success: true,
			Data:    services.GetQueryEngine().Districts(),
		})
	}
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func queryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
