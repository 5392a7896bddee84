package api

import (
	"net/http"
	"strconv"
	"time"

	"stayhub/internal/domain/reservation"
	"stayhub/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid id format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func parsePage(c *gin.Context) shared.Page {
	var page shared.Page
	if v, err := strconv.ParseInt(c.Query("offset"), 10, 32); err == nil {
		page.Offset = int32(v)
	}
	if v, err := strconv.ParseInt(c.Query("limit"), 10, 32); err == nil {
		page.Limit = int32(v)
	}
	return page.Normalize()
}

func parseReservationFilter(c *gin.Context) (shared.ReservationFilter, bool) {
	filter := shared.ReservationFilter{Page: parsePage(c)}

	if v := c.Query("checkInFrom"); v != "" {
		t, err := time.ParseInLocation(reservation.DateLayout, v, time.UTC)
		if err != nil {
			badDateFilter(c, "checkInFrom")
			return filter, false
		}
		filter.CheckInFrom = &t
	}
	if v := c.Query("checkInTo"); v != "" {
		t, err := time.ParseInLocation(reservation.DateLayout, v, time.UTC)
		if err != nil {
			badDateFilter(c, "checkInTo")
			return filter, false
		}
		filter.CheckInTo = &t
	}
	if v := c.Query("minAmount"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			badNumberFilter(c, "minAmount")
			return filter, false
		}
		filter.MinAmount = &f
	}
	if v := c.Query("maxAmount"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			badNumberFilter(c, "maxAmount")
			return filter, false
		}
		filter.MaxAmount = &f
	}

	return filter, true
}

func badDateFilter(c *gin.Context, name string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": name + " must use the YYYY-MM-DD format",
	})
}

func badNumberFilter(c *gin.Context, name string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": name + " must be a number",
	})
}
