package handlers

import (
	"net/http"
	"time"

	"slotify/models"
	"slotify/services/availability"
	"slotify/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes the read side of the availability engine:
// the open slots of a date and the check for one exact start time.
type AvailabilityHandler struct {
	Engine availability.AvailabilityEngine
}

func NewAvailabilityHandler(engine availability.AvailabilityEngine) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine}
}

// GetDaySlotsHandler lists every bookable start time of a service on the
// date given as ?date=YYYY-MM-DD.
func (h *AvailabilityHandler) GetDaySlotsHandler(c *gin.Context) {
	serviceID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date query parameter"})
		return
	}
	if _, err := utils.DayStart(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date", "message": "date must be in " + utils.DateLayout + " format"})
		return
	}

	slots, err := h.Engine.GetAvailableSlots(c.Request.Context(), serviceID, date)
	if err != nil {
		respondError(c, "Failed to compute available slots", err)
		return
	}

	c.JSON(http.StatusOK, models.DaySlotsResponse{
		ServiceID: serviceID,
		Date:      date,
		Slots:     slots,
	})
}

// CheckSlotHandler reports whether an appointment can start at the exact
// time given as ?start=RFC3339.
func (h *AvailabilityHandler) CheckSlotHandler(c *gin.Context) {
	serviceID := c.Param("id")
	startParam := c.Query("start")
	if startParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing start query parameter"})
		return
	}
	start, err := time.Parse(time.RFC3339, startParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start", "message": "start must be an RFC3339 timestamp"})
		return
	}

	available, err := h.Engine.IsSlotAvailable(c.Request.Context(), serviceID, start)
	if err != nil {
		respondError(c, "Failed to check slot availability", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"serviceId": serviceID,
		"start":     start.UTC(),
		"available": available,
	})
}
