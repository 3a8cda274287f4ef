package handlers

import (
	"net/http"

	"slotify/models"
	"slotify/services/schedule"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler exposes weekly-hours and override management over HTTP.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// GetScheduleHandler returns the full schedule of a service. Public.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	view, err := h.Service.GetSchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to fetch schedule", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SetWeeklyHoursHandler replaces the service's entire weekly schedule.
// Owner only.
func (h *ScheduleHandler) SetWeeklyHoursHandler(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req models.SetWeeklyHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		getLogger(c).Warn("Invalid weekly hours request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	view, err := h.Service.SetWeeklyHours(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, "Failed to set weekly hours", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// AddOverrideHandler adds or replaces the override for one date. Owner
// only.
func (h *ScheduleHandler) AddOverrideHandler(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req models.AddOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		getLogger(c).Warn("Invalid override request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	override, err := h.Service.AddOverride(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, "Failed to add override", err)
		return
	}
	c.JSON(http.StatusCreated, override)
}

// RemoveOverrideHandler deletes the override for the date in the path.
// Owner only.
func (h *ScheduleHandler) RemoveOverrideHandler(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	if err := h.Service.RemoveOverride(c.Request.Context(), actor, c.Param("id"), c.Param("date")); err != nil {
		respondError(c, "Failed to remove override", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Override removed"})
}
