package handlers

import (
	"net/http"

	deviceRepo "slotify/database/repository/device"
	"slotify/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DeviceHandler manages push notification registrations for the
// authenticated account.
type DeviceHandler struct {
	Repo deviceRepo.DeviceRepository
}

func NewDeviceHandler(repo deviceRepo.DeviceRepository) *DeviceHandler {
	return &DeviceHandler{Repo: repo}
}

// RegisterDeviceHandler registers a device or refreshes its push token.
func (h *DeviceHandler) RegisterDeviceHandler(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req models.RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		getLogger(c).Warn("Invalid device registration", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	device := &models.Device{
		DeviceID:  req.DeviceID,
		AccountID: actor,
		Token:     req.Token,
		Platform:  req.Platform,
	}
	if err := h.Repo.Upsert(c.Request.Context(), device); err != nil {
		respondError(c, "Failed to register device", err)
		return
	}
	c.JSON(http.StatusOK, device)
}

// RemoveDeviceHandler deletes one device registration of the account.
func (h *DeviceHandler) RemoveDeviceHandler(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	if err := h.Repo.Delete(c.Request.Context(), actor, c.Param("deviceId")); err != nil {
		respondError(c, "Failed to remove device", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Device removed"})
}
