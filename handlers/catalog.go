package handlers

import (
	"net/http"

	"slotify/models"
	"slotify/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler exposes service catalog management over HTTP.
type CatalogHandler struct {
	Service catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// CreateServiceHandler publishes a new service owned by the authenticated
// account.
func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req models.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		getLogger(c).Warn("Invalid service request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	svc, err := h.Service.CreateService(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, "Failed to create service", err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// GetServiceHandler fetches one service. Public.
func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	svc, err := h.Service.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to fetch service", err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// ListMyServicesHandler lists the authenticated provider's services.
func (h *CatalogHandler) ListMyServicesHandler(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	services, err := h.Service.ListByProvider(c.Request.Context(), actor)
	if err != nil {
		respondError(c, "Failed to list services", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// UpdateServiceHandler renames a service or changes its duration. Owner
// only.
func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req models.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		getLogger(c).Warn("Invalid service update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	svc, err := h.Service.UpdateService(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, "Failed to update service", err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// SetServiceActiveHandler toggles whether the service accepts new bookings.
// Owner only.
func (h *CatalogHandler) SetServiceActiveHandler(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req models.SetServiceActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Active == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": "active flag is required"})
		return
	}

	svc, err := h.Service.SetActive(c.Request.Context(), actor, c.Param("id"), *req.Active)
	if err != nil {
		respondError(c, "Failed to update service", err)
		return
	}
	c.JSON(http.StatusOK, svc)
}
