package routes

import (
	"slotify/handlers"
	"slotify/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers service catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		// Public read.
		api.GET("/services/:id", hb.GetServiceHandler)

		// Protected routes (require authentication).
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/services", hb.CreateServiceHandler)
		api.PUT("/services/:id", hb.UpdateServiceHandler)
		api.PATCH("/services/:id/active", hb.SetServiceActiveHandler)
		api.GET("/providers/me/services", hb.ListMyServicesHandler)
	}
}
