package routes

import (
	"slotify/handlers"
	"slotify/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterScheduleRoutes registers working-hours and availability endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services/:id")
	{
		// Public reads: the schedule and availability of any service.
		api.GET("/schedule", hb.GetScheduleHandler)
		api.GET("/slots", hb.GetDaySlotsHandler)
		api.GET("/availability", hb.CheckSlotHandler)

		// Working hours management requires the owning provider.
		api.Use(middleware.JWTAuthMiddleware())
		api.PUT("/schedule/weekly", hb.SetWeeklyHoursHandler)
		api.POST("/schedule/overrides", hb.AddOverrideHandler)
		api.DELETE("/schedule/overrides/:date", hb.RemoveOverrideHandler)
	}
}
