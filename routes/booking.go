package routes

import (
	"slotify/handlers"
	"slotify/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking lifecycle.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.JWTAuthMiddleware())

		api.POST("/bookings", hb.CreateBookingHandler)
		api.GET("/bookings/:id", hb.GetBookingHandler)
		api.GET("/customers/me/bookings", hb.ListMyBookingsHandler)
		api.GET("/providers/me/bookings", hb.ListProviderBookingsHandler)

		// Mutations on an existing booking.
		api.PATCH("/bookings/:id/reschedule", hb.RescheduleBookingHandler)
		api.PATCH("/bookings/:id/notes", hb.UpdateBookingNotesHandler)

		// Lifecycle transitions.
		api.POST("/bookings/:id/confirm", hb.ConfirmBookingHandler)
		api.POST("/bookings/:id/decline", hb.DeclineBookingHandler)
		api.POST("/bookings/:id/cancel", hb.CancelBookingHandler)
		api.POST("/bookings/:id/complete", hb.CompleteBookingHandler)
	}
}
