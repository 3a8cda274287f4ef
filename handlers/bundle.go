package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Service catalog endpoints
	CreateServiceHandler    gin.HandlerFunc
	GetServiceHandler       gin.HandlerFunc
	ListMyServicesHandler   gin.HandlerFunc
	UpdateServiceHandler    gin.HandlerFunc
	SetServiceActiveHandler gin.HandlerFunc

	// Schedule endpoints
	GetScheduleHandler    gin.HandlerFunc
	SetWeeklyHoursHandler gin.HandlerFunc
	AddOverrideHandler    gin.HandlerFunc
	RemoveOverrideHandler gin.HandlerFunc

	// Availability endpoints
	GetDaySlotsHandler gin.HandlerFunc
	CheckSlotHandler   gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler        gin.HandlerFunc
	GetBookingHandler           gin.HandlerFunc
	ListMyBookingsHandler       gin.HandlerFunc
	ListProviderBookingsHandler gin.HandlerFunc
	RescheduleBookingHandler    gin.HandlerFunc
	UpdateBookingNotesHandler   gin.HandlerFunc
	ConfirmBookingHandler       gin.HandlerFunc
	DeclineBookingHandler       gin.HandlerFunc
	CancelBookingHandler        gin.HandlerFunc
	CompleteBookingHandler      gin.HandlerFunc

	// Device endpoints
	RegisterDeviceHandler gin.HandlerFunc
	RemoveDeviceHandler   gin.HandlerFunc
}
