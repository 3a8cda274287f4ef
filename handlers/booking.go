package handlers

import (
	"context"
	"net/http"

	"slotify/models"
	"slotify/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler books a slot for the authenticated customer.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		getLogger(c).Warn("Invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	b, err := h.Service.CreateBooking(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, "Failed to create booking", err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// GetBookingHandler returns one booking to either of its parties.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	b, err := h.Service.GetBooking(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, "Failed to fetch booking", err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListMyBookingsHandler lists the bookings the authenticated account made
// as a customer.
func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	bookings, err := h.Service.ListCustomerBookings(c.Request.Context(), actor)
	if err != nil {
		respondError(c, "Failed to list bookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListProviderBookingsHandler lists the bookings against the authenticated
// account's services.
func (h *BookingHandler) ListProviderBookingsHandler(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	bookings, err := h.Service.ListProviderBookings(c.Request.Context(), actor)
	if err != nil {
		respondError(c, "Failed to list bookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// RescheduleBookingHandler moves a booking to a new start time.
func (h *BookingHandler) RescheduleBookingHandler(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req models.RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		getLogger(c).Warn("Invalid reschedule request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	b, err := h.Service.Reschedule(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, "Failed to reschedule booking", err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateBookingNotesHandler replaces the booking's notes without changing
// its time.
func (h *BookingHandler) UpdateBookingNotesHandler(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req models.UpdateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		getLogger(c).Warn("Invalid notes request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	b, err := h.Service.UpdateNotes(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, "Failed to update booking notes", err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ConfirmBookingHandler accepts a pending booking. Provider only.
func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	h.transition(c, "Failed to confirm booking", h.Service.Confirm)
}

// DeclineBookingHandler rejects a pending booking. Provider only.
func (h *BookingHandler) DeclineBookingHandler(c *gin.Context) {
	h.transition(c, "Failed to decline booking", h.Service.Decline)
}

// CancelBookingHandler withdraws a live booking. Either party.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	h.transition(c, "Failed to cancel booking", h.Service.Cancel)
}

// CompleteBookingHandler marks a confirmed booking as carried out.
// Provider only.
func (h *BookingHandler) CompleteBookingHandler(c *gin.Context) {
	h.transition(c, "Failed to complete booking", h.Service.Complete)
}

// transition runs one of the status-only lifecycle operations for the
// booking named in the path.
func (h *BookingHandler) transition(c *gin.Context, failMessage string, op func(ctx context.Context, actorID, bookingID string) (*models.Booking, error)) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	b, err := op(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, failMessage, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
