package models

import "time"

// BookingStatus is the closed set of booking lifecycle states.
type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusConfirmed BookingStatus = "Confirmed"
	StatusDeclined  BookingStatus = "Declined"
	StatusCancelled BookingStatus = "Cancelled"
	StatusCompleted BookingStatus = "Completed"
)

// ActiveStatuses are the statuses that still block a time slot.
var ActiveStatuses = []BookingStatus{StatusPending, StatusConfirmed}

// Booking represents a customer appointment against a service.
type Booking struct {
	ID         string        `bson:"id" json:"id"`                 // unique booking identifier (UUID)
	ServiceID  string        `bson:"serviceId" json:"serviceId"`   // service being booked
	ProviderID string        `bson:"providerId" json:"providerId"` // owning provider, denormalized from the service at creation
	CustomerID string        `bson:"customerId" json:"customerId"` // customer who made the booking
	Start      time.Time     `bson:"start" json:"start"`           // appointment start, UTC
	Status     BookingStatus `bson:"status" json:"status"`
	Notes      string        `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// End returns the booking end time for the owning service's duration.
// The end is always derived, never stored.
func (b Booking) End(durationMinutes int) time.Time {
	return b.Start.Add(time.Duration(durationMinutes) * time.Minute)
}

// CreateBookingRequest is the payload for creating a booking.
type CreateBookingRequest struct {
	ServiceID string    `json:"serviceId" binding:"required"`
	Start     time.Time `json:"start" binding:"required"`
	Notes     string    `json:"notes"`
}

// RescheduleBookingRequest moves a booking to a new start time.
// Notes, when present, are applied atomically with the time change.
type RescheduleBookingRequest struct {
	Start time.Time `json:"start" binding:"required"`
	Notes *string   `json:"notes"`
}

// UpdateNotesRequest updates the free-text notes without touching the time.
type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}
