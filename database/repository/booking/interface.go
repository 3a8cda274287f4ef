package bookingRepo

import (
	"context"
	"time"

	"slotify/models"
)

// BookingRepository stores booking documents. Bookings are never physically
// deleted; terminal statuses simply stop blocking availability.
//
// The conditional Update*From methods only apply when the booking's current
// status is in the given set, and report whether a document matched. They are
// the storage-level guard behind the lifecycle state machine.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID returns (nil, nil) when no booking carries the id.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// GetActiveByServiceBetween returns bookings with status Pending or
	// Confirmed whose start falls in [from, to).
	GetActiveByServiceBetween(ctx context.Context, serviceID string, from, to time.Time) ([]models.Booking, error)
	GetByCustomer(ctx context.Context, customerID string) ([]models.Booking, error)
	GetByProvider(ctx context.Context, providerID string) ([]models.Booking, error)

	UpdateStatusFrom(ctx context.Context, id string, from []models.BookingStatus, to models.BookingStatus) (bool, error)
	// UpdateTimeAndNotesFrom moves the start time, optionally replaces the
	// notes (nil keeps them), and sets the status, all in one write.
	UpdateTimeAndNotesFrom(ctx context.Context, id string, from []models.BookingStatus, start time.Time, notes *string, to models.BookingStatus) (bool, error)
	UpdateNotesFrom(ctx context.Context, id string, from []models.BookingStatus, notes string) (bool, error)
}
