package booking

import (
	"context"

	bookingRepo "slotify/database/repository/booking"
	catalogRepo "slotify/database/repository/catalog"
	"slotify/metrics"
	"slotify/models"
	"slotify/services/availability"
	"slotify/services/notification"
	"slotify/utils"
)

// BookingService owns the booking state machine: creation, reschedule,
// confirm, decline, cancel and complete, plus the reads both parties use to
// see their bookings. Availability checks are delegated to the engine; the
// service adds authorization, state guards and per-booking serialization.
type BookingService interface {
	CreateBooking(ctx context.Context, actorID string, req models.CreateBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, actorID, bookingID string) (*models.Booking, error)
	ListCustomerBookings(ctx context.Context, customerID string) ([]models.Booking, error)
	ListProviderBookings(ctx context.Context, providerID string) ([]models.Booking, error)

	Confirm(ctx context.Context, actorID, bookingID string) (*models.Booking, error)
	Decline(ctx context.Context, actorID, bookingID string) (*models.Booking, error)
	Cancel(ctx context.Context, actorID, bookingID string) (*models.Booking, error)
	Complete(ctx context.Context, actorID, bookingID string) (*models.Booking, error)
	Reschedule(ctx context.Context, actorID, bookingID string, req models.RescheduleBookingRequest) (*models.Booking, error)
	UpdateNotes(ctx context.Context, actorID, bookingID string, req models.UpdateNotesRequest) (*models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	BookingRepo bookingRepo.BookingRepository
	CatalogRepo catalogRepo.ServiceCatalogRepository
	Engine      availability.AvailabilityEngine
	Notifier    notification.NotificationService
	Clock       utils.Clock
	Metrics     *metrics.Metrics
}
