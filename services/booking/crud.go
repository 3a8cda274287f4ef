package booking

import (
	"context"
	"fmt"

	"slotify/models"
	"slotify/utils"

	"go.uber.org/zap"
)

// GetBooking returns one booking to either of its parties. Anyone else gets
// Unauthorized, not NotFound, so ids stay guessable without being readable.
func (s *DefaultBookingService) GetBooking(ctx context.Context, actorID, bookingID string) (*models.Booking, error) {
	if actorID == "" {
		return nil, NewInvalidArgument("actor id is required")
	}
	if bookingID == "" {
		return nil, NewInvalidArgument("booking id is required")
	}

	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if actorID != b.CustomerID && actorID != b.ProviderID {
		return nil, NewUnauthorized("only the booking's customer or the service's provider may view it")
	}
	return b, nil
}

// ListCustomerBookings returns every booking the customer made, newest
// start first.
func (s *DefaultBookingService) ListCustomerBookings(ctx context.Context, customerID string) ([]models.Booking, error) {
	if customerID == "" {
		return nil, NewInvalidArgument("customer id is required")
	}

	bookings, err := s.BookingRepo.GetByCustomer(ctx, customerID)
	if err != nil {
		utils.GetLogger().Error("Failed to list customer bookings",
			zap.Error(err), zap.String("customerId", customerID))
		return nil, fmt.Errorf("failed to list bookings for customer %s: %w", customerID, err)
	}
	return bookings, nil
}

// ListProviderBookings returns every booking against the provider's
// services, newest start first.
func (s *DefaultBookingService) ListProviderBookings(ctx context.Context, providerID string) ([]models.Booking, error) {
	if providerID == "" {
		return nil, NewInvalidArgument("provider id is required")
	}

	bookings, err := s.BookingRepo.GetByProvider(ctx, providerID)
	if err != nil {
		utils.GetLogger().Error("Failed to list provider bookings",
			zap.Error(err), zap.String("providerId", providerID))
		return nil, fmt.Errorf("failed to list bookings for provider %s: %w", providerID, err)
	}
	return bookings, nil
}
