package booking

import (
	"context"
	"fmt"
	"time"

	"slotify/models"
	"slotify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking books a slot on a service for the acting customer. The slot
// lock serializes concurrent creates touching the same service and day, so
// of two racing requests for overlapping windows exactly one comes out
// Pending and the other is rejected with SLOT_UNAVAILABLE.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, actorID string, req models.CreateBookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	// 1. Validate input.
	if actorID == "" {
		return nil, NewInvalidArgument("actor id is required")
	}
	if req.ServiceID == "" {
		return nil, NewInvalidArgument("serviceId is required")
	}
	if req.Start.IsZero() {
		return nil, NewInvalidArgument("start is required")
	}
	start := req.Start.UTC()
	if !start.Equal(start.Truncate(time.Minute)) {
		return nil, NewInvalidArgument("start must fall on a whole minute")
	}

	// 2. Fetch the service and apply the create preconditions.
	svc, err := s.CatalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		logger.Error("Failed to fetch service", zap.Error(err), zap.String("serviceId", req.ServiceID))
		return nil, fmt.Errorf("failed to fetch service %s: %w", req.ServiceID, err)
	}
	if svc == nil {
		return nil, NewNotFound("service", req.ServiceID)
	}
	if actorID == svc.ProviderID {
		return nil, NewUnauthorized("providers cannot book their own service")
	}
	if !svc.Active {
		return nil, NewServiceNotActive(svc.ID)
	}

	// 3. Check availability and insert under the slot lock.
	lock, err := acquireLockWithRetry(ctx, utils.SlotLockKey(svc.ID, start.Format(utils.DateLayout)))
	if err != nil {
		return nil, err
	}
	b, err := s.createLocked(ctx, actorID, svc, start, req.Notes)
	lock.Release(ctx)
	s.Metrics.IncTransition("create", outcomeOf(err))
	if err != nil {
		return nil, err
	}

	// 4. Tell the provider, after the lock is gone.
	s.Notifier.NotifyCreated(ctx, *b)

	logger.Info("Booking created",
		zap.String("bookingId", b.ID), zap.String("serviceId", b.ServiceID), zap.Time("start", b.Start))
	return b, nil
}

func (s *DefaultBookingService) createLocked(ctx context.Context, customerID string, svc *models.Service, start time.Time, notes string) (*models.Booking, error) {
	available, err := s.Engine.IsSlotAvailable(ctx, svc.ID, start)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, NewSlotUnavailable(start)
	}

	b := &models.Booking{
		ID:         uuid.New().String(),
		ServiceID:  svc.ID,
		ProviderID: svc.ProviderID,
		CustomerID: customerID,
		Start:      start,
		Status:     models.StatusPending,
		Notes:      notes,
	}
	if err := s.BookingRepo.Create(ctx, b); err != nil {
		utils.GetLogger().Error("Failed to persist booking", zap.Error(err), zap.String("bookingId", b.ID))
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}
	return b, nil
}
