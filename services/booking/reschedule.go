package booking

import (
	"context"
	"time"

	"slotify/models"
	"slotify/utils"

	"go.uber.org/zap"
)

// Reschedule moves a booking to a new start time, after the same
// availability check a fresh booking would pass. Only the booking's customer
// may reschedule. A confirmed booking drops back to Pending so the provider
// approves the new time. Optional notes ride along atomically: if the new
// time is rejected, the stored notes stay untouched too.
func (s *DefaultBookingService) Reschedule(ctx context.Context, actorID, bookingID string, req models.RescheduleBookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	if actorID == "" {
		return nil, NewInvalidArgument("actor id is required")
	}
	if bookingID == "" {
		return nil, NewInvalidArgument("booking id is required")
	}
	if req.Start.IsZero() {
		return nil, NewInvalidArgument("start is required")
	}
	start := req.Start.UTC()
	if !start.Equal(start.Truncate(time.Minute)) {
		return nil, NewInvalidArgument("start must fall on a whole minute")
	}

	lock, err := acquireLockWithRetry(ctx, utils.BookingLockKey(bookingID))
	if err != nil {
		return nil, err
	}
	b, err := s.rescheduleLocked(ctx, actorID, bookingID, start, req.Notes)
	lock.Release(ctx)
	s.Metrics.IncTransition("reschedule", outcomeOf(err))
	if err != nil {
		return nil, err
	}

	s.Notifier.NotifyRescheduled(ctx, *b)

	logger.Info("Booking rescheduled",
		zap.String("bookingId", b.ID), zap.Time("start", b.Start))
	return b, nil
}

// rescheduleLocked runs under the booking lock. It additionally takes the
// slot lock of the target day so the availability check and the move are
// one unit against concurrent creates on the same service day. Creates take
// only the slot lock, so the booking-then-slot ordering cannot deadlock.
func (s *DefaultBookingService) rescheduleLocked(ctx context.Context, actorID, bookingID string, start time.Time, notes *string) (*models.Booking, error) {
	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := authorize(b, actorID, ActionReschedule); err != nil {
		return nil, err
	}

	slotLock, err := acquireLockWithRetry(ctx, utils.SlotLockKey(b.ServiceID, start.Format(utils.DateLayout)))
	if err != nil {
		return nil, err
	}
	defer slotLock.Release(ctx)

	// The booking being moved must not block its own new time, so it is
	// excluded from the conflict set. Everything else still blocks.
	available, err := s.Engine.IsSlotAvailableExcluding(ctx, b.ServiceID, start, b.ID)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, NewSlotUnavailable(start)
	}

	// Time, notes and the reset to Pending land in one conditional write;
	// a booking already moved to a terminal state matches nothing.
	from := transitionRules[ActionReschedule].from
	matched, err := s.BookingRepo.UpdateTimeAndNotesFrom(ctx, bookingID, from, start, notes, models.StatusPending)
	if err != nil {
		utils.GetLogger().Error("Failed to reschedule booking",
			zap.Error(err), zap.String("bookingId", bookingID))
		return nil, err
	}
	if !matched {
		return s.reportUnmatched(ctx, bookingID, ActionReschedule)
	}

	b.Start = start
	b.Status = models.StatusPending
	if notes != nil {
		b.Notes = *notes
	}
	return b, nil
}

// UpdateNotes replaces the booking's free-text notes without touching the
// time, so no availability check runs. Customer only, while the booking is
// still live.
func (s *DefaultBookingService) UpdateNotes(ctx context.Context, actorID, bookingID string, req models.UpdateNotesRequest) (*models.Booking, error) {
	if actorID == "" {
		return nil, NewInvalidArgument("actor id is required")
	}
	if bookingID == "" {
		return nil, NewInvalidArgument("booking id is required")
	}

	lock, err := acquireLockWithRetry(ctx, utils.BookingLockKey(bookingID))
	if err != nil {
		return nil, err
	}
	defer lock.Release(ctx)

	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := authorize(b, actorID, ActionUpdateNotes); err != nil {
		return nil, err
	}

	from := transitionRules[ActionUpdateNotes].from
	matched, err := s.BookingRepo.UpdateNotesFrom(ctx, bookingID, from, req.Notes)
	if err != nil {
		utils.GetLogger().Error("Failed to update booking notes",
			zap.Error(err), zap.String("bookingId", bookingID))
		return nil, err
	}
	if !matched {
		return s.reportUnmatched(ctx, bookingID, ActionUpdateNotes)
	}

	b.Notes = req.Notes
	return b, nil
}
