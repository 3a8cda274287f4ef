package booking

import (
	"context"

	"slotify/models"
	"slotify/utils"

	"go.uber.org/zap"
)

// transition runs one status-only lifecycle action under the booking's
// advisory lock: fetch, authorize, apply any extra precondition, then move
// the status with a conditional write guarded by the statuses the action is
// legal from. The guard makes the transition hold even if the lock expired
// and a racing request slipped in: the late writer matches nothing and is
// told the real current state.
func (s *DefaultBookingService) transition(ctx context.Context, actorID, bookingID string, action Action, to models.BookingStatus, precondition func(*models.Booking) error) (*models.Booking, error) {
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
	if err := authorize(b, actorID, action); err != nil {
		return nil, err
	}
	if precondition != nil {
		if err := precondition(b); err != nil {
			return nil, err
		}
	}

	matched, err := s.BookingRepo.UpdateStatusFrom(ctx, bookingID, transitionRules[action].from, to)
	if err != nil {
		utils.GetLogger().Error("Failed to update booking status",
			zap.Error(err), zap.String("bookingId", bookingID), zap.String("action", string(action)))
		return nil, err
	}
	if !matched {
		return s.reportUnmatched(ctx, bookingID, action)
	}

	b.Status = to
	return b, nil
}

// reportUnmatched turns a conditional write that matched nothing into the
// error the caller would have seen on a fresh read.
func (s *DefaultBookingService) reportUnmatched(ctx context.Context, bookingID string, action Action) (*models.Booking, error) {
	current, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return nil, NewInvalidState(action, current.Status)
}

// Confirm moves a pending booking to Confirmed. Provider only. A reminder
// for the customer is scheduled once the confirmation is durable.
func (s *DefaultBookingService) Confirm(ctx context.Context, actorID, bookingID string) (*models.Booking, error) {
	b, err := s.transition(ctx, actorID, bookingID, ActionConfirm, models.StatusConfirmed, nil)
	s.Metrics.IncTransition("confirm", outcomeOf(err))
	if err != nil {
		return nil, err
	}

	s.Notifier.NotifyConfirmed(ctx, *b)
	s.Notifier.ScheduleReminder(ctx, *b)

	utils.GetLogger().Info("Booking confirmed", zap.String("bookingId", b.ID))
	return b, nil
}

// Decline rejects a pending booking. Provider only. Declined is terminal.
func (s *DefaultBookingService) Decline(ctx context.Context, actorID, bookingID string) (*models.Booking, error) {
	b, err := s.transition(ctx, actorID, bookingID, ActionDecline, models.StatusDeclined, nil)
	s.Metrics.IncTransition("decline", outcomeOf(err))
	if err != nil {
		return nil, err
	}

	s.Notifier.NotifyDeclined(ctx, *b)

	utils.GetLogger().Info("Booking declined", zap.String("bookingId", b.ID))
	return b, nil
}

// Cancel withdraws a pending or confirmed booking. Either party may cancel;
// the other party is notified. Cancelled is terminal and the slot opens up
// again immediately.
func (s *DefaultBookingService) Cancel(ctx context.Context, actorID, bookingID string) (*models.Booking, error) {
	b, err := s.transition(ctx, actorID, bookingID, ActionCancel, models.StatusCancelled, nil)
	s.Metrics.IncTransition("cancel", outcomeOf(err))
	if err != nil {
		return nil, err
	}

	s.Notifier.NotifyCancelled(ctx, *b, actorID)

	utils.GetLogger().Info("Booking cancelled",
		zap.String("bookingId", b.ID), zap.String("cancelledBy", actorID))
	return b, nil
}

// Complete marks a confirmed booking as carried out. Provider only, and not
// before the appointment has started.
func (s *DefaultBookingService) Complete(ctx context.Context, actorID, bookingID string) (*models.Booking, error) {
	notStarted := func(b *models.Booking) error {
		if b.Start.After(s.Clock.Now()) {
			return NewNotStarted(b.Start)
		}
		return nil
	}

	b, err := s.transition(ctx, actorID, bookingID, ActionComplete, models.StatusCompleted, notStarted)
	s.Metrics.IncTransition("complete", outcomeOf(err))
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("Booking completed", zap.String("bookingId", b.ID))
	return b, nil
}
