package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"slotify/models"
	"slotify/utils"

	"go.uber.org/zap"
)

const (
	lockRetryAttempts = 20
	lockRetryDelay    = 50 * time.Millisecond
)

// acquireLockWithRetry waits briefly for a contended lock instead of failing
// the request outright. Contention here is short-lived: holders only perform
// an availability read plus one write.
func acquireLockWithRetry(ctx context.Context, key string) (*utils.Lock, error) {
	for attempt := 0; attempt < lockRetryAttempts; attempt++ {
		lock, err := utils.AcquireLock(ctx, key, utils.LockTTL)
		if err != nil {
			return nil, err
		}
		if lock != nil {
			return lock, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryDelay):
		}
	}
	return nil, fmt.Errorf("timed out waiting for lock %s", key)
}

// getBooking fetches a booking and maps absence to NotFound.
func (s *DefaultBookingService) getBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	b, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch booking", zap.Error(err), zap.String("bookingId", bookingID))
		return nil, fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}
	if b == nil {
		return nil, NewNotFound("booking", bookingID)
	}
	return b, nil
}

// outcomeOf labels a result for metrics: domain rejections are "rejected",
// anything else that fails is "error".
func outcomeOf(err error) string {
	if err == nil {
		return "ok"
	}
	var be *Error
	if errors.As(err, &be) {
		return "rejected"
	}
	return "error"
}
