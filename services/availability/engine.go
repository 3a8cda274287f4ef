package availability

import (
	"context"
	"errors"
	"sort"
	"time"

	bookingRepo "slotify/database/repository/booking"
	catalogRepo "slotify/database/repository/catalog"
	scheduleRepo "slotify/database/repository/schedule"
	"slotify/metrics"
	"slotify/models"
	"slotify/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ErrServiceNotFound is returned when an availability query names a service
// that does not exist.
var ErrServiceNotFound = errors.New("service not found")

// AvailabilityEngine answers whether one exact start time is bookable and
// lists every bookable slot on a date.
type AvailabilityEngine interface {
	IsSlotAvailable(ctx context.Context, serviceID string, start time.Time) (bool, error)
	// IsSlotAvailableExcluding leaves one booking out of the conflict set,
	// for when that booking itself is being moved to the candidate time.
	IsSlotAvailableExcluding(ctx context.Context, serviceID string, start time.Time, excludeBookingID string) (bool, error)
	GetAvailableSlots(ctx context.Context, serviceID string, date string) ([]time.Time, error)
	ResolveSegments(ctx context.Context, serviceID, date string) ([]models.TimeSegment, error)
}

// DefaultAvailabilityEngine composes the schedule resolver, slot generator
// and conflict checker over the stored schedules and bookings.
type DefaultAvailabilityEngine struct {
	CatalogRepo  catalogRepo.ServiceCatalogRepository
	ScheduleRepo scheduleRepo.ScheduleRepository
	BookingRepo  bookingRepo.BookingRepository
	Clock        utils.Clock
	Cache        *redis.Client    // optional schedule read cache
	Metrics      *metrics.Metrics // optional, nil records nothing
}

// IsSlotAvailable reports whether an appointment of the service's fixed
// duration can start at the given time. A missing service is an error; every
// other failed gate is an ordinary false.
func (e *DefaultAvailabilityEngine) IsSlotAvailable(ctx context.Context, serviceID string, start time.Time) (bool, error) {
	return e.IsSlotAvailableExcluding(ctx, serviceID, start, "")
}

// IsSlotAvailableExcluding is IsSlotAvailable with one booking ignored in
// the conflict check. Reschedules pass the booking being moved, which must
// not collide with its own current slot.
func (e *DefaultAvailabilityEngine) IsSlotAvailableExcluding(ctx context.Context, serviceID string, start time.Time, excludeBookingID string) (bool, error) {
	logger := utils.GetLogger()

	svc, err := e.CatalogRepo.GetByID(ctx, serviceID)
	if err != nil {
		logger.Error("failed to fetch service", zap.String("serviceID", serviceID), zap.Error(err))
		e.Metrics.IncAvailability("slot_check", "error")
		return false, err
	}
	if svc == nil {
		e.Metrics.IncAvailability("slot_check", "not_found")
		return false, ErrServiceNotFound
	}

	start = start.UTC()
	if start.Before(e.Clock.Now()) {
		e.Metrics.IncAvailability("slot_check", "past_start")
		return false, nil
	}

	date := start.Format(utils.DateLayout)
	segments, err := e.ResolveSegments(ctx, serviceID, date)
	if err != nil {
		e.Metrics.IncAvailability("slot_check", "error")
		return false, err
	}
	if len(segments) == 0 {
		e.Metrics.IncAvailability("slot_check", "closed")
		return false, nil
	}

	// The appointment must fit entirely inside one open segment; it may
	// not span segments or stick out past the end.
	startMin := utils.MinutesOfDay(start)
	if !fitsInSegment(segments, startMin, svc.DurationMinutes) {
		e.Metrics.IncAvailability("slot_check", "no_fit")
		return false, nil
	}

	duration := time.Duration(svc.DurationMinutes) * time.Minute
	end := start.Add(duration)
	// Any booking that could overlap [start, end) starts within one
	// service duration before the candidate.
	active, err := e.BookingRepo.GetActiveByServiceBetween(ctx, serviceID, start.Add(-duration), end)
	if err != nil {
		logger.Error("failed to fetch active bookings",
			zap.String("serviceID", serviceID), zap.Error(err))
		e.Metrics.IncAvailability("slot_check", "error")
		return false, err
	}
	active = withoutBooking(active, excludeBookingID)
	if HasConflict(start, end, active, svc.DurationMinutes) {
		e.Metrics.IncAvailability("slot_check", "conflict")
		return false, nil
	}

	e.Metrics.IncAvailability("slot_check", "available")
	return true, nil
}

// GetAvailableSlots lists every bookable start time of a service on one
// calendar date, ascending.
func (e *DefaultAvailabilityEngine) GetAvailableSlots(ctx context.Context, serviceID string, date string) ([]time.Time, error) {
	logger := utils.GetLogger()

	svc, err := e.CatalogRepo.GetByID(ctx, serviceID)
	if err != nil {
		logger.Error("failed to fetch service", zap.String("serviceID", serviceID), zap.Error(err))
		e.Metrics.IncAvailability("day_slots", "error")
		return nil, err
	}
	if svc == nil {
		e.Metrics.IncAvailability("day_slots", "not_found")
		return nil, ErrServiceNotFound
	}

	day, err := utils.DayStart(date)
	if err != nil {
		return nil, err
	}

	segments, err := e.ResolveSegments(ctx, serviceID, date)
	if err != nil {
		e.Metrics.IncAvailability("day_slots", "error")
		return nil, err
	}
	if len(segments) == 0 {
		e.Metrics.IncAvailability("day_slots", "closed")
		return []time.Time{}, nil
	}

	active, err := e.BookingRepo.GetActiveByServiceBetween(ctx, serviceID, day, day.AddDate(0, 0, 1))
	if err != nil {
		logger.Error("failed to fetch active bookings",
			zap.String("serviceID", serviceID), zap.String("date", date), zap.Error(err))
		e.Metrics.IncAvailability("day_slots", "error")
		return nil, err
	}

	slots := GenerateSlots(segments, svc.DurationMinutes, day, e.Clock.Now())
	open := FilterConflicting(slots, active, svc.DurationMinutes)

	// Segments and bookings arrive unordered; the ascending order of the
	// result is part of the contract.
	sort.Slice(open, func(i, j int) bool { return open[i].Before(open[j]) })

	e.Metrics.IncAvailability("day_slots", "ok")
	e.Metrics.ObserveSlots(len(open))
	if open == nil {
		open = []time.Time{}
	}
	return open, nil
}

// withoutBooking filters one booking id out of the slice. An empty id
// filters nothing.
func withoutBooking(bookings []models.Booking, id string) []models.Booking {
	if id == "" {
		return bookings
	}
	kept := bookings[:0]
	for _, b := range bookings {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	return kept
}

// fitsInSegment reports whether an appointment starting startMin minutes
// into the day lies entirely inside one of the segments.
func fitsInSegment(segments []models.TimeSegment, startMin, durationMinutes int) bool {
	endMin := startMin + durationMinutes
	for _, seg := range segments {
		segEnd := seg.End
		if segEnd < seg.Start {
			segEnd += minutesPerDay
		}
		if startMin >= seg.Start && endMin <= segEnd {
			return true
		}
	}
	return false
}
