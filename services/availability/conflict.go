package availability

import (
	"time"

	"slotify/models"
)

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect. Touching endpoints do not overlap, so back-to-back bookings
// are legal.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}

// HasConflict reports whether the candidate interval overlaps any of the
// given bookings. Callers pass bookings already filtered to the statuses
// that block a slot; booking ends derive from the service duration.
func HasConflict(candidateStart, candidateEnd time.Time, active []models.Booking, durationMinutes int) bool {
	for _, b := range active {
		if Overlaps(candidateStart, candidateEnd, b.Start, b.End(durationMinutes)) {
			return true
		}
	}
	return false
}

// FilterConflicting drops every slot that overlaps an active booking.
func FilterConflicting(slots []time.Time, active []models.Booking, durationMinutes int) []time.Time {
	if len(active) == 0 {
		return slots
	}

	duration := time.Duration(durationMinutes) * time.Minute
	var open []time.Time
	for _, slot := range slots {
		if !HasConflict(slot, slot.Add(duration), active, durationMinutes) {
			open = append(open, slot)
		}
	}
	return open
}
