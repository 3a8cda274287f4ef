package availability

import (
	"time"

	"slotify/models"
)

const minutesPerDay = 24 * 60

// GenerateSlots tiles each open segment with candidate start times spaced
// exactly durationMinutes apart, starting at the segment start. Tiling stops
// once the next candidate would run past the segment end, so partial trailing
// time is discarded rather than shortened. Candidates strictly before now are
// dropped. day is midnight UTC of the calendar date being generated.
//
// The result is a pure function of its inputs. Slots are emitted in segment
// order and are not globally sorted here; final ordering belongs to the
// engine.
func GenerateSlots(segments []models.TimeSegment, durationMinutes int, day time.Time, now time.Time) []time.Time {
	if durationMinutes <= 0 {
		return nil
	}

	var slots []time.Time
	for _, seg := range segments {
		end := seg.End
		if end < seg.Start {
			// Overnight shift: the segment runs past midnight into the
			// next day. Only the generator interprets this wrap.
			end += minutesPerDay
		}
		for cursor := seg.Start; cursor+durationMinutes <= end; cursor += durationMinutes {
			candidate := day.Add(time.Duration(cursor) * time.Minute)
			if candidate.Before(now) {
				continue
			}
			slots = append(slots, candidate)
		}
	}
	return slots
}
