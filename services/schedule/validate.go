package schedule

import (
	"fmt"
	"sort"
	"time"

	"slotify/models"
	"slotify/utils"
)

const minutesPerDay = 24 * 60

// validateSegments enforces what the availability engine assumes of stored
// segments: minute values inside a day, non-empty intervals, and no overlap
// within the set. An end below its start is a shift wrapping past midnight
// and is normalized before the overlap check.
func validateSegments(segments []models.TimeSegment) error {
	if len(segments) == 0 {
		return NewInvalidArgument("at least one segment is required")
	}

	normalized := make([]models.TimeSegment, 0, len(segments))
	for _, seg := range segments {
		if seg.Start < 0 || seg.Start >= minutesPerDay {
			return NewInvalidArgument(fmt.Sprintf("segment start %d is outside the day", seg.Start))
		}
		if seg.End < 0 || seg.End >= minutesPerDay {
			return NewInvalidArgument(fmt.Sprintf("segment end %d is outside the day", seg.End))
		}
		if seg.Start == seg.End {
			return NewInvalidArgument(fmt.Sprintf("segment %s-%s is empty",
				utils.MinutesToClock(seg.Start), utils.MinutesToClock(seg.End)))
		}
		if seg.End < seg.Start {
			seg.End += minutesPerDay
		}
		normalized = append(normalized, seg)
	}

	sort.Slice(normalized, func(i, j int) bool { return normalized[i].Start < normalized[j].Start })
	for i := 1; i < len(normalized); i++ {
		if normalized[i].Start < normalized[i-1].End {
			return NewInvalidArgument(fmt.Sprintf("segments %s-%s and %s-%s overlap",
				utils.MinutesToClock(normalized[i-1].Start), utils.MinutesToClock(normalized[i-1].End),
				utils.MinutesToClock(normalized[i].Start), utils.MinutesToClock(normalized[i].End)))
		}
	}
	return nil
}

// validateWeeklyDays checks the weekday set of a full schedule replacement.
func validateWeeklyDays(days []models.WeeklyHoursInput) error {
	seen := make(map[time.Weekday]bool, len(days))
	for _, day := range days {
		if day.Weekday < time.Sunday || day.Weekday > time.Saturday {
			return NewInvalidArgument(fmt.Sprintf("invalid weekday %d", day.Weekday))
		}
		if seen[day.Weekday] {
			return NewInvalidArgument(fmt.Sprintf("duplicate weekday %s", day.Weekday))
		}
		seen[day.Weekday] = true

		if len(day.Segments) == 0 {
			return NewInvalidArgument(fmt.Sprintf("%s has no segments; omit the day to close it", day.Weekday))
		}
		if err := validateSegments(day.Segments); err != nil {
			return err
		}
	}
	return nil
}

// validateOverride checks one date override: a day off carries no segments,
// anything else substitutes a valid segment set.
func validateOverride(req models.AddOverrideRequest) error {
	if _, err := utils.DayStart(req.Date); err != nil {
		return NewInvalidArgument(fmt.Sprintf("date must be in %s format", utils.DateLayout))
	}
	if req.IsDayOff {
		if len(req.Segments) > 0 {
			return NewInvalidArgument("a day off carries no segments")
		}
		return nil
	}
	if len(req.Segments) == 0 {
		return NewInvalidArgument("an override needs segments unless it is a day off")
	}
	return validateSegments(req.Segments)
}
