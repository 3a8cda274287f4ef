package models

import "time"

// TimeSegment is a contiguous open interval of wall-clock time within a day.
// A segment whose End is numerically below its Start spans midnight into the
// following day (an overnight shift).
type TimeSegment struct {
	Start int `bson:"start" json:"start"` // minutes from midnight (e.g., 540 for 9:00 AM)
	End   int `bson:"end" json:"end"`     // minutes from midnight, exclusive (e.g., 1020 for 5:00 PM)
}

// WeeklyHours holds the recurring open segments for one weekday of a service.
// Multiple segments model split shifts (e.g., morning and afternoon with a
// lunch gap). One document per (service, weekday).
type WeeklyHours struct {
	ServiceID string        `bson:"serviceId" json:"serviceId"`
	Weekday   time.Weekday  `bson:"weekday" json:"weekday"` // 0 = Sunday ... 6 = Saturday
	Segments  []TimeSegment `bson:"segments" json:"segments"`
}

// ScheduleOverride replaces the weekly hours of a service for one calendar
// date. Either the day is fully closed (IsDayOff) or Segments substitute the
// weekly set entirely; weekly and override segments are never merged.
type ScheduleOverride struct {
	ServiceID string        `bson:"serviceId" json:"serviceId"`
	Date      string        `bson:"date" json:"date"` // calendar date in "YYYY-MM-DD" format
	IsDayOff  bool          `bson:"isDayOff" json:"isDayOff"`
	Segments  []TimeSegment `bson:"segments,omitempty" json:"segments,omitempty"`
}

// WeeklyHoursInput carries one weekday's segments in a schedule update.
type WeeklyHoursInput struct {
	Weekday  time.Weekday  `json:"weekday"`
	Segments []TimeSegment `json:"segments" binding:"required"`
}

// SetWeeklyHoursRequest replaces a service's entire weekly schedule. Days
// absent from the list end up with no open segments.
type SetWeeklyHoursRequest struct {
	Days []WeeklyHoursInput `json:"days" binding:"required"`
}

// AddOverrideRequest adds or replaces the override for one date.
type AddOverrideRequest struct {
	Date     string        `json:"date" binding:"required"` // "YYYY-MM-DD"
	IsDayOff bool          `json:"isDayOff"`
	Segments []TimeSegment `json:"segments"`
}

// ScheduleView is the full schedule of a service as returned to callers.
type ScheduleView struct {
	ServiceID string             `json:"serviceId"`
	Weekly    []WeeklyHours      `json:"weekly"`
	Overrides []ScheduleOverride `json:"overrides"`
}

// DaySlotsResponse lists the bookable start times for one date.
type DaySlotsResponse struct {
	ServiceID string      `json:"serviceId"`
	Date      string      `json:"date"`
	Slots     []time.Time `json:"slots"`
}
