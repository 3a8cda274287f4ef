package scheduleRepo

import (
	"context"
	"time"

	"slotify/models"
)

// ScheduleRepository stores the two-tier schedule of a service: recurring
// weekly hours plus date-specific overrides.
type ScheduleRepository interface {
	// GetWeeklyHours returns (nil, nil) when the weekday has no document.
	GetWeeklyHours(ctx context.Context, serviceID string, weekday time.Weekday) (*models.WeeklyHours, error)
	GetAllWeeklyHours(ctx context.Context, serviceID string) ([]models.WeeklyHours, error)
	// ReplaceWeeklyHours swaps the service's entire weekly schedule: all
	// prior weekday documents are deleted and the new set inserted, as one
	// transaction.
	ReplaceWeeklyHours(ctx context.Context, serviceID string, days []models.WeeklyHours) error

	// GetOverride returns (nil, nil) when the date has no override.
	GetOverride(ctx context.Context, serviceID, date string) (*models.ScheduleOverride, error)
	ListOverrides(ctx context.Context, serviceID string) ([]models.ScheduleOverride, error)
	UpsertOverride(ctx context.Context, override *models.ScheduleOverride) error
	// DeleteOverride reports whether an override existed for the date.
	DeleteOverride(ctx context.Context, serviceID, date string) (bool, error)
}
