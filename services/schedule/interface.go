package schedule

import (
	"context"

	catalogRepo "slotify/database/repository/catalog"
	scheduleRepo "slotify/database/repository/schedule"
	"slotify/models"

	"github.com/go-redis/redis/v8"
)

// ScheduleService manages a service's two-tier schedule: the recurring
// weekly hours and the date-specific overrides that replace them. All writes
// are provider-only and validate segments before they reach storage; the
// availability engine trusts stored segments on read.
type ScheduleService interface {
	GetSchedule(ctx context.Context, serviceID string) (*models.ScheduleView, error)
	SetWeeklyHours(ctx context.Context, actorID, serviceID string, req models.SetWeeklyHoursRequest) (*models.ScheduleView, error)
	AddOverride(ctx context.Context, actorID, serviceID string, req models.AddOverrideRequest) (*models.ScheduleOverride, error)
	RemoveOverride(ctx context.Context, actorID, serviceID, date string) error
}

// DefaultScheduleService implements ScheduleService.
type DefaultScheduleService struct {
	Repo        scheduleRepo.ScheduleRepository
	CatalogRepo catalogRepo.ServiceCatalogRepository
	Cache       *redis.Client // optional, invalidated on every write
}
