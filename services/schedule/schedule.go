package schedule

import (
	"context"
	"fmt"

	"slotify/models"
	"slotify/utils"

	"go.uber.org/zap"
)

// GetSchedule returns the full schedule of a service: every weekday's
// recurring hours plus all overrides. Readable by anyone, so customers can
// see opening hours without listing slots date by date.
func (s *DefaultScheduleService) GetSchedule(ctx context.Context, serviceID string) (*models.ScheduleView, error) {
	if serviceID == "" {
		return nil, NewInvalidArgument("service id is required")
	}
	if err := s.serviceExists(ctx, serviceID); err != nil {
		return nil, err
	}

	weekly, err := s.Repo.GetAllWeeklyHours(ctx, serviceID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch weekly hours", zap.Error(err), zap.String("serviceId", serviceID))
		return nil, fmt.Errorf("failed to fetch weekly hours for service %s: %w", serviceID, err)
	}
	overrides, err := s.Repo.ListOverrides(ctx, serviceID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch overrides", zap.Error(err), zap.String("serviceId", serviceID))
		return nil, fmt.Errorf("failed to fetch overrides for service %s: %w", serviceID, err)
	}

	return &models.ScheduleView{
		ServiceID: serviceID,
		Weekly:    weekly,
		Overrides: overrides,
	}, nil
}

// SetWeeklyHours replaces the service's entire weekly schedule. Prior
// weekday entries are deleted and the new set inserted as one transaction;
// days absent from the request end up closed. Owner only.
func (s *DefaultScheduleService) SetWeeklyHours(ctx context.Context, actorID, serviceID string, req models.SetWeeklyHoursRequest) (*models.ScheduleView, error) {
	if err := s.authorizeWrite(ctx, actorID, serviceID); err != nil {
		return nil, err
	}
	if err := validateWeeklyDays(req.Days); err != nil {
		return nil, err
	}

	days := make([]models.WeeklyHours, 0, len(req.Days))
	for _, day := range req.Days {
		days = append(days, models.WeeklyHours{
			ServiceID: serviceID,
			Weekday:   day.Weekday,
			Segments:  day.Segments,
		})
	}
	if err := s.Repo.ReplaceWeeklyHours(ctx, serviceID, days); err != nil {
		utils.GetLogger().Error("Failed to replace weekly hours", zap.Error(err), zap.String("serviceId", serviceID))
		return nil, err
	}

	// The change touches an unknown set of future dates, so the whole
	// cached schedule of the service goes.
	utils.InvalidateScheduleCache(ctx, s.Cache, serviceID)

	utils.GetLogger().Info("Weekly hours replaced",
		zap.String("serviceId", serviceID), zap.Int("days", len(days)))
	return s.GetSchedule(ctx, serviceID)
}

// AddOverride adds or replaces the override for one date: a full day off,
// or a segment set substituting the weekly hours for that date. Owner only.
func (s *DefaultScheduleService) AddOverride(ctx context.Context, actorID, serviceID string, req models.AddOverrideRequest) (*models.ScheduleOverride, error) {
	if err := s.authorizeWrite(ctx, actorID, serviceID); err != nil {
		return nil, err
	}
	if err := validateOverride(req); err != nil {
		return nil, err
	}

	override := &models.ScheduleOverride{
		ServiceID: serviceID,
		Date:      req.Date,
		IsDayOff:  req.IsDayOff,
		Segments:  req.Segments,
	}
	if err := s.Repo.UpsertOverride(ctx, override); err != nil {
		utils.GetLogger().Error("Failed to upsert override",
			zap.Error(err), zap.String("serviceId", serviceID), zap.String("date", req.Date))
		return nil, err
	}

	s.invalidateDate(ctx, serviceID, req.Date)

	utils.GetLogger().Info("Schedule override set",
		zap.String("serviceId", serviceID), zap.String("date", req.Date), zap.Bool("isDayOff", req.IsDayOff))
	return override, nil
}

// RemoveOverride deletes the override for one date, letting the weekly
// hours apply again. Owner only.
func (s *DefaultScheduleService) RemoveOverride(ctx context.Context, actorID, serviceID, date string) error {
	if err := s.authorizeWrite(ctx, actorID, serviceID); err != nil {
		return err
	}
	if _, err := utils.DayStart(date); err != nil {
		return NewInvalidArgument(fmt.Sprintf("date must be in %s format", utils.DateLayout))
	}

	existed, err := s.Repo.DeleteOverride(ctx, serviceID, date)
	if err != nil {
		utils.GetLogger().Error("Failed to delete override",
			zap.Error(err), zap.String("serviceId", serviceID), zap.String("date", date))
		return err
	}
	if !existed {
		return NewNotFound("override for", date)
	}

	s.invalidateDate(ctx, serviceID, date)

	utils.GetLogger().Info("Schedule override removed",
		zap.String("serviceId", serviceID), zap.String("date", date))
	return nil
}

// authorizeWrite verifies the service exists and the actor owns it.
func (s *DefaultScheduleService) authorizeWrite(ctx context.Context, actorID, serviceID string) error {
	if actorID == "" {
		return NewInvalidArgument("actor id is required")
	}
	if serviceID == "" {
		return NewInvalidArgument("service id is required")
	}

	svc, err := s.CatalogRepo.GetByID(ctx, serviceID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch service", zap.Error(err), zap.String("serviceId", serviceID))
		return fmt.Errorf("failed to fetch service %s: %w", serviceID, err)
	}
	if svc == nil {
		return NewNotFound("service", serviceID)
	}
	if svc.ProviderID != actorID {
		return NewUnauthorized("only the owning provider may edit the schedule")
	}
	return nil
}

func (s *DefaultScheduleService) serviceExists(ctx context.Context, serviceID string) error {
	svc, err := s.CatalogRepo.GetByID(ctx, serviceID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch service", zap.Error(err), zap.String("serviceId", serviceID))
		return fmt.Errorf("failed to fetch service %s: %w", serviceID, err)
	}
	if svc == nil {
		return NewNotFound("service", serviceID)
	}
	return nil
}

// invalidateDate drops one date's cached resolved schedule. An override
// only ever changes its own date.
func (s *DefaultScheduleService) invalidateDate(ctx context.Context, serviceID, date string) {
	if s.Cache == nil {
		return
	}
	key := utils.ScheduleCacheKey(serviceID, date)
	if err := s.Cache.Del(ctx, key).Err(); err != nil {
		utils.GetLogger().Warn("Schedule cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}
