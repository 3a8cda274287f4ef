package availability

import (
	"context"
	"encoding/json"

	"slotify/models"
	"slotify/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ResolveSegments returns the open segments of a service on one calendar
// date. An override for the date wins outright: a day off clears the date,
// and override segments replace the weekly hours entirely, never merging
// with them. Without an override the weekday's recurring hours apply.
func (e *DefaultAvailabilityEngine) ResolveSegments(ctx context.Context, serviceID, date string) ([]models.TimeSegment, error) {
	if segments, ok := e.cachedSegments(ctx, serviceID, date); ok {
		return segments, nil
	}
	logger := utils.GetLogger()

	override, err := e.ScheduleRepo.GetOverride(ctx, serviceID, date)
	if err != nil {
		logger.Error("failed to fetch schedule override",
			zap.String("serviceID", serviceID), zap.String("date", date), zap.Error(err))
		return nil, err
	}

	var segments []models.TimeSegment
	if override != nil {
		if !override.IsDayOff {
			segments = override.Segments
		}
	} else {
		day, err := utils.DayStart(date)
		if err != nil {
			return nil, err
		}
		weekly, err := e.ScheduleRepo.GetWeeklyHours(ctx, serviceID, day.Weekday())
		if err != nil {
			logger.Error("failed to fetch weekly hours",
				zap.String("serviceID", serviceID), zap.Stringer("weekday", day.Weekday()), zap.Error(err))
			return nil, err
		}
		if weekly != nil {
			segments = weekly.Segments
		}
	}

	e.storeSegments(ctx, serviceID, date, segments)
	return segments, nil
}

// cachedSegments consults the schedule read cache. Any cache trouble is a
// miss, never a failure.
func (e *DefaultAvailabilityEngine) cachedSegments(ctx context.Context, serviceID, date string) ([]models.TimeSegment, bool) {
	if e.Cache == nil {
		return nil, false
	}

	key := utils.ScheduleCacheKey(serviceID, date)
	payload, err := e.Cache.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("schedule cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var segments []models.TimeSegment
	if err := json.Unmarshal([]byte(payload), &segments); err != nil {
		utils.GetLogger().Warn("dropping corrupt schedule cache entry", zap.String("key", key), zap.Error(err))
		e.Cache.Del(ctx, key)
		return nil, false
	}
	return segments, true
}

func (e *DefaultAvailabilityEngine) storeSegments(ctx context.Context, serviceID, date string, segments []models.TimeSegment) {
	if e.Cache == nil {
		return
	}

	payload, err := json.Marshal(segments)
	if err != nil {
		return
	}
	key := utils.ScheduleCacheKey(serviceID, date)
	if err := e.Cache.Set(ctx, key, payload, utils.ScheduleCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("schedule cache write failed", zap.String("key", key), zap.Error(err))
	}
}
